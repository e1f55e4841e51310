package domain

// PriceOption is one selectable size/price for a product (e.g. "1oz" flower).
// When a product carries price options, the chosen option's price supersedes
// the base price; the base price remains as a fallback.
type PriceOption struct {
	Option string  `json:"option"`
	Price  float64 `json:"price"`
}

type Product struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Category     string        `json:"category"` // case-insensitive tag
	Price        float64       `json:"price"`
	Image        string        `json:"image"`
	THCContent   float64       `json:"thcContent,omitempty"`
	Strain       string        `json:"strain,omitempty"`
	Weight       string        `json:"weight,omitempty"`
	PriceOptions []PriceOption `json:"priceOptions,omitempty"`
	Effects      []string      `json:"effects,omitempty"`
	Flavors      []string      `json:"flavors,omitempty"`
	IsNew        bool          `json:"isNew,omitempty"`
}

// Option returns the price option with the given label, if the product has it.
func (p Product) Option(label string) (PriceOption, bool) {
	for _, opt := range p.PriceOptions {
		if opt.Option == label {
			return opt, true
		}
	}
	return PriceOption{}, false
}

// BundleRef tags a line item with the deal it was priced under. All items
// produced by one add-to-cart of a bundle share the same BundleID.
type BundleRef struct {
	DealID      int     `json:"dealId"`
	DealName    string  `json:"dealName"`
	BundleID    string  `json:"bundleId"`
	BundlePrice float64 `json:"bundlePrice"`
}

// LineItem is one cart entry. Price is the effective unit price actually
// charged; OriginalPrice is the pre-discount unit price, recorded on add so
// savings can be shown when it exceeds Price.
type LineItem struct {
	ProductID      int          `json:"productId"`
	Name           string       `json:"name"`
	Image          string       `json:"image"`
	Category       string       `json:"category"`
	THCContent     float64      `json:"thcContent,omitempty"`
	Price          float64      `json:"price"`
	OriginalPrice  float64      `json:"originalPrice,omitempty"`
	SelectedOption *PriceOption `json:"selectedOption,omitempty"`
	Quantity       int          `json:"quantity"`
	Bundle         *BundleRef   `json:"bundle,omitempty"`
}

// ItemKey identifies a line item: same product plus same option label is the
// same line and merges quantities; different option labels stay distinct.
type ItemKey struct {
	ProductID int
	Option    string
}

const defaultOption = "default"

func KeyFor(productID int, opt *PriceOption) ItemKey {
	label := defaultOption
	if opt != nil {
		label = opt.Option
	}
	return ItemKey{ProductID: productID, Option: label}
}

func (li LineItem) Key() ItemKey {
	return KeyFor(li.ProductID, li.SelectedOption)
}

// Deal is a fixed-price bundle template. Products maps each slot name to the
// catalog subset eligible to fill it; DefaultQuantities fixes how many units
// each slot contributes.
type Deal struct {
	ID                int                  `json:"id"`
	Name              string               `json:"name"`
	Description       string               `json:"description"`
	Price             float64              `json:"price"`
	Category          string               `json:"category"`
	Type              string               `json:"type"`
	Image             string               `json:"image"`
	Products          map[string][]Product `json:"products"`
	DefaultQuantities map[string]int       `json:"defaultQuantities"`
	SavingsEstimate   string               `json:"savingsEstimate"`
	Includes          []string             `json:"includes"`
	Effects           []string             `json:"effects"`
	Flavors           []string             `json:"flavors"`
}

// Selections holds the user's in-bundle choices, one entry per slot.
// Zero means the slot is not filled yet.
type Selections map[string]int
