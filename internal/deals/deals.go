package deals

import (
	"strings"

	"github.com/shopspring/decimal"

	"greenleaf/internal/catalog"
	"greenleaf/internal/domain"
)

// PricingKind selects how a deal's fixed price is spread across its slots.
type PricingKind int

const (
	// FlatRate divides the deal price evenly across every unit in the
	// bundle ("5 cartridges for $100" -> $20 each).
	FlatRate PricingKind = iota
	// PassThroughPlusResidual keeps the pass-through slot at catalog price
	// and divides the remainder across the priced slot's units
	// ("20 pre-rolls + 1 edible").
	PassThroughPlusResidual
	// FixedComponent prices the component slot at deal price minus the
	// pass-through's catalog price, as a whole ("1oz flower + 1 edible").
	FixedComponent
)

type PricingRule struct {
	Kind            PricingKind
	PricedSlot      string // slot absorbing the discount; unused for FlatRate
	PassThroughSlot string // slot kept at catalog price
	Units           int    // divisor for the priced slot's residual
}

// Rule fixes a deal's required slots (in display order) and its pricing.
// Each deal's multiplier table is encoded here explicitly; there is no
// general formula to infer it from.
type Rule struct {
	Slots   []string
	Pricing PricingRule
}

var rules = map[int]Rule{
	1:  {Slots: []string{"flower1", "flower2"}, Pricing: PricingRule{Kind: FlatRate}},
	2:  {Slots: []string{"edible"}, Pricing: PricingRule{Kind: FlatRate}},
	3:  {Slots: []string{"cart"}, Pricing: PricingRule{Kind: FlatRate}},
	4:  {Slots: []string{"preRoll"}, Pricing: PricingRule{Kind: FlatRate}},
	5:  {Slots: []string{"preRoll", "edible"}, Pricing: PricingRule{Kind: PassThroughPlusResidual, PricedSlot: "preRoll", PassThroughSlot: "edible", Units: 20}},
	6:  {Slots: []string{"flower", "edible"}, Pricing: PricingRule{Kind: FixedComponent, PricedSlot: "flower", PassThroughSlot: "edible"}},
	7:  {Slots: []string{"disposable"}, Pricing: PricingRule{Kind: FlatRate}},
	8:  {Slots: []string{"disposable", "edible"}, Pricing: PricingRule{Kind: PassThroughPlusResidual, PricedSlot: "disposable", PassThroughSlot: "edible", Units: 4}},
	9:  {Slots: []string{"disposable"}, Pricing: PricingRule{Kind: FlatRate}},
	10: {Slots: []string{"disposable", "edible"}, Pricing: PricingRule{Kind: PassThroughPlusResidual, PricedSlot: "disposable", PassThroughSlot: "edible", Units: 4}},
}

var deals = buildDeals()

func buildDeals() []domain.Deal {
	flower := catalog.ByCategory("flower")
	edibles := catalog.ByCategory("edibles")
	carts := catalog.ByCategory("cart")
	preRolls := catalog.ByCategory("pre-rolls")
	disposables := catalog.ByCategory("disposable-cart")

	// Deal 6 only offers flower that actually has a 1oz size.
	var ozFlower []domain.Product
	for _, p := range flower {
		if _, ok := p.Option("1oz"); ok {
			ozFlower = append(ozFlower, p)
		}
	}

	return []domain.Deal{
		{
			ID: 1, Name: "2oz Flower Bundle",
			Description: "Two ounces of premium flower for $180 (save $20+)",
			Price:       180, Category: "Bundle", Type: "flower",
			Image:             "/images/bundles/flower-bundle.jpg",
			Products:          map[string][]domain.Product{"flower1": flower, "flower2": flower},
			DefaultQuantities: map[string]int{"flower1": 1, "flower2": 1},
			SavingsEstimate:   "20+",
			Includes:          []string{"Choice of two 1oz flower strains"},
			Effects:           []string{"Varied based on selection"},
			Flavors:           []string{"Varied based on selection"},
		},
		{
			ID: 2, Name: "6 Edible Packs",
			Description: "Six packs of premium edibles for $100 (save $50+)",
			Price:       100, Category: "Bundle", Type: "edibles",
			Image:             "/images/bundles/edible-bundle.jpg",
			Products:          map[string][]domain.Product{"edible": edibles},
			DefaultQuantities: map[string]int{"edible": 6},
			SavingsEstimate:   "50+",
			Includes:          []string{"Six packs of assorted edibles"},
			Effects:           []string{"Relaxed", "Happy", "Uplifted"},
			Flavors:           []string{"Mixed flavors"},
		},
		{
			ID: 3, Name: "5 Cartridges",
			Description: "Five premium cartridges for $100 (save $125+)",
			Price:       100, Category: "Bundle", Type: "carts",
			Image:             "/images/bundles/cartridge-bundle.jpg",
			Products:          map[string][]domain.Product{"cart": carts},
			DefaultQuantities: map[string]int{"cart": 5},
			SavingsEstimate:   "125+",
			Includes:          []string{"Five 510-thread cartridges"},
			Effects:           []string{"Varied based on selection"},
			Flavors:           []string{"Varied based on selection"},
		},
		{
			ID: 4, Name: "10 Pre-Rolls",
			Description: "Ten premium pre-rolls for $80 (save $20+)",
			Price:       80, Category: "Bundle", Type: "pre-rolls",
			Image:             "/images/bundles/pre-roll-bundle.jpg",
			Products:          map[string][]domain.Product{"preRoll": preRolls},
			DefaultQuantities: map[string]int{"preRoll": 10},
			SavingsEstimate:   "20+",
			Includes:          []string{"Ten 1g premium pre-rolls"},
			Effects:           []string{"Varied based on selection"},
			Flavors:           []string{"Varied based on selection"},
		},
		{
			ID: 5, Name: "20 Pre-Rolls + 1 Edible",
			Description: "Twenty pre-rolls plus one edible pack for $160 (save $40+)",
			Price:       160, Category: "Bundle", Type: "mixed",
			Image:             "/images/bundles/mega-bundle.jpg",
			Products:          map[string][]domain.Product{"preRoll": preRolls, "edible": edibles},
			DefaultQuantities: map[string]int{"preRoll": 20, "edible": 1},
			SavingsEstimate:   "40+",
			Includes:          []string{"Twenty 1g pre-rolls", "One edible pack"},
			Effects:           []string{"Varied based on selection"},
			Flavors:           []string{"Varied based on selection"},
		},
		{
			ID: 6, Name: "1oz Flower + 1 Edible",
			Description: "Get any 1oz of flower plus one edible pack for just $100",
			Price:       100, Category: "Bundle", Type: "mixed",
			Image:             "/images/bundles/starter-bundle.jpg",
			Products:          map[string][]domain.Product{"flower": ozFlower, "edible": edibles},
			DefaultQuantities: map[string]int{"flower": 1, "edible": 1},
			SavingsEstimate:   "25+",
			Includes:          []string{"One 1oz flower", "One edible pack"},
			Effects:           []string{"Varied based on selection"},
			Flavors:           []string{"Varied based on selection"},
		},
		{
			ID: 7, Name: "2 Disposable 1g Carts",
			Description: "Two 1g disposable vape cartridges for $60 (save $20+)",
			Price:       60, Category: "Bundle", Type: "disposable",
			Image:             "/images/bundles/disposable-bundle.jpg",
			Products:          map[string][]domain.Product{"disposable": catalog.ByWeight(disposables, "1g")},
			DefaultQuantities: map[string]int{"disposable": 2},
			SavingsEstimate:   "20+",
			Includes:          []string{"Two 1g disposable vapes"},
			Effects:           []string{"Varied based on selection"},
			Flavors:           []string{"Varied based on selection"},
		},
		{
			ID: 8, Name: "4 Disposable 1g + 1 Edible",
			Description: "Four 1g disposable vapes plus one edible pack for $120 (save $40+)",
			Price:       120, Category: "Bundle", Type: "mixed",
			Image:             "/images/bundles/disposable-edible-bundle.jpg",
			Products:          map[string][]domain.Product{"disposable": catalog.ByWeight(disposables, "1g"), "edible": edibles},
			DefaultQuantities: map[string]int{"disposable": 4, "edible": 1},
			SavingsEstimate:   "40+",
			Includes:          []string{"Four 1g disposable vapes", "One edible pack"},
			Effects:           []string{"Varied based on selection"},
			Flavors:           []string{"Varied based on selection"},
		},
		{
			ID: 9, Name: "2 Disposable 3g Carts",
			Description: "Two 3g disposable vape cartridges for $80 (save $30+)",
			Price:       80, Category: "Bundle", Type: "disposable",
			Image:             "/images/bundles/disposable-3g-bundle.jpg",
			Products:          map[string][]domain.Product{"disposable": catalog.ByWeight(disposables, "3g")},
			DefaultQuantities: map[string]int{"disposable": 2},
			SavingsEstimate:   "30+",
			Includes:          []string{"Two 3g disposable vapes"},
			Effects:           []string{"Varied based on selection"},
			Flavors:           []string{"Varied based on selection"},
		},
		{
			ID: 10, Name: "4 Disposable 3g + 1 Edible",
			Description: "Four 3g disposable vapes plus one edible pack for $160 (save $60+)",
			Price:       160, Category: "Bundle", Type: "mixed",
			Image:             "/images/bundles/disposable-3g-edible-bundle.jpg",
			Products:          map[string][]domain.Product{"disposable": catalog.ByWeight(disposables, "3g"), "edible": edibles},
			DefaultQuantities: map[string]int{"disposable": 4, "edible": 1},
			SavingsEstimate:   "60+",
			Includes:          []string{"Four 3g disposable vapes", "One edible pack"},
			Effects:           []string{"Varied based on selection"},
			Flavors:           []string{"Varied based on selection"},
		},
	}
}

func All() []domain.Deal {
	out := make([]domain.Deal, len(deals))
	copy(out, deals)
	return out
}

func ByID(id int) (domain.Deal, bool) {
	for _, d := range deals {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Deal{}, false
}

func ByType(t string) []domain.Deal {
	var out []domain.Deal
	for _, d := range deals {
		if strings.EqualFold(d.Type, t) {
			out = append(out, d)
		}
	}
	return out
}

// RuleFor exposes a deal's slot/pricing rule.
func RuleFor(dealID int) (Rule, bool) {
	r, ok := rules[dealID]
	return r, ok
}

// InitialSelections returns an empty selection, one entry per slot.
func InitialSelections(d domain.Deal) domain.Selections {
	sel := make(domain.Selections, len(d.Products))
	for slot := range d.Products {
		sel[slot] = 0
	}
	return sel
}

// SelectionComplete reports whether every slot the deal requires has been
// filled. Partial selections are valid transient state but must not reach
// the pricing engine.
func SelectionComplete(d domain.Deal, sel domain.Selections) bool {
	rule, ok := rules[d.ID]
	if !ok {
		return false
	}
	for _, slot := range rule.Slots {
		if sel[slot] == 0 {
			return false
		}
	}
	return true
}

// ProductIn finds the selected product within a deal slot's eligible set.
func ProductIn(d domain.Deal, slot string, productID int) (domain.Product, bool) {
	for _, p := range d.Products[slot] {
		if p.ID == productID {
			return p, true
		}
	}
	return domain.Product{}, false
}

// flower slots are priced by the 1oz size; everything else by base price.
func isFlowerSlot(slot string) bool {
	return strings.HasPrefix(slot, "flower")
}

func slotUnitPrice(d domain.Deal, slot string, p domain.Product) float64 {
	if isFlowerSlot(slot) {
		if opt, ok := p.Option("1oz"); ok {
			return opt.Price
		}
		return p.Price
	}
	return p.Price
}

// OriginalPrice sums each filled slot's catalog unit price times the deal's
// fixed quantity for that slot. This is the pre-discount reference total
// behind the "you save $X" display; unfilled slots contribute nothing.
func OriginalPrice(d domain.Deal, sel domain.Selections) float64 {
	rule, ok := rules[d.ID]
	if !ok {
		return 0
	}
	sum := decimal.Zero
	for _, slot := range rule.Slots {
		id := sel[slot]
		if id == 0 {
			continue
		}
		p, ok := ProductIn(d, slot, id)
		if !ok {
			continue
		}
		unit := decimal.NewFromFloat(slotUnitPrice(d, slot, p))
		qty := decimal.NewFromInt(int64(d.DefaultQuantities[slot]))
		sum = sum.Add(unit.Mul(qty))
	}
	f, _ := sum.Round(2).Float64()
	return f
}

// SlotLabel returns the display label for a bundle slot.
func SlotLabel(slot string, dealID int) string {
	switch slot {
	case "flower":
		return "1oz Flower"
	case "flower1":
		return "First Flower"
	case "flower2":
		return "Second Flower"
	case "edible":
		if dealID == 2 {
			return "6 Edible Packs"
		}
		return "1 Edible Pack"
	case "cart":
		return "5 Cartridges"
	case "preRoll":
		switch dealID {
		case 4:
			return "10 Pre-Rolls"
		case 5:
			return "20 Pre-Rolls"
		}
		return "Pre-Rolls"
	case "disposable":
		switch dealID {
		case 7:
			return "2 Disposable 1g Carts"
		case 8:
			return "4 Disposable 1g Carts"
		case 9:
			return "2 Disposable 3g Carts"
		case 10:
			return "4 Disposable 3g Carts"
		}
		return "Disposable"
	}
	return slot
}
