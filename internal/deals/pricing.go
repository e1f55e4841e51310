package deals

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"greenleaf/internal/domain"
)

var (
	ErrUnknownDeal         = errors.New("deals: unknown deal")
	ErrIncompleteSelection = errors.New("deals: incomplete selection")
)

// BundleItems decomposes a completed selection into individually priced cart
// line items. Each item carries the synthetic unit price it is charged at,
// the catalog unit price it would have cost, and a shared bundle token so the
// UI can group the lines. quantities overrides the deal's default per-slot
// quantities when non-nil.
//
// Synthetic prices are rounded to cents, so a divided bundle (six edibles for
// $100 at 16.67 each) can total a cent or two over the advertised deal price.
// The line items are what the cart charges; the deal price stays on the
// BundleRef for display.
func BundleItems(d domain.Deal, sel domain.Selections, quantities map[string]int) ([]domain.LineItem, error) {
	rule, ok := rules[d.ID]
	if !ok {
		return nil, ErrUnknownDeal
	}
	if !SelectionComplete(d, sel) {
		return nil, ErrIncompleteSelection
	}

	bundleID := fmt.Sprintf("deal-%d-%s", d.ID, uuid.NewString())
	ref := domain.BundleRef{
		DealID:      d.ID,
		DealName:    d.Name,
		BundleID:    bundleID,
		BundlePrice: d.Price,
	}

	passPrice := decimal.Zero
	if rule.Pricing.Kind == PassThroughPlusResidual || rule.Pricing.Kind == FixedComponent {
		p, ok := ProductIn(d, rule.Pricing.PassThroughSlot, sel[rule.Pricing.PassThroughSlot])
		if !ok {
			return nil, fmt.Errorf("deals: product %d not eligible for slot %q", sel[rule.Pricing.PassThroughSlot], rule.Pricing.PassThroughSlot)
		}
		passPrice = decimal.NewFromFloat(p.Price)
	}

	items := make([]domain.LineItem, 0, len(rule.Slots))
	for _, slot := range rule.Slots {
		p, ok := ProductIn(d, slot, sel[slot])
		if !ok {
			return nil, fmt.Errorf("deals: product %d not eligible for slot %q", sel[slot], slot)
		}

		qty := d.DefaultQuantities[slot]
		if quantities != nil {
			if q, ok := quantities[slot]; ok {
				qty = q
			}
		}
		if qty < 1 {
			qty = 1
		}

		price := syntheticPrice(d, rule, slot, passPrice)
		original := slotUnitPrice(d, slot, p)

		li := domain.LineItem{
			ProductID:     p.ID,
			Name:          p.Name,
			Image:         p.Image,
			Category:      p.Category,
			THCContent:    p.THCContent,
			Price:         price,
			OriginalPrice: original,
			Quantity:      qty,
			Bundle:        &ref,
		}
		// Flower slots sell the 1oz size, so the line keeps that identity.
		if isFlowerSlot(slot) {
			li.SelectedOption = &domain.PriceOption{Option: "1oz", Price: price}
		}
		items = append(items, li)
	}
	return items, nil
}

func syntheticPrice(d domain.Deal, rule Rule, slot string, passPrice decimal.Decimal) float64 {
	total := decimal.NewFromFloat(d.Price)

	switch rule.Pricing.Kind {
	case FlatRate:
		units := 0
		for _, s := range rule.Slots {
			units += d.DefaultQuantities[s]
		}
		if units < 1 {
			units = 1
		}
		f, _ := total.Div(decimal.NewFromInt(int64(units))).Round(2).Float64()
		return f

	case PassThroughPlusResidual:
		if slot != rule.Pricing.PricedSlot {
			f, _ := passPrice.Float64()
			return f
		}
		units := rule.Pricing.Units
		if units < 1 {
			units = 1
		}
		f, _ := total.Sub(passPrice).Div(decimal.NewFromInt(int64(units))).Round(2).Float64()
		return f

	case FixedComponent:
		if slot != rule.Pricing.PricedSlot {
			f, _ := passPrice.Float64()
			return f
		}
		f, _ := total.Sub(passPrice).Round(2).Float64()
		return f
	}
	return 0
}
