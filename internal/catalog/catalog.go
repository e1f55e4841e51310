package catalog

import (
	"strings"

	"greenleaf/internal/domain"
)

// Products returns the full catalog. The returned slice is a copy; callers
// may filter it freely.
func Products() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

func ByID(id int) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// ByCategory filters by category tag, case-insensitively.
func ByCategory(category string) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// ByWeight narrows a product list to one weight label (used by the
// disposable bundles, which come in 1g and 3g variants).
func ByWeight(ps []domain.Product, weight string) []domain.Product {
	var out []domain.Product
	for _, p := range ps {
		if p.Weight == weight {
			out = append(out, p)
		}
	}
	return out
}
