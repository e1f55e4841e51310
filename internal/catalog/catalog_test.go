package catalog_test

import (
	"testing"

	"greenleaf/internal/catalog"
)

func TestUniqueIDs(t *testing.T) {
	seen := map[int]bool{}
	for _, p := range catalog.Products() {
		if p.ID == 0 {
			t.Fatalf("product %q has no id", p.Name)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestByCategoryCaseInsensitive(t *testing.T) {
	lower := catalog.ByCategory("flower")
	upper := catalog.ByCategory("FLOWER")
	if len(lower) == 0 {
		t.Fatal("no flower products")
	}
	if len(lower) != len(upper) {
		t.Fatalf("category match must ignore case: %d vs %d", len(lower), len(upper))
	}
}

func TestByID(t *testing.T) {
	p, ok := catalog.ByID(1)
	if !ok || p.ID != 1 {
		t.Fatalf("lookup failed: %+v ok=%v", p, ok)
	}
	if _, ok := catalog.ByID(9999); ok {
		t.Fatal("unknown id must not resolve")
	}
}

func TestFlowerCarriesSizeOptions(t *testing.T) {
	for _, p := range catalog.ByCategory("flower") {
		if len(p.PriceOptions) == 0 {
			t.Fatalf("flower %q has no size options", p.Name)
		}
		opt, ok := p.Option("1oz")
		if !ok {
			t.Fatalf("flower %q has no 1oz size", p.Name)
		}
		if opt.Price <= p.Price {
			t.Fatalf("flower %q: 1oz (%v) should cost more than the base 1/4oz (%v)", p.Name, opt.Price, p.Price)
		}
	}
}

func TestByWeight(t *testing.T) {
	disposables := catalog.ByCategory("disposable-cart")
	oneG := catalog.ByWeight(disposables, "1g")
	threeG := catalog.ByWeight(disposables, "3g")
	if len(oneG) == 0 || len(threeG) == 0 {
		t.Fatalf("want both disposable weights, got %d 1g / %d 3g", len(oneG), len(threeG))
	}
	if len(oneG)+len(threeG) != len(disposables) {
		t.Fatal("every disposable carries a weight tag")
	}
}
