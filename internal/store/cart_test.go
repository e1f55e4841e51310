package store_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"greenleaf/internal/domain"
	"greenleaf/internal/store"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

var flower = domain.Product{
	ID: 1, Name: "OG Kush", Category: "Flower", Price: 35,
	PriceOptions: []domain.PriceOption{
		{Option: "1/4oz", Price: 40},
		{Option: "1/2oz", Price: 60},
		{Option: "1oz", Price: 100},
	},
}

var edible = domain.Product{ID: 5, Name: "Cosmic Gummies", Category: "Edibles", Price: 40}

func TestSimpleAdd(t *testing.T) {
	cart := store.NewCart("cart:test", nil)

	if err := cart.AddItem(edible, nil, 2); err != nil {
		t.Fatal(err)
	}

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("want 1 item, got %d", len(items))
	}
	if items[0].ProductID != 5 || items[0].Quantity != 2 || !approx(items[0].Price, 40) {
		t.Fatalf("bad item: %+v", items[0])
	}
	if !approx(cart.Total(), 80) {
		t.Fatalf("want total 80, got %v", cart.Total())
	}
	if cart.Count() != 2 {
		t.Fatalf("want count 2, got %d", cart.Count())
	}
	if !approx(cart.Savings(), 0) {
		t.Fatalf("want savings 0, got %v", cart.Savings())
	}
}

func TestIdentityMerge(t *testing.T) {
	cart := store.NewCart("cart:test", nil)
	opt := &domain.PriceOption{Option: "1oz", Price: 100}

	if err := cart.AddItem(flower, opt, 1); err != nil {
		t.Fatal(err)
	}
	if err := cart.AddItem(flower, opt, 1); err != nil {
		t.Fatal(err)
	}

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("same option must merge, got %d items", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("want quantity 2, got %d", items[0].Quantity)
	}
	if !approx(cart.Total(), 200) {
		t.Fatalf("want total 200, got %v", cart.Total())
	}
}

func TestMergeRefreshesPrice(t *testing.T) {
	cart := store.NewCart("cart:test", nil)

	if err := cart.AddItem(flower, &domain.PriceOption{Option: "1oz", Price: 100}, 2); err != nil {
		t.Fatal(err)
	}
	// Second add at a different effective price: quantities sum, price is
	// last-write-wins.
	if err := cart.AddItem(flower, &domain.PriceOption{Option: "1oz", Price: 90}, 3); err != nil {
		t.Fatal(err)
	}

	items := cart.Items()
	if len(items) != 1 || items[0].Quantity != 5 {
		t.Fatalf("bad merge: %+v", items)
	}
	if !approx(items[0].Price, 90) {
		t.Fatalf("price must refresh to 90, got %v", items[0].Price)
	}
	if !approx(cart.Total(), 450) {
		t.Fatalf("want total 450, got %v", cart.Total())
	}
}

func TestDistinctOptionsNotMerged(t *testing.T) {
	cart := store.NewCart("cart:test", nil)

	if err := cart.AddItem(flower, &domain.PriceOption{Option: "1/4oz", Price: 40}, 1); err != nil {
		t.Fatal(err)
	}
	if err := cart.AddItem(flower, &domain.PriceOption{Option: "1/2oz", Price: 60}, 1); err != nil {
		t.Fatal(err)
	}

	if len(cart.Items()) != 2 {
		t.Fatalf("different options must stay distinct, got %d items", len(cart.Items()))
	}
	if !approx(cart.Total(), 100) {
		t.Fatalf("want total 100, got %v", cart.Total())
	}
}

func TestOptionVersusNoOptionDistinct(t *testing.T) {
	cart := store.NewCart("cart:test", nil)

	if err := cart.AddItem(flower, nil, 1); err != nil {
		t.Fatal(err)
	}
	if err := cart.AddItem(flower, &domain.PriceOption{Option: "1oz", Price: 100}, 1); err != nil {
		t.Fatal(err)
	}
	if len(cart.Items()) != 2 {
		t.Fatalf("base-price and option lines must stay distinct, got %d", len(cart.Items()))
	}
}

func TestQuantityFloor(t *testing.T) {
	cart := store.NewCart("cart:test", nil)
	if err := cart.AddItem(edible, nil, 3); err != nil {
		t.Fatal(err)
	}

	for _, q := range []int{0, -5} {
		if err := cart.UpdateQuantity(edible.ID, nil, q); err != nil {
			t.Fatal(err)
		}
		if got := cart.Items()[0].Quantity; got != 1 {
			t.Fatalf("UpdateQuantity(%d): want quantity 1, got %d", q, got)
		}
	}
}

func TestUpdateQuantityMissingIsNoop(t *testing.T) {
	cart := store.NewCart("cart:test", nil)
	if err := cart.UpdateQuantity(999, nil, 4); err != nil {
		t.Fatal(err)
	}
	if len(cart.Items()) != 0 {
		t.Fatalf("no-op expected, got %+v", cart.Items())
	}
}

func TestRemoveItem(t *testing.T) {
	cart := store.NewCart("cart:test", nil)
	opt := &domain.PriceOption{Option: "1/4oz", Price: 40}
	if err := cart.AddItem(flower, opt, 1); err != nil {
		t.Fatal(err)
	}
	if err := cart.AddItem(edible, nil, 1); err != nil {
		t.Fatal(err)
	}

	if err := cart.RemoveItem(flower.ID, opt); err != nil {
		t.Fatal(err)
	}
	if len(cart.Items()) != 1 || cart.Items()[0].ProductID != edible.ID {
		t.Fatalf("bad cart after remove: %+v", cart.Items())
	}

	// removing something absent is fine
	if err := cart.RemoveItem(999, nil); err != nil {
		t.Fatal(err)
	}
}

func TestClear(t *testing.T) {
	cart := store.NewCart("cart:test", nil)
	if err := cart.AddItem(flower, nil, 2); err != nil {
		t.Fatal(err)
	}
	if err := cart.AddItem(edible, nil, 1); err != nil {
		t.Fatal(err)
	}

	if err := cart.Clear(); err != nil {
		t.Fatal(err)
	}
	if len(cart.Items()) != 0 || cart.Total() != 0 || cart.Count() != 0 || cart.Savings() != 0 {
		t.Fatalf("clear must zero everything: items=%d total=%v count=%d savings=%v",
			len(cart.Items()), cart.Total(), cart.Count(), cart.Savings())
	}
}

func TestSavings(t *testing.T) {
	cart := store.NewCart("cart:test", nil)

	// Discounted line: charged 20, normally 45.
	if err := cart.AddLine(domain.LineItem{
		ProductID: 10, Name: "Cartridge", Price: 20, OriginalPrice: 45, Quantity: 5,
	}); err != nil {
		t.Fatal(err)
	}
	// Full-price line contributes nothing even though OriginalPrice is set.
	if err := cart.AddItem(edible, nil, 2); err != nil {
		t.Fatal(err)
	}

	if !approx(cart.Savings(), 125) {
		t.Fatalf("want savings 125, got %v", cart.Savings())
	}
}

// Aggregates must always equal a recomputation from the current items, for
// any reachable state.
func TestAggregatesUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	products := []domain.Product{flower, edible,
		{ID: 9, Name: "Pre-Roll", Category: "Pre-Rolls", Price: 10},
	}
	options := []*domain.PriceOption{
		nil,
		{Option: "1/4oz", Price: 40},
		{Option: "1oz", Price: 100},
	}

	cart := store.NewCart("cart:test", nil)
	for i := 0; i < 2000; i++ {
		p := products[rng.Intn(len(products))]
		opt := options[rng.Intn(len(options))]
		switch rng.Intn(5) {
		case 0, 1:
			if err := cart.AddItem(p, opt, rng.Intn(4)-1); err != nil {
				t.Fatal(err)
			}
		case 2:
			if err := cart.UpdateQuantity(p.ID, opt, rng.Intn(6)-2); err != nil {
				t.Fatal(err)
			}
		case 3:
			if err := cart.RemoveItem(p.ID, opt); err != nil {
				t.Fatal(err)
			}
		case 4:
			if rng.Intn(20) == 0 {
				if err := cart.Clear(); err != nil {
					t.Fatal(err)
				}
			}
		}

		items := cart.Items()
		seen := map[domain.ItemKey]bool{}
		wantTotal, wantSavings := 0.0, 0.0
		wantCount := 0
		for _, li := range items {
			if li.Quantity < 1 {
				t.Fatalf("op %d: quantity below 1: %+v", i, li)
			}
			if seen[li.Key()] {
				t.Fatalf("op %d: duplicate identity key %+v", i, li.Key())
			}
			seen[li.Key()] = true
			wantTotal += li.Price * float64(li.Quantity)
			wantCount += li.Quantity
			if li.OriginalPrice > li.Price {
				wantSavings += (li.OriginalPrice - li.Price) * float64(li.Quantity)
			}
		}
		if !approx(cart.Total(), wantTotal) || cart.Count() != wantCount || !approx(cart.Savings(), wantSavings) {
			t.Fatalf("op %d: aggregates drifted: total=%v want %v, count=%d want %d, savings=%v want %v",
				i, cart.Total(), wantTotal, cart.Count(), wantCount, cart.Savings(), wantSavings)
		}
		if cart.Savings() < 0 {
			t.Fatalf("op %d: negative savings", i)
		}
	}
}

type fakePersister struct {
	data    map[string][]byte
	saveErr error
	loadErr error
}

func newFakePersister() *fakePersister {
	return &fakePersister{data: map[string][]byte{}}
}

func (f *fakePersister) Save(key string, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	f.data[key] = cp
	return nil
}

func (f *fakePersister) Load(key string) ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	d, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return d, nil
}

func TestPersistRoundTrip(t *testing.T) {
	p := newFakePersister()

	cart := store.NewCart("cart:s1", p)
	if err := cart.AddItem(flower, &domain.PriceOption{Option: "1oz", Price: 100}, 2); err != nil {
		t.Fatal(err)
	}

	reloaded := store.NewCart("cart:s1", p)
	items := reloaded.Items()
	if len(items) != 1 || items[0].Quantity != 2 || items[0].SelectedOption == nil {
		t.Fatalf("bad reloaded state: %+v", items)
	}
	if !approx(reloaded.Total(), 200) {
		t.Fatalf("want total 200 after reload, got %v", reloaded.Total())
	}
}

func TestPersistFailurePropagatesButStateUpdates(t *testing.T) {
	p := newFakePersister()
	p.saveErr = errors.New("disk full")

	cart := store.NewCart("cart:s1", p)
	err := cart.AddItem(edible, nil, 1)
	if err == nil {
		t.Fatal("want persistence error")
	}
	// in-memory state is still the source of truth
	if len(cart.Items()) != 1 {
		t.Fatalf("in-memory state must update regardless: %+v", cart.Items())
	}
}

func TestCorruptStateLoadsEmpty(t *testing.T) {
	p := newFakePersister()
	p.data["cart:s1"] = []byte("{not json")

	cart := store.NewCart("cart:s1", p)
	if len(cart.Items()) != 0 {
		t.Fatalf("corrupt record must load as empty, got %+v", cart.Items())
	}
}

func TestLoadErrorLoadsEmpty(t *testing.T) {
	p := newFakePersister()
	p.loadErr = errors.New("storage unavailable")

	cart := store.NewCart("cart:s1", p)
	if len(cart.Items()) != 0 {
		t.Fatal("load failure must yield an empty cart, not a crash")
	}
}

func TestSubscribeNotifies(t *testing.T) {
	cart := store.NewCart("cart:test", nil)
	n := 0
	cart.Subscribe(func() { n++ })

	if err := cart.AddItem(edible, nil, 1); err != nil {
		t.Fatal(err)
	}
	if err := cart.Clear(); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("want 2 notifications, got %d", n)
	}
}
