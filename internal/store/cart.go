package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"greenleaf/internal/domain"
)

// Cart is the single source of truth for one session's cart contents. All
// mutation funnels through its methods so line-item identity and the
// quantity floor hold uniformly. Aggregates are recomputed from the items on
// every read, never cached.
type Cart struct {
	mu      sync.Mutex
	key     string
	items   []domain.LineItem
	persist Persister
	subs    []func()
}

type cartState struct {
	Items []domain.LineItem `json:"items"`
}

// NewCart loads any persisted state under key. A missing or corrupt record
// means an empty cart, never an error.
func NewCart(key string, p Persister) *Cart {
	c := &Cart{key: key, persist: p}
	if p == nil {
		return c
	}
	data, err := p.Load(key)
	if err != nil || data == nil {
		return c
	}
	var st cartState
	if err := json.Unmarshal(data, &st); err != nil {
		return c
	}
	for _, li := range st.Items {
		if li.Quantity < 1 {
			li.Quantity = 1
		}
		c.items = append(c.items, li)
	}
	return c
}

// Subscribe registers a change notification callback, invoked after every
// mutation outside the store's lock.
func (c *Cart) Subscribe(fn func()) {
	c.mu.Lock()
	c.subs = append(c.subs, fn)
	c.mu.Unlock()
}

// AddItem puts quantity units of a product (at the selected option's price
// when given, the base price otherwise) into the cart. Adding an identity
// that already exists merges quantities and refreshes the unit price to this
// call's effective price.
func (c *Cart) AddItem(p domain.Product, opt *domain.PriceOption, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	price := p.Price
	if opt != nil {
		price = opt.Price
	}
	return c.AddLine(domain.LineItem{
		ProductID:      p.ID,
		Name:           p.Name,
		Image:          p.Image,
		Category:       p.Category,
		THCContent:     p.THCContent,
		Price:          price,
		OriginalPrice:  p.Price,
		SelectedOption: opt,
		Quantity:       quantity,
	})
}

// AddLine adds a pre-built line item, subject to the same identity-merge
// rules as AddItem. The bundle pricing engine feeds its decomposed items
// through here.
func (c *Cart) AddLine(li domain.LineItem) error {
	if li.Quantity < 1 {
		li.Quantity = 1
	}
	c.mu.Lock()
	key := li.Key()
	merged := false
	for i := range c.items {
		if c.items[i].Key() == key {
			c.items[i].Quantity += li.Quantity
			c.items[i].Price = li.Price
			c.items[i].Bundle = li.Bundle
			merged = true
			break
		}
	}
	if !merged {
		c.items = append(c.items, li)
	}
	err := c.persistLocked()
	c.mu.Unlock()
	c.notify()
	return err
}

// RemoveItem deletes the line item matching the identity key. Removing an
// absent item is a no-op, not an error.
func (c *Cart) RemoveItem(productID int, opt *domain.PriceOption) error {
	key := domain.KeyFor(productID, opt)
	c.mu.Lock()
	kept := c.items[:0]
	for _, li := range c.items {
		if li.Key() != key {
			kept = append(kept, li)
		}
	}
	c.items = kept
	err := c.persistLocked()
	c.mu.Unlock()
	c.notify()
	return err
}

// UpdateQuantity sets the matching item's quantity, clamped to at least 1.
// Removal is the only way an item leaves the cart; quantity never reaches
// zero in place. No-op if the item is absent.
func (c *Cart) UpdateQuantity(productID int, opt *domain.PriceOption, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	key := domain.KeyFor(productID, opt)
	c.mu.Lock()
	for i := range c.items {
		if c.items[i].Key() == key {
			c.items[i].Quantity = quantity
			break
		}
	}
	err := c.persistLocked()
	c.mu.Unlock()
	c.notify()
	return err
}

func (c *Cart) Clear() error {
	c.mu.Lock()
	c.items = nil
	err := c.persistLocked()
	c.mu.Unlock()
	c.notify()
	return err
}

// Items returns a snapshot copy; callers must not expect later mutations to
// show through.
func (c *Cart) Items() []domain.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of effective price times quantity over all items.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, li := range c.items {
		total += li.Price * float64(li.Quantity)
	}
	return total
}

// Count is the total unit count across all items.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, li := range c.items {
		n += li.Quantity
	}
	return n
}

// Savings sums (original - effective) price over items whose original price
// strictly exceeds what they are charged at. Never negative.
func (c *Cart) Savings() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := 0.0
	for _, li := range c.items {
		if li.OriginalPrice > li.Price {
			s += (li.OriginalPrice - li.Price) * float64(li.Quantity)
		}
	}
	return s
}

func (c *Cart) persistLocked() error {
	if c.persist == nil {
		return nil
	}
	data, err := json.Marshal(cartState{Items: c.items})
	if err != nil {
		return fmt.Errorf("cart: encode state: %w", err)
	}
	if err := c.persist.Save(c.key, data); err != nil {
		return fmt.Errorf("cart: persist: %w", err)
	}
	return nil
}

func (c *Cart) notify() {
	c.mu.Lock()
	subs := make([]func(), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
