package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"greenleaf/internal/domain"
)

// WishlistItem is a saved-for-later product reference plus the option it was
// saved with. No pricing logic attaches to it.
type WishlistItem struct {
	domain.Product
	SelectedOption *domain.PriceOption `json:"selectedOption,omitempty"`
}

// Wishlist mirrors the cart without pricing. Unlike the cart's aggregates,
// the count is maintained incrementally alongside the items and must stay in
// lockstep with their length.
type Wishlist struct {
	mu      sync.Mutex
	key     string
	items   []WishlistItem
	count   int
	persist Persister
	subs    []func()
}

type wishlistState struct {
	Items []WishlistItem `json:"items"`
	Count int            `json:"count"`
}

func NewWishlist(key string, p Persister) *Wishlist {
	w := &Wishlist{key: key, persist: p}
	if p == nil {
		return w
	}
	data, err := p.Load(key)
	if err != nil || data == nil {
		return w
	}
	var st wishlistState
	if err := json.Unmarshal(data, &st); err != nil {
		return w
	}
	w.items = st.Items
	w.count = len(st.Items)
	return w
}

func (w *Wishlist) Subscribe(fn func()) {
	w.mu.Lock()
	w.subs = append(w.subs, fn)
	w.mu.Unlock()
}

// sameOption is a deep equality check on the saved option, not just its
// label: both nil, or both set with equal label and price.
func sameOption(a, b *domain.PriceOption) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Add saves a product. Adding an item already present (same id and
// deep-equal option) leaves the list untouched.
func (w *Wishlist) Add(p domain.Product, opt *domain.PriceOption) error {
	w.mu.Lock()
	for _, it := range w.items {
		if it.ID == p.ID && sameOption(it.SelectedOption, opt) {
			w.mu.Unlock()
			return nil
		}
	}
	w.items = append(w.items, WishlistItem{Product: p, SelectedOption: opt})
	w.count++
	err := w.persistLocked()
	w.mu.Unlock()
	w.notify()
	return err
}

// Remove deletes by the same deep-equality match Add deduplicates on. No-op
// when absent.
func (w *Wishlist) Remove(productID int, opt *domain.PriceOption) error {
	w.mu.Lock()
	kept := w.items[:0]
	for _, it := range w.items {
		if it.ID == productID && sameOption(it.SelectedOption, opt) {
			w.count--
			continue
		}
		kept = append(kept, it)
	}
	if w.count < 0 {
		w.count = 0
	}
	w.items = kept
	err := w.persistLocked()
	w.mu.Unlock()
	w.notify()
	return err
}

func (w *Wishlist) Clear() error {
	w.mu.Lock()
	w.items = nil
	w.count = 0
	err := w.persistLocked()
	w.mu.Unlock()
	w.notify()
	return err
}

func (w *Wishlist) Items() []WishlistItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]WishlistItem, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Wishlist) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

func (w *Wishlist) persistLocked() error {
	if w.persist == nil {
		return nil
	}
	data, err := json.Marshal(wishlistState{Items: w.items, Count: w.count})
	if err != nil {
		return fmt.Errorf("wishlist: encode state: %w", err)
	}
	if err := w.persist.Save(w.key, data); err != nil {
		return fmt.Errorf("wishlist: persist: %w", err)
	}
	return nil
}

func (w *Wishlist) notify() {
	w.mu.Lock()
	subs := make([]func(), len(w.subs))
	copy(subs, w.subs)
	w.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
