package store

import (
	"fmt"
	"sync"
)

// Fixed persistence keys, one slot per session.
const (
	KeyCart     = "cart:%s"
	KeyWishlist = "wishlist:%s"
)

// Persister is the durable key-value slot behind a store. A store writes its
// serialized state after every mutation; persistence failures surface to the
// caller but never roll back the in-memory state, which stays the source of
// truth.
type Persister interface {
	Save(key string, data []byte) error
	// Load returns (nil, nil) when the key has never been written.
	Load(key string) ([]byte, error)
}

// Manager hands out one cart and one wishlist per session id, loading
// persisted state on first access. When two writers share a slot (the
// multi-tab case), last writer wins; there is no merge.
type Manager struct {
	mu      sync.Mutex
	persist Persister
	carts   map[string]*Cart
	wish    map[string]*Wishlist
}

func NewManager(p Persister) *Manager {
	return &Manager{
		persist: p,
		carts:   make(map[string]*Cart),
		wish:    make(map[string]*Wishlist),
	}
}

func (m *Manager) Cart(sid string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[sid]
	if !ok {
		c = NewCart(fmt.Sprintf(KeyCart, sid), m.persist)
		m.carts[sid] = c
	}
	return c
}

func (m *Manager) Wishlist(sid string) *Wishlist {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wish[sid]
	if !ok {
		w = NewWishlist(fmt.Sprintf(KeyWishlist, sid), m.persist)
		m.wish[sid] = w
	}
	return w
}
