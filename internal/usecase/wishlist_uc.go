package usecase

import (
	"sync"

	"github.com/phenrril/flexlinen/internal/domain"
)

// WishlistStore is an in-memory set of products keyed by id, kept in
// insertion order. Nothing is persisted.
type WishlistStore struct {
	mu    sync.RWMutex
	items []domain.Product
}

func NewWishlistStore() *WishlistStore {
	return &WishlistStore{items: []domain.Product{}}
}

// Add reports whether p was newly added.
func (w *WishlistStore) Add(p domain.Product) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.indexOf(p.ID) >= 0 {
		return false
	}
	w.items = append(w.items, p.Clone())
	return true
}

// Remove reports whether id was present.
func (w *WishlistStore) Remove(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := w.indexOf(id)
	if i < 0 {
		return false
	}
	next := make([]domain.Product, 0, len(w.items)-1)
	next = append(next, w.items[:i]...)
	w.items = append(next, w.items[i+1:]...)
	return true
}

func (w *WishlistStore) Contains(id string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.indexOf(id) >= 0
}

func (w *WishlistStore) Items() []domain.Product {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]domain.Product, len(w.items))
	for i, p := range w.items {
		out[i] = p.Clone()
	}
	return out
}

func (w *WishlistStore) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.items)
}

func (w *WishlistStore) indexOf(id string) int {
	for i, p := range w.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}
