package container

import (
	"encoding/json"
	"sync"

	"github.com/luxe-fashion/luxe-backend/internal/app/model"
	"github.com/luxe-fashion/luxe-backend/internal/kv"
	"github.com/luxe-fashion/luxe-backend/pkg/logger"
)

// Wishlist is the ordered collection of saved products, keyed by product
// id alone. Adding an id that is already present is a no-op.
type Wishlist struct {
	mu          sync.Mutex
	store       kv.Store
	items       []model.WishlistItem
	subscribers []func(int)
}

// NewWishlist creates the wishlist and hydrates it from the bridge.
// Malformed or absent persisted state yields an empty wishlist.
func NewWishlist(store kv.Store) *Wishlist {
	w := &Wishlist{
		store: store,
		items: []model.WishlistItem{},
	}
	w.hydrate()
	return w
}

func (w *Wishlist) hydrate() {
	data, ok := w.store.Load(kv.KeyWishlist)
	if !ok {
		return
	}

	var items []model.WishlistItem
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn("Persisted wishlist is malformed, starting empty", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if items != nil {
		w.items = items
	}

	logger.Debug("Wishlist hydrated", map[string]interface{}{
		"count": len(w.items),
	})
}

// Add appends the item unless its id is already present. Returns true
// when the item was added.
func (w *Wishlist) Add(item model.WishlistItem) bool {
	w.mu.Lock()
	for i := range w.items {
		if w.items[i].ID == item.ID {
			w.mu.Unlock()
			return false
		}
	}
	w.items = append(w.items, item)
	w.persistLocked()
	count, subs := w.snapshotLocked()
	w.mu.Unlock()

	notify(subs, count)
	return true
}

// Remove deletes the item with the given product id. Removing an absent
// id is a no-op. Returns true when an item was removed.
func (w *Wishlist) Remove(id string) bool {
	w.mu.Lock()
	index := -1
	for i := range w.items {
		if w.items[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		w.mu.Unlock()
		return false
	}
	w.items = append(w.items[:index], w.items[index+1:]...)
	w.persistLocked()
	count, subs := w.snapshotLocked()
	w.mu.Unlock()

	notify(subs, count)
	return true
}

// Contains reports whether a product id is saved.
func (w *Wishlist) Contains(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i := range w.items {
		if w.items[i].ID == id {
			return true
		}
	}
	return false
}

// Clear empties the wishlist.
func (w *Wishlist) Clear() {
	w.mu.Lock()
	w.items = []model.WishlistItem{}
	w.persistLocked()
	count, subs := w.snapshotLocked()
	w.mu.Unlock()

	notify(subs, count)
}

// Items returns a copy of the collection in insertion order.
func (w *Wishlist) Items() []model.WishlistItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]model.WishlistItem, len(w.items))
	copy(out, w.items)
	return out
}

// Count returns the number of saved products.
func (w *Wishlist) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// Subscribe registers a callback invoked with the new count after every
// mutation.
func (w *Wishlist) Subscribe(fn func(int)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subscribers = append(w.subscribers, fn)
}

func (w *Wishlist) snapshotLocked() (int, []func(int)) {
	subs := make([]func(int), len(w.subscribers))
	copy(subs, w.subscribers)
	return len(w.items), subs
}

func (w *Wishlist) persistLocked() {
	data, err := json.Marshal(w.items)
	if err != nil {
		logger.Warn("Failed to encode wishlist for persistence", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	w.store.Save(kv.KeyWishlist, data)
}
