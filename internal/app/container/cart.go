// Package container holds the client-state collections (cart, wishlist).
// Each container owns its collection exclusively: all mutation goes
// through its methods, every mutation is persisted whole to the storage
// bridge, and aggregates are derived from the collection on demand so
// they can never drift.
package container

import (
	"encoding/json"
	"sync"

	"github.com/luxe-fashion/luxe-backend/internal/app/model"
	"github.com/luxe-fashion/luxe-backend/internal/kv"
	"github.com/luxe-fashion/luxe-backend/pkg/logger"
)

// CartSummary carries the derived aggregates pushed to subscribers after
// every mutation (header badge, mini-cart total).
type CartSummary struct {
	TotalItems int   `json:"total_items"`
	TotalPrice int64 `json:"total_price"`
}

// Cart is the ordered collection of line items. Lines are identified by
// (product id, color, size); adding a key that already exists merges
// quantities instead of appending.
type Cart struct {
	mu          sync.Mutex
	store       kv.Store
	items       []model.LineItem
	subscribers []func(CartSummary)
}

// NewCart creates the cart and hydrates it from the bridge. Malformed or
// absent persisted state yields an empty cart, never an error.
func NewCart(store kv.Store) *Cart {
	c := &Cart{
		store: store,
		items: []model.LineItem{},
	}
	c.hydrate()
	return c
}

func (c *Cart) hydrate() {
	data, ok := c.store.Load(kv.KeyCart)
	if !ok {
		return
	}

	var items []model.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn("Persisted cart is malformed, starting empty", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if items != nil {
		c.items = items
	}

	logger.Debug("Cart hydrated", map[string]interface{}{
		"lines": len(c.items),
	})
}

// Add merges the item into the cart. A non-positive quantity is treated
// as 1. Returns the resulting line.
func (c *Cart) Add(item model.LineItem) model.LineItem {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c.mu.Lock()
	key := item.Key()
	merged := item
	found := false
	for i := range c.items {
		if c.items[i].Key() == key {
			c.items[i].Quantity += item.Quantity
			merged = c.items[i]
			found = true
			break
		}
	}
	if !found {
		c.items = append(c.items, item)
	}
	c.persistLocked()
	summary, subs := c.snapshotLocked()
	c.mu.Unlock()

	notify(subs, summary)
	return merged
}

// Remove deletes the line with the given key. Removing an absent key is
// a no-op.
func (c *Cart) Remove(key model.ItemKey) {
	c.mu.Lock()
	index := -1
	for i := range c.items {
		if c.items[i].Key() == key {
			index = i
			break
		}
	}
	if index < 0 {
		c.mu.Unlock()
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.persistLocked()
	summary, subs := c.snapshotLocked()
	c.mu.Unlock()

	notify(subs, summary)
}

// UpdateQuantity sets the quantity of an existing line. Quantities below
// 1 clamp to 1; removal never happens through this path. Updating an
// absent key is a no-op. Returns true when a line was updated.
func (c *Cart) UpdateQuantity(key model.ItemKey, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	found := false
	for i := range c.items {
		if c.items[i].Key() == key {
			c.items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		c.mu.Unlock()
		return false
	}
	c.persistLocked()
	summary, subs := c.snapshotLocked()
	c.mu.Unlock()

	notify(subs, summary)
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = []model.LineItem{}
	c.persistLocked()
	summary, subs := c.snapshotLocked()
	c.mu.Unlock()

	notify(subs, summary)
}

// Items returns a copy of the collection in insertion order.
func (c *Cart) Items() []model.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems returns the sum of line quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summaryLocked().TotalItems
}

// TotalPrice returns the sum of price times quantity over all lines.
func (c *Cart) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summaryLocked().TotalPrice
}

// Summary returns both derived aggregates at once.
func (c *Cart) Summary() CartSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summaryLocked()
}

// Subscribe registers a callback invoked with the new aggregates after
// every mutation.
func (c *Cart) Subscribe(fn func(CartSummary)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

func (c *Cart) summaryLocked() CartSummary {
	var s CartSummary
	for _, item := range c.items {
		s.TotalItems += item.Quantity
		s.TotalPrice += item.Subtotal()
	}
	return s
}

func (c *Cart) snapshotLocked() (CartSummary, []func(CartSummary)) {
	subs := make([]func(CartSummary), len(c.subscribers))
	copy(subs, c.subscribers)
	return c.summaryLocked(), subs
}

func (c *Cart) persistLocked() {
	data, err := json.Marshal(c.items)
	if err != nil {
		logger.Warn("Failed to encode cart for persistence", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	c.store.Save(kv.KeyCart, data)
}

func notify[T any](subs []func(T), value T) {
	for _, fn := range subs {
		fn(value)
	}
}
