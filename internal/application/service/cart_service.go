package service

import (
	"log"
	"sync"
	"time"

	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/pkg/apperror"
)

// CartStore is one cashier's in-progress sale. Items keep the order they
// were first added in; the total is derived on every read.
type CartStore struct {
	mu    sync.Mutex
	order []string
	items map[string]*entity.CartItem
}

// NewCartStore creates an empty cart
func NewCartStore() *CartStore {
	return &CartStore{items: make(map[string]*entity.CartItem)}
}

// AddItem adds quantity of product. Adding a product already in the cart
// accumulates its quantity and keeps the first price seen.
func (c *CartStore) AddItem(product entity.Product, quantity int) error {
	if quantity < 0 {
		return apperror.NewValidationError([]apperror.FieldError{{Field: "quantity", Message: "quantity must not be negative"}})
	}
	if product.Price < 0 {
		return apperror.NewValidationError([]apperror.FieldError{{Field: "price", Message: "price must not be negative"}})
	}
	if product.ID == "" {
		return apperror.NewRequiredError("product_id")
	}
	if quantity == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if item, ok := c.items[product.ID]; ok {
		item.Quantity += quantity
		return nil
	}
	c.items[product.ID] = &entity.CartItem{Product: product, Quantity: quantity, Price: product.Price}
	c.order = append(c.order, product.ID)
	return nil
}

// UpdateQuantity replaces an item's quantity. Zero or less removes it.
func (c *CartStore) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if item, ok := c.items[productID]; ok {
		item.Quantity = quantity
	}
}

// RemoveItem drops a product from the cart
func (c *CartStore) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[productID]; !ok {
		return
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart
func (c *CartStore) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*entity.CartItem)
	c.order = nil
}

// ItemQuantity is 0 for a product not in the cart
func (c *CartStore) ItemQuantity(productID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if item, ok := c.items[productID]; ok {
		return item.Quantity
	}
	return 0
}

// Total sums every line's subtotal
func (c *CartStore) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Count is the number of units across all lines
func (c *CartStore) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Items returns a copy of the lines in insertion order
func (c *CartStore) Items() []entity.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]entity.CartItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.items[id])
	}
	return items
}

// IsEmpty reports whether the cart has no lines
func (c *CartStore) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

// transactionItems converts cart lines into payload lines
func transactionItems(items []entity.CartItem) []entity.TransactionItem {
	lines := make([]entity.TransactionItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, item.TransactionItem())
	}
	return lines
}

// Settle takes a submitted snapshot out of the cart. Only the snapshotted
// quantities are removed, so anything added after the snapshot stays.
func (c *CartStore) Settle(submitted []entity.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, sold := range submitted {
		item, ok := c.items[sold.Product.ID]
		if !ok {
			continue
		}
		item.Quantity -= sold.Quantity
		if item.Quantity > 0 {
			continue
		}
		delete(c.items, sold.Product.ID)
		for i, id := range c.order {
			if id == sold.Product.ID {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

// CartRegistry hands out exactly one cart per cashier session
type CartRegistry struct {
	mu       sync.Mutex
	carts    map[string]*sessionCart
	now      func() time.Time
	maxIdle  time.Duration
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

type sessionCart struct {
	cart     *CartStore
	lastSeen time.Time
}

// NewCartRegistry creates an empty registry. Carts untouched for maxIdle are
// dropped by a background sweep every interval; a zero maxIdle keeps them
// for the life of the process.
func NewCartRegistry(maxIdle, interval time.Duration) *CartRegistry {
	r := &CartRegistry{
		carts:    make(map[string]*sessionCart),
		now:      time.Now,
		maxIdle:  maxIdle,
		interval: interval,
		stop:     make(chan struct{}),
	}
	if maxIdle > 0 && interval > 0 {
		go r.cleanupLoop()
	}
	return r
}

// Stop ends the background sweep
func (r *CartRegistry) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// ForSession returns the session's cart, creating it on first use
func (r *CartRegistry) ForSession(sessionID string) *CartStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.carts[sessionID]
	if !ok {
		entry = &sessionCart{cart: NewCartStore()}
		r.carts[sessionID] = entry
	}
	entry.lastSeen = r.now()
	return entry.cart
}

// Len is the number of live carts
func (r *CartRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}

// PruneIdle drops carts not used for longer than maxIdle and returns how
// many were dropped
func (r *CartRegistry) PruneIdle() int {
	if r.maxIdle <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.maxIdle)
	pruned := 0
	for id, entry := range r.carts {
		if entry.lastSeen.Before(cutoff) {
			delete(r.carts, id)
			pruned++
		}
	}
	return pruned
}

func (r *CartRegistry) cleanupLoop() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := r.PruneIdle(); n > 0 {
				log.Printf("[cart] dropped %d idle carts", n)
			}
		case <-r.stop:
			return
		}
	}
}
