// Package cart holds a visitor's selection. Items are value snapshots of
// catalog products taken at add time; later catalog edits never reach them.
// The cart lives in memory only.
package cart

import (
	"sync"

	"github.com/talkincode/storefront/internal/domain"
	"github.com/talkincode/storefront/internal/events"
)

// DefaultCurrency is the label appended to amounts in checkout messages.
const DefaultCurrency = "MRU"

// Option configures a Cart.
type Option func(*Cart)

// WithBus publishes a cart change after every mutation.
func WithBus(bus *events.Bus) Option {
	return func(c *Cart) { c.bus = bus }
}

// WithCurrency sets the currency label used by ComposeCheckoutMessage.
func WithCurrency(currency string) Option {
	return func(c *Cart) {
		if currency != "" {
			c.currency = currency
		}
	}
}

// Cart is an ordered set of line items keyed by product id.
type Cart struct {
	mu       sync.RWMutex
	items    []domain.CartItem
	currency string
	bus      *events.Bus
}

// New returns an empty cart.
func New(opts ...Option) *Cart {
	c := &Cart{currency: DefaultCurrency}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddItem adds one unit of p. An existing line only gets its quantity
// bumped; its snapshot is left as it was first added.
func (c *Cart) AddItem(p domain.Product) {
	c.mu.Lock()
	if i := c.indexOf(p.ID); i >= 0 {
		c.items[i].Quantity++
	} else {
		c.items = append(c.items, domain.CartItem{Product: p.Clone(), Quantity: 1})
	}
	c.mu.Unlock()
	c.bus.Publish(events.TopicCart, "add", p.ID)
}

// UpdateQuantity changes the quantity of line id by delta, never going
// below 1. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(id int64, delta int) {
	c.mu.Lock()
	i := c.indexOf(id)
	if i >= 0 {
		c.items[i].Quantity = max(1, c.items[i].Quantity+delta)
	}
	c.mu.Unlock()
	if i >= 0 {
		c.bus.Publish(events.TopicCart, "quantity", id)
	}
}

// RemoveItem drops line id if present.
func (c *Cart) RemoveItem(id int64) {
	c.mu.Lock()
	i := c.indexOf(id)
	if i >= 0 {
		c.items = append(c.items[:i:i], c.items[i+1:]...)
	}
	c.mu.Unlock()
	if i >= 0 {
		c.bus.Publish(events.TopicCart, "remove", id)
	}
}

// Items returns a copy of the lines in add order.
func (c *Cart) Items() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.CartItem, len(c.items))
	for i, item := range c.items {
		out[i] = item.Clone()
	}
	return out
}

// Total sums price times quantity using the snapshot prices.
func (c *Cart) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var total float64
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}

// ItemCount sums the quantities.
func (c *Cart) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items) == 0
}

// Currency returns the label used for amounts.
func (c *Cart) Currency() string {
	return c.currency
}

func (c *Cart) indexOf(id int64) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}
