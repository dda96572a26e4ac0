// Package catalog owns the product collection. Every mutation rewrites the
// whole persisted collection; list order is insertion order.
package catalog

import (
	"math"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
	"github.com/talkincode/storefront/internal/domain"
	"github.com/talkincode/storefront/internal/events"
	"github.com/talkincode/storefront/internal/kvstore"
	"go.uber.org/zap"
)

// IDGenerator hands out clock-derived product ids.
type IDGenerator interface {
	Next() int64
}

func init() {
	// ids stay under 2^53 so browser clients read them exactly
	snowflake.NodeBits = 4
	snowflake.StepBits = 8
}

// SnowflakeIDs generates ids from a snowflake node.
type SnowflakeIDs struct {
	node *snowflake.Node
}

// NewSnowflakeIDs creates a generator for node (0..15).
func NewSnowflakeIDs(node int64) (*SnowflakeIDs, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, errors.Wrapf(err, "snowflake node %d", node)
	}
	return &SnowflakeIDs{node: n}, nil
}

func (s *SnowflakeIDs) Next() int64 {
	return s.node.Generate().Int64()
}

// Catalog is the product store.
type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
	store    kvstore.Store
	bus      *events.Bus
	ids      IDGenerator
}

// Open loads the persisted collection, falling back to the built-in default
// catalog, and writes the loaded collection back once.
func Open(store kvstore.Store, bus *events.Bus, ids IDGenerator) (*Catalog, error) {
	c := &Catalog{
		products: kvstore.Load(store, kvstore.KeyProducts, domain.DefaultCatalog()),
		store:    store,
		bus:      bus,
		ids:      ids,
	}
	zap.L().Info("catalog: loaded", zap.Int("products", len(c.products)))
	if err := kvstore.Save(store, kvstore.KeyProducts, c.products); err != nil {
		return c, err
	}
	return c, nil
}

// List returns a snapshot of the catalog in display order.
func (c *Catalog) List() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.CloneProducts(c.products)
}

// Get returns a copy of the product with id.
func (c *Catalog) Get(id int64) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.products[i].Clone(), true
	}
	return domain.Product{}, false
}

// Create validates draft, assigns a new id, appends it and persists the
// collection. The returned product is the stored version.
func (c *Catalog) Create(draft domain.Product) (domain.Product, error) {
	if err := Validate(draft); err != nil {
		return domain.Product{}, err
	}
	p := draft.Clone()
	p.BackfillArabic()

	c.mu.Lock()
	p.ID = c.nextID()
	c.products = append(c.products, p)
	err := c.persistLocked()
	c.mu.Unlock()

	zap.L().Info("catalog: product created", zap.Int64("id", p.ID), zap.String("title", p.TitleFr))
	c.bus.Publish(events.TopicCatalog, "create", p.ID)
	return p.Clone(), err
}

// Update replaces the product with the same id, keeping its position.
func (c *Catalog) Update(p domain.Product) (domain.Product, error) {
	if err := Validate(p); err != nil {
		return domain.Product{}, err
	}
	p = p.Clone()
	p.BackfillArabic()

	c.mu.Lock()
	i := c.indexOf(p.ID)
	if i < 0 {
		c.mu.Unlock()
		return domain.Product{}, &domain.NotFoundError{ID: p.ID}
	}
	c.products[i] = p
	err := c.persistLocked()
	c.mu.Unlock()

	zap.L().Info("catalog: product updated", zap.Int64("id", p.ID))
	c.bus.Publish(events.TopicCatalog, "update", p.ID)
	return p.Clone(), err
}

// Delete removes the product with id. Deleting an unknown id is a no-op.
func (c *Catalog) Delete(id int64) error {
	c.mu.Lock()
	i := c.indexOf(id)
	if i >= 0 {
		c.products = append(c.products[:i:i], c.products[i+1:]...)
	}
	err := c.persistLocked()
	c.mu.Unlock()

	if i >= 0 {
		zap.L().Info("catalog: product deleted", zap.Int64("id", id))
		c.bus.Publish(events.TopicCatalog, "delete", id)
	}
	return err
}

// LowStock returns the products whose stock is at or below their alert
// threshold right now.
func (c *Catalog) LowStock() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.Product
	for _, p := range c.products {
		if p.LowStock() {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Validate checks the fields a product cannot be saved without.
func Validate(p domain.Product) error {
	if strings.TrimSpace(p.TitleFr) == "" {
		return &domain.ValidationError{Field: "titleFr", Reason: "required"}
	}
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return &domain.ValidationError{Field: "price", Reason: "must be a finite number"}
	}
	if p.Price <= 0 {
		return &domain.ValidationError{Field: "price", Reason: "required"}
	}
	if p.Stock < 0 {
		return &domain.ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	if p.StockAlert < 0 {
		return &domain.ValidationError{Field: "stockAlert", Reason: "must not be negative"}
	}
	return nil
}

func (c *Catalog) indexOf(id int64) int {
	for i := range c.products {
		if c.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) nextID() int64 {
	for {
		id := c.ids.Next()
		if id > 0 && c.indexOf(id) < 0 {
			return id
		}
	}
}

func (c *Catalog) persistLocked() error {
	err := kvstore.Save(c.store, kvstore.KeyProducts, c.products)
	if err != nil {
		zap.L().Error("catalog: persist failed, in-memory state kept", zap.Error(err))
	}
	return err
}
