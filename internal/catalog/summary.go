package catalog

import (
	"github.com/montanaflynn/stats"
)

// Summary aggregates the catalog for the admin dashboard.
type Summary struct {
	Products    int     `json:"products"`
	LowStock    int     `json:"lowStock"`
	StockUnits  int     `json:"stockUnits"`
	StockValue  float64 `json:"stockValue"`
	MeanPrice   float64 `json:"meanPrice"`
	MedianPrice float64 `json:"medianPrice"`
	MinPrice    float64 `json:"minPrice"`
	MaxPrice    float64 `json:"maxPrice"`
}

// Summary computes the dashboard figures from the current collection.
func (c *Catalog) Summary() Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var s Summary
	s.Products = len(c.products)
	if s.Products == 0 {
		return s
	}
	prices := make(stats.Float64Data, 0, len(c.products))
	for _, p := range c.products {
		prices = append(prices, p.Price)
		s.StockUnits += p.Stock
		s.StockValue += p.Price * float64(p.Stock)
		if p.LowStock() {
			s.LowStock++
		}
	}
	s.MeanPrice, _ = stats.Mean(prices)
	s.MedianPrice, _ = stats.Median(prices)
	s.MinPrice, _ = stats.Min(prices)
	s.MaxPrice, _ = stats.Max(prices)
	return s
}
