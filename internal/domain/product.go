package domain

import "strings"

// Product is a catalog entry. Field names follow the persisted record layout.
type Product struct {
	ID             int64    `json:"id" form:"id"`
	TitleFr        string   `json:"titleFr" form:"titleFr"`
	TitleAr        string   `json:"titleAr" form:"titleAr"`
	SubtitleFr     string   `json:"subtitleFr" form:"subtitleFr"`
	SubtitleAr     string   `json:"subtitleAr" form:"subtitleAr"`
	SellingPointFr string   `json:"sellingPointFr" form:"sellingPointFr"`
	SellingPointAr string   `json:"sellingPointAr" form:"sellingPointAr"`
	Price          float64  `json:"price" form:"price"`
	OldPrice       *float64 `json:"oldPrice,omitempty" form:"oldPrice"` // advisory, should be >= Price
	Image          string   `json:"image" form:"image"`
	Category       string   `json:"category" form:"category"`
	IsNew          bool     `json:"isNew" form:"isNew"`
	Features       []string `json:"features" form:"features"`
	Stock          int      `json:"stock" form:"stock"`
	StockAlert     int      `json:"stockAlert" form:"stockAlert"`
	Packaging      string   `json:"packaging" form:"packaging"`
	Warranty       string   `json:"warranty,omitempty" form:"warranty"`
	SizeGuide      string   `json:"sizeGuide,omitempty" form:"sizeGuide"`
}

// SuggestedCategories are the values offered by the admin product form.
// The category set itself is open.
var SuggestedCategories = []string{"High-Tech", "Mode", "Maison", "Beauté"}

// LowStock reports whether the stock level is at or below the alert threshold.
func (p Product) LowStock() bool {
	return p.Stock <= p.StockAlert
}

// Title returns the product title for the locale.
func (p Product) Title(l Locale) string {
	return pick(l, p.TitleFr, p.TitleAr)
}

// Subtitle returns the product subtitle for the locale.
func (p Product) Subtitle(l Locale) string {
	return pick(l, p.SubtitleFr, p.SubtitleAr)
}

// SellingPoint returns the selling argument for the locale.
func (p Product) SellingPoint(l Locale) string {
	return pick(l, p.SellingPointFr, p.SellingPointAr)
}

// HasDiscount reports whether an old price above the current price is set.
func (p Product) HasDiscount() bool {
	return p.OldPrice != nil && *p.OldPrice > p.Price
}

// BackfillArabic copies every French text into its Arabic counterpart when
// the latter is empty.
func (p *Product) BackfillArabic() {
	if strings.TrimSpace(p.TitleAr) == "" {
		p.TitleAr = p.TitleFr
	}
	if strings.TrimSpace(p.SubtitleAr) == "" {
		p.SubtitleAr = p.SubtitleFr
	}
	if strings.TrimSpace(p.SellingPointAr) == "" {
		p.SellingPointAr = p.SellingPointFr
	}
}

// Clone returns a deep copy that shares no memory with p.
func (p Product) Clone() Product {
	c := p
	if p.Features != nil {
		c.Features = make([]string, len(p.Features))
		copy(c.Features, p.Features)
	}
	if p.OldPrice != nil {
		v := *p.OldPrice
		c.OldPrice = &v
	}
	return c
}

// CloneProducts deep-copies a product slice.
func CloneProducts(src []Product) []Product {
	out := make([]Product, len(src))
	for i, p := range src {
		out[i] = p.Clone()
	}
	return out
}

func pick(l Locale, fr, ar string) string {
	if l == Arabic && ar != "" {
		return ar
	}
	return fr
}
