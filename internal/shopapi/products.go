package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/storefront/internal/domain"
	"github.com/talkincode/storefront/internal/i18n"
	"github.com/talkincode/storefront/internal/webserver"
)

// productView is a product with its texts resolved for one locale.
type productView struct {
	domain.Product
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	SellingPoint string `json:"sellingPoint"`
	LowStock     bool   `json:"lowStock"`
	HasDiscount  bool   `json:"hasDiscount"`
}

func newProductView(p domain.Product, loc domain.Locale) productView {
	return productView{
		Product:      p,
		Title:        p.Title(loc),
		Subtitle:     p.Subtitle(loc),
		SellingPoint: p.SellingPoint(loc),
		LowStock:     p.LowStock(),
		HasDiscount:  p.HasDiscount(),
	}
}

func (h *api) registerProductRoutes(srv *webserver.Server) {
	srv.ApiGET("/products", h.listProducts)
	srv.ApiGET("/products/:id", h.getProduct)
}

func (h *api) listProducts(c echo.Context) error {
	loc := webserver.Locale(c)
	category := c.QueryParam("category")
	products := h.appCtx.Catalog().List()
	rows := make([]productView, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		rows = append(rows, newProductView(p, loc))
	}
	return ok(c, rows)
}

func (h *api) getProduct(c echo.Context) error {
	id, valid := parseID(c)
	if !valid {
		return invalidID(c)
	}
	loc := webserver.Locale(c)
	p, found := h.appCtx.Catalog().Get(id)
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", i18n.T("productNotFound", loc), nil)
	}
	return ok(c, newProductView(p, loc))
}
