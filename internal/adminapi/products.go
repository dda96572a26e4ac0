package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/storefront/internal/domain"
	"github.com/talkincode/storefront/internal/i18n"
	"github.com/talkincode/storefront/internal/webserver"
)

// adminProduct is the raw product plus its current stock status.
type adminProduct struct {
	domain.Product
	LowStock bool `json:"lowStock"`
}

type productResult struct {
	Product adminProduct `json:"product"`
	Message string       `json:"message"`
}

func newAdminProduct(p domain.Product) adminProduct {
	return adminProduct{Product: p, LowStock: p.LowStock()}
}

func (h *api) registerProductRoutes(srv *webserver.Server) {
	srv.ApiGET("/admin/products", h.listProducts, requireAdmin)
	srv.ApiPOST("/admin/products", h.createProduct, requireAdmin)
	srv.ApiPUT("/admin/products/:id", h.updateProduct, requireAdmin)
	srv.ApiDELETE("/admin/products/:id", h.deleteProduct, requireAdmin)
	srv.ApiGET("/admin/categories", h.listCategories, requireAdmin)
}

func (h *api) listProducts(c echo.Context) error {
	lowOnly := c.QueryParam("lowStock") == "true"
	q := strings.ToLower(strings.TrimSpace(c.QueryParam("q")))

	products := h.appCtx.Catalog().List()
	rows := make([]adminProduct, 0, len(products))
	for _, p := range products {
		if lowOnly && !p.LowStock() {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.TitleFr), q) && !strings.Contains(strings.ToLower(p.TitleAr), q) {
			continue
		}
		rows = append(rows, newAdminProduct(p))
	}
	return ok(c, rows)
}

func (h *api) createProduct(c echo.Context) error {
	var payload domain.Product
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	p, err := h.appCtx.Catalog().Create(payload)
	if err != nil {
		return storeFailure(c, err)
	}
	return ok(c, productResult{Product: newAdminProduct(p), Message: i18n.T("productAdded", webserver.Locale(c))})
}

func (h *api) updateProduct(c echo.Context) error {
	id, valid := parseID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	var payload domain.Product
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	payload.ID = id
	p, err := h.appCtx.Catalog().Update(payload)
	if err != nil {
		return storeFailure(c, err)
	}
	return ok(c, productResult{Product: newAdminProduct(p), Message: i18n.T("productUpdated", webserver.Locale(c))})
}

func (h *api) deleteProduct(c echo.Context) error {
	id, valid := parseID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	if err := h.appCtx.Catalog().Delete(id); err != nil {
		return storeFailure(c, err)
	}
	return ok(c, map[string]interface{}{"id": id, "message": i18n.T("productDeleted", webserver.Locale(c))})
}

// listCategories returns the suggested categories merged with those in use.
func (h *api) listCategories(c echo.Context) error {
	seen := make(map[string]bool)
	out := make([]string, 0, len(domain.SuggestedCategories))
	for _, cat := range domain.SuggestedCategories {
		seen[cat] = true
		out = append(out, cat)
	}
	for _, p := range h.appCtx.Catalog().List() {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return ok(c, out)
}
