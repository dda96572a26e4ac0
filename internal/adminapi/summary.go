package adminapi

import (
	"github.com/labstack/echo/v4"
	"github.com/talkincode/storefront/internal/webserver"
)

func (h *api) registerSummaryRoutes(srv *webserver.Server) {
	srv.ApiGET("/admin/summary", h.getSummary, requireAdmin)
}

func (h *api) getSummary(c echo.Context) error {
	return ok(c, h.appCtx.Catalog().Summary())
}
