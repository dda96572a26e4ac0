// Package shopapi serves the public storefront: site content, catalog,
// the visitor's cart with checkout hand-off, and the admin PIN prompt.
package shopapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/storefront/internal/app"
	"github.com/talkincode/storefront/internal/webserver"
)

type api struct {
	appCtx app.AppContext
}

// Init registers the public routes on srv.
func Init(srv *webserver.Server, appCtx app.AppContext) {
	h := &api{appCtx: appCtx}
	h.registerSiteRoutes(srv)
	h.registerProductRoutes(srv)
	h.registerCartRoutes(srv)
	h.registerCheckoutRoutes(srv)
	h.registerLoginRoutes(srv)
}

func ok(c echo.Context, data interface{}) error {
	return webserver.Ok(c, data)
}

func fail(c echo.Context, status int, code, msg string, details interface{}) error {
	return webserver.Fail(c, status, code, msg, details)
}

func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}

func invalidID(c echo.Context) error {
	return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
}
