package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/storefront/internal/i18n"
	"github.com/talkincode/storefront/internal/webserver"
	"go.uber.org/zap"
)

func (h *api) registerLoginRoutes(srv *webserver.Server) {
	srv.ApiPOST("/admin/login", h.postLogin)
	srv.ApiGET("/admin/status", h.getStatus)
}

func (h *api) postLogin(c echo.Context) error {
	var payload struct {
		Pin string `json:"pin"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	if !webserver.Visitor(c).Gate.Attempt(payload.Pin) {
		zap.L().Warn("shopapi: admin login refused", zap.String("ip", c.RealIP()))
		return fail(c, http.StatusUnauthorized, "ACCESS_DENIED", i18n.T("accessDenied", webserver.Locale(c)), nil)
	}
	return ok(c, map[string]interface{}{"authorized": true})
}

func (h *api) getStatus(c echo.Context) error {
	return ok(c, map[string]interface{}{"authorized": webserver.Visitor(c).Gate.IsAuthorized()})
}
