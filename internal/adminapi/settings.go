package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/storefront/internal/domain"
	"github.com/talkincode/storefront/internal/i18n"
	"github.com/talkincode/storefront/internal/webserver"
)

func (h *api) registerSettingsRoutes(srv *webserver.Server) {
	srv.ApiGET("/admin/settings", h.getSettings, requireAdmin)
	srv.ApiPUT("/admin/settings", h.putSettings, requireAdmin)
}

func (h *api) getSettings(c echo.Context) error {
	return ok(c, h.appCtx.SiteConfig().Settings())
}

// putSettings replaces PIN, contact and site content in one go. Empty PIN
// and contact are accepted.
func (h *api) putSettings(c echo.Context) error {
	var payload domain.Settings
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse settings", err.Error())
	}
	store := h.appCtx.SiteConfig()
	if err := store.SaveSettings(payload.AdminPin, payload.ContactIdentifier, payload.SiteContent); err != nil {
		return storeFailure(c, err)
	}
	return ok(c, map[string]interface{}{
		"settings": store.Settings(),
		"message":  i18n.T("settingsSaved", webserver.Locale(c)),
	})
}
