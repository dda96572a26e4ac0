// Package adminapi serves the PIN-gated admin screens: catalog management,
// exports, dashboard summary and site settings.
package adminapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/storefront/internal/app"
	"github.com/talkincode/storefront/internal/domain"
	"github.com/talkincode/storefront/internal/i18n"
	"github.com/talkincode/storefront/internal/kvstore"
	"github.com/talkincode/storefront/internal/webserver"
	"go.uber.org/zap"
)

type api struct {
	appCtx app.AppContext
}

// Init registers the admin routes on srv. Every route requires a session
// that passed the PIN prompt.
func Init(srv *webserver.Server, appCtx app.AppContext) {
	h := &api{appCtx: appCtx}
	h.registerProductRoutes(srv)
	h.registerExportRoutes(srv)
	h.registerSummaryRoutes(srv)
	h.registerSettingsRoutes(srv)
}

// requireAdmin refuses sessions whose gate is closed.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		v := webserver.Visitor(c)
		if v == nil || !v.Gate.IsAuthorized() {
			return fail(c, http.StatusForbidden, "FORBIDDEN", i18n.T("adminRequired", webserver.Locale(c)), nil)
		}
		return next(c)
	}
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

// storeFailure maps a store error onto a response. A persistence failure
// means the change is live in memory but was not saved.
func storeFailure(c echo.Context, err error) error {
	loc := webserver.Locale(c)
	var ve *domain.ValidationError
	var nf *domain.NotFoundError
	var pe *kvstore.PersistenceError
	switch {
	case errors.As(err, &ve):
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", ve.Error(), map[string]string{"field": ve.Field})
	case errors.As(err, &nf):
		return fail(c, http.StatusNotFound, "NOT_FOUND", i18n.T("productNotFound", loc), nil)
	case errors.As(err, &pe):
		zap.L().Error("adminapi: change not saved", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", i18n.T("storageError", loc), err.Error())
	default:
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
	}
}
