package adminapi

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/storefront/internal/webserver"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *api) registerExportRoutes(srv *webserver.Server) {
	srv.ApiGET("/admin/products/export.csv", h.exportCSV, requireAdmin)
	srv.ApiGET("/admin/products/export.xlsx", h.exportXLSX, requireAdmin)
}

func (h *api) exportCSV(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.appCtx.Catalog().WriteCSV(&buf); err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to export products", err.Error())
	}
	return attachment(c, "csv", "text/csv; charset=utf-8", buf.Bytes())
}

func (h *api) exportXLSX(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.appCtx.Catalog().WriteXLSX(&buf); err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to export products", err.Error())
	}
	return attachment(c, "xlsx", xlsxContentType, buf.Bytes())
}

func attachment(c echo.Context, ext, contentType string, body []byte) error {
	name := fmt.Sprintf("products-%s.%s", time.Now().Format("20060102"), ext)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, contentType, body)
}
