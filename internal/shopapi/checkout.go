package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/storefront/internal/checkout"
	"github.com/talkincode/storefront/internal/i18n"
	"github.com/talkincode/storefront/internal/webserver"
	"go.uber.org/zap"
)

type checkoutView struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

func (h *api) registerCheckoutRoutes(srv *webserver.Server) {
	srv.ApiGET("/cart/checkout", h.getCheckout)
}

// getCheckout composes the order message and the messaging deep link.
// The client opens the link; the cart is left as is.
func (h *api) getCheckout(c echo.Context) error {
	loc := webserver.Locale(c)
	ct := webserver.Visitor(c).Cart
	if ct.IsEmpty() {
		return fail(c, http.StatusBadRequest, "EMPTY_CART", i18n.T("emptyCart", loc), nil)
	}
	msg := ct.ComposeCheckoutMessage(loc)
	url := checkout.Link(h.appCtx.SiteConfig().ContactIdentifier(), msg)
	zap.L().Info("shopapi: checkout link issued",
		zap.Int("items", ct.ItemCount()),
		zap.Float64("total", ct.Total()))
	return ok(c, checkoutView{Message: msg, URL: url})
}
