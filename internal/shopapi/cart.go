package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/storefront/internal/cart"
	"github.com/talkincode/storefront/internal/domain"
	"github.com/talkincode/storefront/internal/i18n"
	"github.com/talkincode/storefront/internal/webserver"
)

type cartLine struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

type cartView struct {
	Items     []cartLine `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
	Currency  string     `json:"currency"`
	Message   string     `json:"message,omitempty"`
}

func newCartView(ct *cart.Cart, loc domain.Locale) cartView {
	items := ct.Items()
	lines := make([]cartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, cartLine{
			ID:        it.Product.ID,
			Title:     it.Product.Title(loc),
			Image:     it.Product.Image,
			Price:     it.Product.Price,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal(),
		})
	}
	return cartView{
		Items:     lines,
		Total:     ct.Total(),
		ItemCount: ct.ItemCount(),
		Currency:  ct.Currency(),
	}
}

func (h *api) registerCartRoutes(srv *webserver.Server) {
	srv.ApiGET("/cart", h.getCart)
	srv.ApiPOST("/cart/items", h.addCartItem)
	srv.ApiPATCH("/cart/items/:id", h.updateCartItem)
	srv.ApiDELETE("/cart/items/:id", h.removeCartItem)
}

func (h *api) getCart(c echo.Context) error {
	return ok(c, newCartView(webserver.Visitor(c).Cart, webserver.Locale(c)))
}

// addCartItem snapshots the live product into the cart.
func (h *api) addCartItem(c echo.Context) error {
	var payload struct {
		ID int64 `json:"id"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	loc := webserver.Locale(c)
	p, found := h.appCtx.Catalog().Get(payload.ID)
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", i18n.T("productNotFound", loc), nil)
	}
	ct := webserver.Visitor(c).Cart
	ct.AddItem(p)
	view := newCartView(ct, loc)
	view.Message = p.Title(loc) + " " + i18n.T("added", loc)
	return ok(c, view)
}

func (h *api) updateCartItem(c echo.Context) error {
	id, valid := parseID(c)
	if !valid {
		return invalidID(c)
	}
	var payload struct {
		Delta int `json:"delta"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}
	ct := webserver.Visitor(c).Cart
	ct.UpdateQuantity(id, payload.Delta)
	return ok(c, newCartView(ct, webserver.Locale(c)))
}

func (h *api) removeCartItem(c echo.Context) error {
	id, valid := parseID(c)
	if !valid {
		return invalidID(c)
	}
	ct := webserver.Visitor(c).Cart
	ct.RemoveItem(id)
	return ok(c, newCartView(ct, webserver.Locale(c)))
}
