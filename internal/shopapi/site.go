package shopapi

import (
	"github.com/labstack/echo/v4"
	"github.com/talkincode/storefront/internal/webserver"
)

type siteView struct {
	Locale       string `json:"locale"`
	Dir          string `json:"dir"`
	StoreName    string `json:"storeName"`
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
	FooterText   string `json:"footerText"`
	Currency     string `json:"currency"`
}

func (h *api) registerSiteRoutes(srv *webserver.Server) {
	srv.ApiGET("/site", h.getSite)
}

func (h *api) getSite(c echo.Context) error {
	loc := webserver.Locale(c)
	content := h.appCtx.SiteConfig().SiteContent()
	return ok(c, siteView{
		Locale:       loc.String(),
		Dir:          loc.Dir(),
		StoreName:    content.StoreName,
		HeroTitle:    content.HeroTitle.Get(loc),
		HeroSubtitle: content.HeroSubtitle.Get(loc),
		FooterText:   content.FooterText.Get(loc),
		Currency:     webserver.Visitor(c).Cart.Currency(),
	})
}
