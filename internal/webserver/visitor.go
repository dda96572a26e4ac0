package webserver

import (
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/talkincode/storefront/internal/domain"
	"github.com/talkincode/storefront/internal/session"
	"go.uber.org/zap"
)

const (
	cookieName = "storefront"
	sidKey     = "sid"
	visitorKey = "visitor"
)

// visitorMiddleware resolves the cookie's session id to a registry session,
// issuing a new id when the old one is unknown.
func (s *Server) visitorMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := echosession.Get(cookieName, c)
		if err != nil {
			// an undecodable cookie just starts a new visitor
			zap.L().Debug("webserver: discarding session cookie", zap.Error(err))
		}
		var sid string
		if sess != nil {
			sid, _ = sess.Values[sidKey].(string)
		}
		v := s.sessions.Get(sid)
		if sess != nil && v.ID != sid {
			sess.Values[sidKey] = v.ID
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				zap.L().Warn("webserver: save session cookie failed", zap.Error(err))
			}
		}
		c.Set(visitorKey, v)
		return next(c)
	}
}

// Visitor returns the session resolved for the request.
func Visitor(c echo.Context) *session.Session {
	v, _ := c.Get(visitorKey).(*session.Session)
	return v
}

// Locale picks the request language from ?lang= or Accept-Language.
func Locale(c echo.Context) domain.Locale {
	if lang := c.QueryParam("lang"); lang != "" {
		return domain.ParseLocale(lang)
	}
	return domain.ParseLocale(c.Request().Header.Get("Accept-Language"))
}
