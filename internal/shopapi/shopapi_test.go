package shopapi

import (
	"bytes"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/storefront/config"
	"github.com/talkincode/storefront/internal/app"
	"github.com/talkincode/storefront/internal/kvstore"
	"github.com/talkincode/storefront/internal/webserver"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type client struct {
	t    *testing.T
	base string
	http *http.Client
}

func newShop(t *testing.T) (*httptest.Server, *app.Application) {
	t.Helper()
	cfg := config.DefaultAppConfig()
	cfg.System.Workdir = t.TempDir()
	a := app.NewApplication(cfg)
	a.OverrideStore(kvstore.NewMemoryStore())
	require.NoError(t, a.OpenStores())

	srv := webserver.NewServer(cfg, a.Sessions())
	Init(srv, a)
	ts := httptest.NewServer(srv.Echo())
	t.Cleanup(ts.Close)
	return ts, a
}

func newClient(t *testing.T, ts *httptest.Server) *client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &client{t: t, base: ts.URL, http: &http.Client{Jar: jar}}
}

func (c *client) do(method, path string, body interface{}, out interface{}) int {
	c.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.base+path, r)
	require.NoError(c.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	if out != nil {
		require.NoError(c.t, json.Unmarshal(data, out), string(data))
	}
	return resp.StatusCode
}

func TestSiteIsLocalized(t *testing.T) {
	ts, _ := newShop(t)
	c := newClient(t, ts)

	var fr siteView
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/site?lang=fr", nil, &fr))
	assert.Equal(t, "ltr", fr.Dir)
	assert.Equal(t, "E-Commerce Mauritanie", fr.StoreName)
	assert.Equal(t, "MRU", fr.Currency)

	var ar siteView
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/site?lang=ar", nil, &ar))
	assert.Equal(t, "rtl", ar.Dir)
	assert.Equal(t, "ar", ar.Locale)
	assert.NotEqual(t, fr.HeroTitle, ar.HeroTitle)
}

func TestListProductsCarriesLowStockFlag(t *testing.T) {
	ts, _ := newShop(t)
	c := newClient(t, ts)

	var rows []productView
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/products", nil, &rows))
	require.Len(t, rows, 3)
	low := map[int64]bool{}
	for _, r := range rows {
		low[r.ID] = r.LowStock
	}
	assert.Equal(t, map[int64]bool{1: false, 2: true, 3: false}, low)
}

func TestGetProduct(t *testing.T) {
	ts, _ := newShop(t)
	c := newClient(t, ts)

	var p productView
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/products/1?lang=ar", nil, &p))
	assert.Equal(t, p.TitleAr, p.Title)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/products/999", nil, nil))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/api/products/abc", nil, nil))
}

func TestCartFlow(t *testing.T) {
	ts, _ := newShop(t)
	c := newClient(t, ts)

	var view cartView
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/cart/items", map[string]int64{"id": 1}, &view))
	assert.NotEmpty(t, view.Message)
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/cart/items", map[string]int64{"id": 1}, &view))
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/cart/items", map[string]int64{"id": 2}, &view))
	require.Len(t, view.Items, 2)
	assert.Equal(t, 3, view.ItemCount)
	assert.Equal(t, 2*13500.0+6800, view.Total)

	require.Equal(t, http.StatusOK, c.do(http.MethodPatch, "/api/cart/items/1", map[string]int{"delta": -5}, &view))
	assert.Equal(t, 1, view.Items[0].Quantity)

	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, "/api/cart/items/2", nil, &view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 13500.0, view.Total)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/api/cart/items", map[string]int64{"id": 42}, nil))
}

func TestCartsAreIsolatedPerVisitor(t *testing.T) {
	ts, _ := newShop(t)
	alice := newClient(t, ts)
	bob := newClient(t, ts)

	require.Equal(t, http.StatusOK, alice.do(http.MethodPost, "/api/cart/items", map[string]int64{"id": 3}, nil))

	var view cartView
	require.Equal(t, http.StatusOK, bob.do(http.MethodGet, "/api/cart", nil, &view))
	assert.Empty(t, view.Items)
	require.Equal(t, http.StatusOK, alice.do(http.MethodGet, "/api/cart", nil, &view))
	assert.Len(t, view.Items, 1)
}

func TestCheckout(t *testing.T) {
	ts, _ := newShop(t)
	c := newClient(t, ts)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/api/cart/checkout", nil, nil))

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/cart/items", map[string]int64{"id": 1}, nil))
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/cart/items", map[string]int64{"id": 1}, nil))

	var out checkoutView
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/cart/checkout?lang=fr", nil, &out))
	assert.Equal(t, "Bonjour, je voudrais commander:\n\n- Samsung Galaxy Smartphone x2 (27000 MRU)\n\nTotal: 27000 MRU", out.Message)
	assert.True(t, strings.HasPrefix(out.URL, "https://wa.me/22200000000?text="), out.URL)
	assert.Contains(t, out.URL, "Bonjour%2C%20je")
	assert.NotContains(t, out.URL, "+")

	var view cartView
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/cart", nil, &view))
	assert.Equal(t, 2, view.ItemCount)
}

func TestAdminLogin(t *testing.T) {
	ts, _ := newShop(t)
	c := newClient(t, ts)

	var status map[string]bool
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/admin/status", nil, &status))
	assert.False(t, status["authorized"])

	var denied webserver.ErrorBody
	require.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/admin/login?lang=fr", map[string]string{"pin": "0000"}, &denied))
	assert.Equal(t, "Code incorrect", denied.Message)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/admin/login", map[string]string{"pin": "1313"}, nil))
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/admin/status", nil, &status))
	assert.True(t, status["authorized"])

	// a failed attempt does not close an open gate
	require.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/admin/login", map[string]string{"pin": "bad"}, nil))
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/admin/status", nil, &status))
	assert.True(t, status["authorized"])

	other := newClient(t, ts)
	require.Equal(t, http.StatusOK, other.do(http.MethodGet, "/api/admin/status", nil, &status))
	assert.False(t, status["authorized"])
}
