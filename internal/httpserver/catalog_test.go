package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/order_management/internal/db"
	"github.com/Skotchmaster/order_management/internal/logging"
	"github.com/Skotchmaster/order_management/internal/repo"
	"github.com/Skotchmaster/order_management/internal/service"
	"github.com/Skotchmaster/order_management/internal/transport"
)

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	H    *CatalogHTTP
	Repo *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb, err := db.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	r := &repo.GormRepo{DB: gdb}
	require.NoError(t, r.Reset(context.Background()))

	h := &CatalogHTTP{Svc: &service.CatalogService{Repo: r}}
	e := New(&Deps{CatalogHandler: h, Logger: logging.NewWithWriter(&bytes.Buffer{}, "error")})

	return &testEnv{T: t, E: e, H: h, Repo: r}
}

func (env *testEnv) newContext(method, path string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

func (env *testEnv) serve(method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestGetProducts(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.newContext(http.MethodGet, "/products/")
	require.NoError(t, env.H.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []transport.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 4)
	for i, p := range resp {
		require.EqualValues(t, i+1, p.ID)
	}
	require.Equal(t, "Coffee Maker", resp[3].Name)
	require.Equal(t, "Appliances", resp[3].Category)
	require.Equal(t, 3599.99, resp[3].Price)
}

func TestGetOrders(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.newContext(http.MethodGet, "/orders/")
	require.NoError(t, env.H.GetOrders(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []transport.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 4)

	require.Equal(t, "Sen", resp[3].CustomerName)
	require.EqualValues(t, 4, resp[3].ProductID)
	require.Equal(t, 3, resp[3].Quantity)
	require.Equal(t, "Pending", resp[3].Status)
	require.NotNil(t, resp[3].Product)
	require.Equal(t, "Coffee Maker", resp[3].Product.Name)
}

func TestOrderJSONFieldNames(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(http.MethodGet, "/orders/")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 4)
	for _, key := range []string{"id", "customer_name", "product_id", "quantity", "status", "product"} {
		require.Contains(t, resp[0], key)
	}
}

func TestRoutesAcceptBothSlashForms(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/products", "/products/", "/orders", "/orders/"} {
		rec := env.serve(http.MethodGet, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID), path)
	}
}

func TestListingFailsWithServerError(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, db.Close(env.Repo.DB))

	_, c := env.newContext(http.MethodGet, "/orders/")
	err := env.H.GetOrders(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusInternalServerError, he.Code)

	rec := env.serve(http.MethodGet, "/products/")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, http.StatusOK, env.serve(http.MethodGet, "/health/live").Code)
	require.Equal(t, http.StatusOK, env.serve(http.MethodGet, "/health/ready").Code)

	metricsRec := env.serve(http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, metricsRec.Code)
	require.Contains(t, metricsRec.Body.String(), "http_requests_total")

	require.NoError(t, db.Close(env.Repo.DB))
	require.Equal(t, http.StatusServiceUnavailable, env.serve(http.MethodGet, "/health/ready").Code)
}

func TestWriteMethodsAreNotRouted(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(http.MethodPost, "/orders/")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
