package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/order_management/internal/logging"
	"github.com/Skotchmaster/order_management/internal/service"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_products")

	items, err := h.Svc.ListProducts(ctx)
	if err != nil {
		l.Error("get_products_error", "status", 500, "reason", "cannot list products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	l.Debug("get_products_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_orders")

	items, err := h.Svc.ListOrders(ctx)
	if err != nil {
		l.Error("get_orders_error", "status", 500, "reason", "cannot list orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list orders")
	}

	l.Debug("get_orders_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) Ready(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.Svc.Ready(ctx); err != nil {
		logging.FromContext(ctx).Warn("ready_check_failed", "error", err)
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
