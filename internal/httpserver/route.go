package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Skotchmaster/order_management/internal/metrics"
	loggingmw "github.com/Skotchmaster/order_management/internal/middleware/logging"
)

type Deps struct {
	CatalogHandler *CatalogHTTP
	Logger         *slog.Logger
}

// New builds the echo instance with the middleware chain and routes.
func New(d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(d.Logger))
	e.Use(metrics.Middleware())

	Register(e, d)
	return e
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", d.CatalogHandler.Ready)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/products", d.CatalogHandler.GetProducts)
	e.GET("/orders", d.CatalogHandler.GetOrders)
}
