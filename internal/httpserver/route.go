package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/order_api/internal/db"
	"github.com/Skotchmaster/order_api/internal/logging"
	"github.com/Skotchmaster/order_api/internal/metrics"
)

type Deps struct {
	DB *gorm.DB

	ArticleHandler     *ArticleHTTP
	CustomerHandler    *CustomerHTTP
	PaymentHandler     *PaymentHTTP
	TransactionHandler *TransactionHTTP

	// Metrics is optional; nil disables /metrics.
	Metrics *metrics.Metrics
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context(), d.DB); err != nil {
			logging.FromContext(c.Request().Context()).Error("readiness_failed", "error", err)
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
	}

	d.ArticleHandler.mount(e.Group("/articles"))
	d.CustomerHandler.mount(e.Group("/customers"))
	d.PaymentHandler.mount(e.Group("/payments"))

	transactions := e.Group("/transactions")
	transactions.GET("", d.TransactionHandler.GetTransactions)
	transactions.GET("/:id", d.TransactionHandler.GetTransaction)
	transactions.POST("", d.TransactionHandler.CreateTransaction)
}
