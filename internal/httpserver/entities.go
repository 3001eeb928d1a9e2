package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/order_api/internal/models"
	"github.com/Skotchmaster/order_api/internal/service"
	"github.com/Skotchmaster/order_api/internal/transport"
)

type ArticleHTTP struct {
	resource[models.Article]
}

func NewArticleHTTP(svc *service.ArticleService) *ArticleHTTP {
	return &ArticleHTTP{resource[models.Article]{
		name: "article", path: "/articles", svc: svc,
		bind: func(c echo.Context) (*models.Article, error) {
			var req transport.ArticleRequest
			if err := c.Bind(&req); err != nil {
				return nil, err
			}
			return req.Model(), nil
		},
		idOf: func(a *models.Article) int64 { return a.ID },
	}}
}

type CustomerHTTP struct {
	resource[models.Customer]
}

func NewCustomerHTTP(svc *service.CustomerService) *CustomerHTTP {
	return &CustomerHTTP{resource[models.Customer]{
		name: "customer", path: "/customers", svc: svc,
		bind: func(c echo.Context) (*models.Customer, error) {
			var req transport.CustomerRequest
			if err := c.Bind(&req); err != nil {
				return nil, err
			}
			return req.Model(), nil
		},
		idOf: func(cu *models.Customer) int64 { return cu.ID },
	}}
}

type PaymentHTTP struct {
	resource[models.Payment]
}

func NewPaymentHTTP(svc *service.PaymentService) *PaymentHTTP {
	return &PaymentHTTP{resource[models.Payment]{
		name: "payment", path: "/payments", svc: svc,
		bind: func(c echo.Context) (*models.Payment, error) {
			var req transport.PaymentRequest
			if err := c.Bind(&req); err != nil {
				return nil, err
			}
			return req.Model(), nil
		},
		idOf: func(p *models.Payment) int64 { return p.ID },
	}}
}
