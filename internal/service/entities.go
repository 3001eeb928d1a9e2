package service

import (
	"github.com/Skotchmaster/order_api/internal/events"
	"github.com/Skotchmaster/order_api/internal/models"
	"github.com/Skotchmaster/order_api/internal/repo"
)

type ArticleService struct {
	crud[models.Article]
}

func NewArticleService(r *repo.GormRepo, p events.Publisher) *ArticleService {
	return &ArticleService{crud[models.Article]{
		repo: r, events: p, entity: "Article", topic: events.TopicArticles,
		idOf: func(a *models.Article) int64 { return a.ID },
	}}
}

type CustomerService struct {
	crud[models.Customer]
}

func NewCustomerService(r *repo.GormRepo, p events.Publisher) *CustomerService {
	return &CustomerService{crud[models.Customer]{
		repo: r, events: p, entity: "Customer", topic: events.TopicCustomers,
		idOf: func(c *models.Customer) int64 { return c.ID },
	}}
}

type PaymentService struct {
	crud[models.Payment]
}

func NewPaymentService(r *repo.GormRepo, p events.Publisher) *PaymentService {
	return &PaymentService{crud[models.Payment]{
		repo: r, events: p, entity: "Payment", topic: events.TopicPayments,
		idOf: func(p *models.Payment) int64 { return p.ID },
	}}
}
