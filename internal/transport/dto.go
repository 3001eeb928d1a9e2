package transport

import (
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/order_api/internal/models"
)

type ArticleRequest struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Inventory   int             `json:"inventory"`
}

func (r ArticleRequest) Model() *models.Article {
	return &models.Article{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Inventory:   r.Inventory,
	}
}

type CustomerRequest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r CustomerRequest) Model() *models.Customer {
	return &models.Customer{ID: r.ID, Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type PaymentRequest struct {
	ID            int64                `json:"id"`
	TransactionID int64                `json:"transaction_id"`
	Amount        decimal.Decimal      `json:"amount"`
	Status        models.PaymentStatus `json:"status"`
}

func (r PaymentRequest) Model() *models.Payment {
	return &models.Payment{ID: r.ID, TransactionID: r.TransactionID, Amount: r.Amount, Status: r.Status}
}

type TransactionArticleRequest struct {
	ArticleID    int64 `json:"article_id"`
	ArticleCount int   `json:"article_count"`
}

// CreateTransactionRequest has no payments: they are recorded through /payments.
type CreateTransactionRequest struct {
	ID                  int64                       `json:"id"`
	CustomerID          int64                       `json:"customer_id"`
	TransactionArticles []TransactionArticleRequest `json:"transaction_articles"`
}

func (r CreateTransactionRequest) Model() *models.Transaction {
	t := &models.Transaction{ID: r.ID, CustomerID: r.CustomerID}
	if r.TransactionArticles != nil {
		t.TransactionArticles = make([]models.TransactionArticle, 0, len(r.TransactionArticles))
	}
	for _, item := range r.TransactionArticles {
		t.TransactionArticles = append(t.TransactionArticles, models.TransactionArticle{
			ArticleID:    item.ArticleID,
			ArticleCount: item.ArticleCount,
		})
	}
	return t
}
