package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Article struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"       json:"id"`
	Title       string          `gorm:"not null"                       json:"title"       validate:"required"`
	Description *string         `                                      json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"    json:"price"       validate:"gt=0"`
	Inventory   int             `gorm:"not null;check:inventory >= 0"  json:"inventory"   validate:"gt=0"`
}

type Customer struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name  string `gorm:"not null"                  json:"name"`
	Email string `gorm:"not null"                  json:"email"  validate:"email_address"`
	Phone string `gorm:"not null"                  json:"phone"  validate:"phone_number"`
}

type Payment struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"     json:"id"              validate:"gt=0"`
	TransactionID int64           `gorm:"index;not null"               json:"transaction_id"  validate:"gt=0"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"  json:"amount"          validate:"gt=0"`
	Status        PaymentStatus   `gorm:"type:varchar(16);not null"    json:"status"          validate:"payment_status"`
}

func init() {
	// money goes out as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction ids are supplied by the caller, never generated.
type Transaction struct {
	ID                  int64                `gorm:"primaryKey;autoIncrement:false"  json:"id"`
	CustomerID          int64                `gorm:"index;not null"                  json:"customer_id"`
	TransactionArticles []TransactionArticle `gorm:"foreignKey:TransactionID"        json:"transaction_articles"`
	Payments            []Payment            `gorm:"foreignKey:TransactionID"        json:"payments,omitempty"`
}

type TransactionArticle struct {
	ID            uuid.UUID `gorm:"type:varchar(36);uniqueIndex;not null"  json:"-"`
	TransactionID int64     `gorm:"primaryKey;autoIncrement:false"          json:"-"`
	ArticleID     int64     `gorm:"primaryKey;autoIncrement:false"          json:"article_id"`
	ArticleCount  int       `gorm:"not null"                                json:"article_count"`
}

func (ta *TransactionArticle) BeforeCreate(tx *gorm.DB) error {
	if ta.ID == uuid.Nil {
		ta.ID = uuid.New()
	}
	return nil
}

func (TransactionArticle) TableName() string {
	return "transaction_articles"
}

// All returns every model the store manages, in migration order.
func All() []any {
	return []any{&Article{}, &Customer{}, &Transaction{}, &TransactionArticle{}, &Payment{}}
}
