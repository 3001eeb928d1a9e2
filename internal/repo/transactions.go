package repo

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/order_api/internal/models"
)

var transactionPreloads = []string{"TransactionArticles", "Payments"}

func (r *GormRepo) Transactions() Collection[models.Transaction] {
	return Of[models.Transaction](r)
}

func (r *GormRepo) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	return r.Transactions().Get(ctx, id, transactionPreloads...)
}

func (r *GormRepo) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return r.Transactions().List(ctx, transactionPreloads...)
}

// CreateTransaction inserts the transaction row and then its line items. Payments are
// never written here; they have their own lifecycle.
func (r *GormRepo) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	db := r.DB.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(t).Error; err != nil {
		return err
	}
	if len(t.TransactionArticles) == 0 {
		return nil
	}
	for i := range t.TransactionArticles {
		t.TransactionArticles[i].TransactionID = t.ID
	}
	return db.Create(&t.TransactionArticles).Error
}
