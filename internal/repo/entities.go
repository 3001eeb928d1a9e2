package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/order_api/internal/models"
)

func (r *GormRepo) Articles() Collection[models.Article] {
	return Of[models.Article](r)
}

func (r *GormRepo) Customers() Collection[models.Customer] {
	return Of[models.Customer](r)
}

func (r *GormRepo) Payments() Collection[models.Payment] {
	return Of[models.Payment](r)
}

// DecrementInventory takes count units of the article only while enough remain.
// It reports false when the guard rejected the update.
func (r *GormRepo) DecrementInventory(ctx context.Context, articleID int64, count int) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ? AND inventory >= ?", articleID, count).
		Update("inventory", gorm.Expr("inventory - ?", count))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
