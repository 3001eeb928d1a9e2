package service

import (
	"context"
	"errors"
	"slices"
	"strconv"

	"gorm.io/gorm"

	"github.com/Skotchmaster/order_api/internal/events"
	"github.com/Skotchmaster/order_api/internal/logging"
	"github.com/Skotchmaster/order_api/internal/metrics"
	"github.com/Skotchmaster/order_api/internal/models"
	"github.com/Skotchmaster/order_api/internal/repo"
)

type TransactionService struct {
	Repo    *repo.GormRepo
	Events  events.Publisher
	Metrics *metrics.Metrics
}

// CreateTransaction validates the order, takes every line item out of inventory and
// stores the transaction, all in one unit of work. On failure nothing is changed.
func (s *TransactionService) CreateTransaction(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	l := logging.FromContext(ctx).With("service", "transaction.create", "transaction_id", t.ID)

	created, err := s.create(ctx, t)
	if err != nil {
		s.Metrics.ObserveTransaction(Result(err), 0)
		return nil, err
	}

	units := 0
	for _, item := range created.TransactionArticles {
		units += item.ArticleCount
	}
	s.Metrics.ObserveTransaction(Result(nil), units)
	publish(ctx, s.Events, events.TopicTransactions, strconv.FormatInt(created.ID, 10), "transaction_created", created)

	l.Info("create_transaction_success", "customer_id", created.CustomerID, "line_items", len(created.TransactionArticles))
	return created, nil
}

func (s *TransactionService) create(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	if err := checkShape(t); err != nil {
		return nil, err
	}

	exists, err := s.Repo.Transactions().Exists(ctx, t.ID)
	if err != nil {
		return nil, internal("cannot check transaction", err)
	}
	if exists {
		return nil, conflict("TransactionId: %d already exists", t.ID)
	}

	exists, err = s.Repo.Customers().Exists(ctx, t.CustomerID)
	if err != nil {
		return nil, internal("cannot check customer", err)
	}
	if !exists {
		return nil, notFound("Customer %d not found", t.CustomerID)
	}

	t.Payments = nil
	err = s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		locked, err := lockArticles(ctx, tx, t.TransactionArticles)
		if err != nil {
			return err
		}
		for _, item := range t.TransactionArticles {
			if err := reserve(ctx, tx, locked, item); err != nil {
				return err
			}
		}
		if err := tx.CreateTransaction(ctx, t); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflict("TransactionId: %d already exists", t.ID)
			}
			return internal("cannot store transaction", err)
		}
		return nil
	})
	if err != nil {
		var e *Error
		if !errors.As(err, &e) {
			// begin or commit failed
			return nil, internal("cannot commit transaction", err)
		}
		return nil, err
	}
	return t, nil
}

// checkShape rejects malformed orders before the store is touched.
func checkShape(t *models.Transaction) error {
	if len(t.TransactionArticles) == 0 {
		return invalid("Transaction must include at least one article.")
	}
	if t.ID <= 0 {
		return invalid("Provide a valid transaction id.")
	}
	seen := make(map[int64]struct{}, len(t.TransactionArticles))
	for _, item := range t.TransactionArticles {
		if item.ArticleCount <= 0 {
			return invalid("Provide a valid count for article %d.", item.ArticleID)
		}
		if _, dup := seen[item.ArticleID]; dup {
			return invalid("Article %d is listed more than once.", item.ArticleID)
		}
		seen[item.ArticleID] = struct{}{}
	}
	return nil
}

// lockArticles reads every ordered article with a row lock, in ascending id order so
// concurrent orders over the same articles always lock in the same sequence.
// Missing articles are left out of the result.
func lockArticles(ctx context.Context, tx *repo.GormRepo, items []models.TransactionArticle) (map[int64]*models.Article, error) {
	locked := make(map[int64]*models.Article, len(items))
	for _, id := range lockOrder(items) {
		article, err := tx.Articles().ForUpdate().Get(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, internal("cannot read article", err)
		}
		locked[id] = article
	}
	return locked, nil
}

func lockOrder(items []models.TransactionArticle) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ArticleID)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// reserve takes item.ArticleCount units of one already locked article.
func reserve(ctx context.Context, tx *repo.GormRepo, locked map[int64]*models.Article, item models.TransactionArticle) error {
	article, ok := locked[item.ArticleID]
	if !ok {
		return notFound("Article %d not found.", item.ArticleID)
	}
	if article.Inventory-item.ArticleCount < 0 {
		return insufficient("Not enough article %d.", item.ArticleID)
	}

	ok, err := tx.DecrementInventory(ctx, item.ArticleID, item.ArticleCount)
	if err != nil {
		return internal("cannot update inventory", err)
	}
	if !ok {
		// a concurrent transaction took the stock after our read
		return insufficient("Not enough article %d.", item.ArticleID)
	}
	return nil
}

func (s *TransactionService) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	items, err := s.Repo.ListTransactions(ctx)
	if err != nil {
		return nil, internal("cannot list transactions", err)
	}
	return items, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	if id <= 0 {
		return nil, notFound("Transaction %d not found", id)
	}
	t, err := s.Repo.GetTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Transaction %d not found", id)
		}
		return nil, internal("cannot get transaction", err)
	}
	return t, nil
}

// Result names the outcome of a workflow call for metrics labels.
func Result(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInsufficientInventory):
		return "insufficient_inventory"
	default:
		return "internal"
	}
}
