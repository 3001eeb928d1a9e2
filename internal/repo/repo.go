package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRepo struct {
	DB *gorm.DB
}

// Transaction runs fn inside one unit of work. The repo handed to fn is bound to the
// open transaction; returning an error (or panicking) rolls everything back.
func (r *GormRepo) Transaction(ctx context.Context, fn func(tx *GormRepo) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepo{DB: tx})
	})
}

// Collection is the typed view of one entity table.
type Collection[T any] struct {
	db   *gorm.DB
	lock bool
}

func Of[T any](r *GormRepo) Collection[T] {
	return Collection[T]{db: r.DB}
}

// ForUpdate makes Get take a row lock. sqlite has no row locks and serializes writers anyway.
func (c Collection[T]) ForUpdate() Collection[T] {
	c.lock = c.db.Dialector.Name() != "sqlite"
	return c
}

func (c Collection[T]) List(ctx context.Context, preload ...string) ([]T, error) {
	q := c.db.WithContext(ctx)
	for _, p := range preload {
		q = q.Preload(p)
	}
	items := make([]T, 0)
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns gorm.ErrRecordNotFound when no row has the id.
func (c Collection[T]) Get(ctx context.Context, id int64, preload ...string) (*T, error) {
	q := c.db.WithContext(ctx)
	if c.lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	for _, p := range preload {
		q = q.Preload(p)
	}
	var item T
	if err := q.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (c Collection[T]) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := c.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c Collection[T]) Find(ctx context.Context, query any, args ...any) ([]T, error) {
	items := make([]T, 0)
	if err := c.db.WithContext(ctx).Where(query, args...).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (c Collection[T]) Create(ctx context.Context, item *T) error {
	return c.db.WithContext(ctx).Create(item).Error
}

func (c Collection[T]) Save(ctx context.Context, item *T) error {
	return c.db.WithContext(ctx).Save(item).Error
}

func (c Collection[T]) Delete(ctx context.Context, id int64) error {
	res := c.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
