package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/order_api/internal/events"
	"github.com/Skotchmaster/order_api/internal/logging"
	"github.com/Skotchmaster/order_api/internal/repo"
)

// crud holds the list/get/create/update/delete flow shared by articles, customers and payments.
type crud[T any] struct {
	repo   *repo.GormRepo
	events events.Publisher
	entity string
	topic  string
	idOf   func(*T) int64
}

func (s *crud[T]) collection() repo.Collection[T] {
	return repo.Of[T](s.repo)
}

func (s *crud[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.collection().List(ctx)
	if err != nil {
		return nil, internal(fmt.Sprintf("cannot list %ss", strings.ToLower(s.entity)), err)
	}
	return items, nil
}

func (s *crud[T]) Get(ctx context.Context, id int64) (*T, error) {
	if id <= 0 {
		return nil, notFound("%s %d not found", s.entity, id)
	}
	item, err := s.collection().Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("%s %d not found", s.entity, id)
		}
		return nil, internal("cannot get "+strings.ToLower(s.entity), err)
	}
	return item, nil
}

func (s *crud[T]) Create(ctx context.Context, item *T) (*T, error) {
	fields := violations(item)

	id := s.idOf(item)
	switch {
	case id < 0:
		if _, ok := fields["id"]; !ok {
			fields["id"] = "Provide a valid " + strings.ToLower(s.entity) + " id"
		}
	case id > 0:
		exists, err := s.collection().Exists(ctx, id)
		if err != nil {
			return nil, internal("cannot check "+strings.ToLower(s.entity), err)
		}
		if exists {
			fields["id"] = s.entity + " already exists"
		}
	}
	if len(fields) > 0 {
		return nil, invalidFields(fields)
	}

	if err := s.collection().Create(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, invalidFields(map[string]string{"id": s.entity + " already exists"})
		}
		return nil, internal("cannot create "+strings.ToLower(s.entity), err)
	}

	s.publish(ctx, "created", s.idOf(item), item)
	return item, nil
}

// Update replaces the stored entity. A path id that differs from the body id is reported
// as not found, the same as an id nobody has.
func (s *crud[T]) Update(ctx context.Context, id int64, item *T) (*T, error) {
	if id <= 0 || id != s.idOf(item) {
		return nil, notFound("%s %d not found", s.entity, id)
	}
	exists, err := s.collection().Exists(ctx, id)
	if err != nil {
		return nil, internal("cannot check "+strings.ToLower(s.entity), err)
	}
	if !exists {
		return nil, notFound("%s %d not found", s.entity, id)
	}

	if fields := violations(item); len(fields) > 0 {
		return nil, invalidFields(fields)
	}

	if err := s.collection().Save(ctx, item); err != nil {
		return nil, internal("cannot update "+strings.ToLower(s.entity), err)
	}

	s.publish(ctx, "updated", id, item)
	return item, nil
}

func (s *crud[T]) Delete(ctx context.Context, id int64) error {
	if err := s.collection().Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("%s %d not found", s.entity, id)
		}
		return internal("cannot delete "+strings.ToLower(s.entity), err)
	}

	s.publish(ctx, "deleted", id, map[string]any{"id": id})
	return nil
}

func (s *crud[T]) publish(ctx context.Context, action string, id int64, payload any) {
	publish(ctx, s.events, s.topic, strconv.FormatInt(id, 10), strings.ToLower(s.entity)+"_"+action, payload)
}

// publish never fails the caller: the state change is already committed.
func publish(ctx context.Context, p events.Publisher, topic, key, eventType string, payload any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.Publish(ctx, topic, key, events.NewEvent(eventType, payload)); err != nil {
		logging.FromContext(ctx).Error("event_publish_error", "topic", topic, "type", eventType, "error", err)
	}
}
