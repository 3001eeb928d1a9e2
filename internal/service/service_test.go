package service

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/order_api/internal/db"
	"github.com/Skotchmaster/order_api/internal/events"
	"github.com/Skotchmaster/order_api/internal/logging"
	"github.com/Skotchmaster/order_api/internal/models"
	"github.com/Skotchmaster/order_api/internal/repo"
)

type published struct {
	Topic string
	Key   string
	Event events.Event
}

type recorder struct {
	mu   sync.Mutex
	sent []published
}

func (r *recorder) Publish(_ context.Context, topic, key string, ev events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, published{Topic: topic, Key: key, Event: ev})
	return nil
}

func (r *recorder) Close() error { return nil }

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.sent))
	for _, p := range r.sent {
		out = append(out, p.Event.Type)
	}
	return out
}

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	gdb, err := db.Open(context.Background(), db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })
	return &repo.GormRepo{DB: gdb}
}

// logCtx returns a context whose logger writes into the returned buffer.
func logCtx() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.IntoContext(context.Background(), logging.NewWithWriter(&buf, "debug")), &buf
}

func article(inventory int) *models.Article {
	return &models.Article{Title: "title", Price: decimal.NewFromInt(1), Inventory: inventory}
}

func customer() *models.Customer {
	return &models.Customer{Name: "test", Email: "test@example.com", Phone: "+1 555 1234567"}
}

func seed(t *testing.T, r *repo.GormRepo, items ...any) {
	t.Helper()
	for _, item := range items {
		require.NoError(t, r.DB.Create(item).Error)
	}
}
