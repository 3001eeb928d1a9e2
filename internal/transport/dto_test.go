package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/order_api/internal/models"
)

func TestCreateTransactionRequest_Model(t *testing.T) {
	t.Parallel()

	var req CreateTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 3,
		"customer_id": 1,
		"transaction_articles": [{"article_id": 1, "article_count": 2}, {"article_id": 5, "article_count": 1}]
	}`), &req))

	m := req.Model()
	assert.Equal(t, int64(3), m.ID)
	assert.Equal(t, int64(1), m.CustomerID)
	assert.Equal(t, []models.TransactionArticle{
		{ArticleID: 1, ArticleCount: 2},
		{ArticleID: 5, ArticleCount: 1},
	}, m.TransactionArticles)
	assert.Nil(t, m.Payments)
}

func TestCreateTransactionRequest_NoArticles(t *testing.T) {
	t.Parallel()

	var req CreateTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "customer_id": 1}`), &req))
	assert.Empty(t, req.Model().TransactionArticles)
}

func TestPaymentRequest_Model(t *testing.T) {
	t.Parallel()

	var req PaymentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "transaction_id": 2, "amount": 9.99, "status": "Completed"}`), &req))

	m := req.Model()
	assert.Equal(t, models.PaymentStatusCompleted, m.Status)
	assert.Equal(t, "9.99", m.Amount.StringFixed(2))
}
