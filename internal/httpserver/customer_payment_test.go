package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/order_api/internal/models"
)

func TestCustomerLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/customers", map[string]any{"name": "Ann", "email": "ann@", "phone": "x"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{
		"email": "Provide a valid email address",
		"phone": "Provide a valid phone number",
	}, decode[errorBody](t, rec).Errors)

	rec = env.do(t, http.MethodPost, "/customers", map[string]any{"name": "Ann", "email": "ann@example.com", "phone": "5551234"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/customers/1", rec.Header().Get("Location"))

	rec = env.do(t, http.MethodPut, "/customers?id=2", map[string]any{"id": 1, "name": "Ann", "email": "ann@example.com", "phone": "5551234"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/customers/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ann@example.com", decode[models.Customer](t, rec).Email)

	require.Equal(t, http.StatusOK, env.do(t, http.MethodDelete, "/customers/1", nil).Code)
	require.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/customers/1", nil).Code)
}

func TestPaymentLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/payments", map[string]any{"id": 1, "transaction_id": 1, "amount": 9.99, "status": "Sent"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"status": "Provide a valid Status"}, decode[errorBody](t, rec).Errors)

	rec = env.do(t, http.MethodPost, "/payments", map[string]any{"id": 1, "transaction_id": 1, "amount": 9.99, "status": "Completed"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"transaction_id":1,"amount":9.99,"status":"Completed"}`, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/payments", map[string]any{"id": 1, "transaction_id": 1, "amount": 9.99, "status": "Completed"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Payment already exists", decode[errorBody](t, rec).Errors["id"])

	rec = env.do(t, http.MethodPut, "/payments/1", map[string]any{"id": 1, "transaction_id": 1, "amount": 9.99, "status": "Refunded"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/payments/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.PaymentStatusRefunded, decode[models.Payment](t, rec).Status)
}
