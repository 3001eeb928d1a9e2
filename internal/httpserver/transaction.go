package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/order_api/internal/logging"
	"github.com/Skotchmaster/order_api/internal/service"
	"github.com/Skotchmaster/order_api/internal/transport"
	"github.com/Skotchmaster/order_api/internal/util"
)

type TransactionHTTP struct {
	Svc *service.TransactionService
}

func (h *TransactionHTTP) CreateTransaction(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "transaction.create")

	var req transport.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_transaction_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	created, err := h.Svc.CreateTransaction(ctx, req.Model())
	if err != nil {
		return fail(l, "create_transaction_error", err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/transactions/%d", created.ID))
	return c.JSON(http.StatusCreated, created)
}

func (h *TransactionHTTP) GetTransactions(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "transaction.list")

	items, err := h.Svc.GetTransactions(ctx)
	if err != nil {
		return fail(l, "list_transactions_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *TransactionHTTP) GetTransaction(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "transaction.get")

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		l.Warn("get_transaction_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	t, err := h.Svc.GetTransaction(ctx, id)
	if err != nil {
		return fail(l, "get_transaction_error", err)
	}
	return c.JSON(http.StatusOK, t)
}
