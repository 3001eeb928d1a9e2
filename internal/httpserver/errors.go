package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/order_api/internal/service"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrInsufficientInventory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail logs err under event and turns it into the HTTP error the caller sees.
// Expected outcomes go out at warn, everything else at error with the cause.
func fail(l *slog.Logger, event string, err error) error {
	status := statusOf(err)
	msg := service.Message(err)

	if status == http.StatusInternalServerError {
		l.Error(event, "status", status, "reason", msg, "error", err)
		return echo.NewHTTPError(status, msg)
	}

	l.Warn(event, "status", status, "reason", msg)
	if fields := service.Fields(err); len(fields) > 0 {
		return echo.NewHTTPError(status, map[string]any{"message": msg, "errors": fields})
	}
	return echo.NewHTTPError(status, msg)
}
