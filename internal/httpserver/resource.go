package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/order_api/internal/logging"
	"github.com/Skotchmaster/order_api/internal/util"
)

type entityService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id int64, item *T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// resource serves list/get/create/update/delete for one entity collection.
// bind decodes the request body into a model.
type resource[T any] struct {
	name string
	path string
	svc  entityService[T]
	bind func(c echo.Context) (*T, error)
	idOf func(*T) int64
}

func (h *resource[T]) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.name+".list")

	items, err := h.svc.List(ctx)
	if err != nil {
		return fail(l, "list_"+h.name+"s_error", err)
	}

	l.Info("list_"+h.name+"s_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *resource[T]) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.name+".get")

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		l.Warn("get_"+h.name+"_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	item, err := h.svc.Get(ctx, id)
	if err != nil {
		return fail(l, "get_"+h.name+"_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *resource[T]) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.name+".create")

	item, err := h.bind(c)
	if err != nil {
		l.Warn("create_"+h.name+"_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	created, err := h.svc.Create(ctx, item)
	if err != nil {
		return fail(l, "create_"+h.name+"_error", err)
	}

	id := h.idOf(created)
	l.Info("create_"+h.name+"_success", "id", id)
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("%s/%d", h.path, id))
	return c.JSON(http.StatusCreated, created)
}

// Update takes the id from the path or, failing that, the id query parameter.
func (h *resource[T]) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.name+".update")

	id, err := util.ParseID(util.FirstNonEmpty(c.Param("id"), c.QueryParam("id")))
	if err != nil {
		l.Warn("update_"+h.name+"_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	item, err := h.bind(c)
	if err != nil {
		l.Warn("update_"+h.name+"_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	updated, err := h.svc.Update(ctx, id, item)
	if err != nil {
		return fail(l, "update_"+h.name+"_error", err)
	}

	l.Info("update_"+h.name+"_success", "id", id)
	return c.JSON(http.StatusOK, updated)
}

func (h *resource[T]) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", h.name+".delete")

	id, err := util.ParseID(util.FirstNonEmpty(c.Param("id"), c.QueryParam("id")))
	if err != nil {
		l.Warn("delete_"+h.name+"_error", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		return fail(l, "delete_"+h.name+"_error", err)
	}

	l.Info("delete_"+h.name+"_success", "id", id)
	return c.NoContent(http.StatusOK)
}

func (h *resource[T]) mount(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("", h.Update)
	g.PUT("/:id", h.Update)
	g.DELETE("", h.Delete)
	g.DELETE("/:id", h.Delete)
}
