package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/order_api/internal/models"
)

type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func TestCreateArticle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/articles", map[string]any{"title": "pen", "price": 1.5, "inventory": 3})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/articles/1", rec.Header().Get(echo.HeaderLocation))

	got := decode[models.Article](t, rec)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "pen", got.Title)
	assert.Equal(t, "1.50", got.Price.StringFixed(2))
	assert.Equal(t, 3, got.Inventory)
}

func TestCreateArticle_Invalid(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, testArticle(1))

	rec := env.do(t, http.MethodPost, "/articles", map[string]any{"id": 1, "title": "pen", "price": 0, "inventory": 0})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[errorBody](t, rec)
	assert.Equal(t, "validation failed", body.Message)
	assert.Equal(t, map[string]string{
		"id":        "Article already exists",
		"price":     "Provide a valid Price",
		"inventory": "Provide a valid inventory",
	}, body.Errors)
}

func TestCreateArticle_BadBody(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/articles", `{"title":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"invalid body"}`, rec.Body.String())
}

func TestGetArticle(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, testArticle(4))

	rec := env.do(t, http.MethodGet, "/articles/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"title":"article","description":null,"price":9.99,"inventory":4}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/articles/2", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Article 2 not found"}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/articles/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetArticle_Handler(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/articles/7", nil)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	err := env.Deps.ArticleHandler.Get(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
	assert.Equal(t, "Article 7 not found", he.Message)
}

func TestListArticles(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/articles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	env.seed(t, testArticle(1), testArticle(2))
	rec = env.do(t, http.MethodGet, "/articles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Article](t, rec), 2)
}

func TestUpdateArticle(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, testArticle(1))

	body := map[string]any{"id": 1, "title": "renamed", "price": 2, "inventory": 5}

	rec := env.do(t, http.MethodPut, "/articles?id=1", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "renamed", decode[models.Article](t, rec).Title)

	rec = env.do(t, http.MethodPut, "/articles/1", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPut, "/articles/2", body)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPut, "/articles/1", map[string]any{"id": 1, "title": "renamed", "price": -1, "inventory": 5})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Provide a valid Price", decode[errorBody](t, rec).Errors["price"])
}

func TestDeleteArticle(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, testArticle(1), testArticle(1))

	require.Equal(t, http.StatusOK, env.do(t, http.MethodDelete, "/articles/1", nil).Code)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodDelete, "/articles?id=2", nil).Code)
	require.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/articles/1", nil).Code)
	require.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/articles", nil).Code)
}
