package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aiops-console/console/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestContextMiddleware(t *testing.T) {
	m := NewMiddleware()
	e := echo.New()

	var got model.RequestContext
	next := func(c echo.Context) error {
		got = model.GetRequestContext(c)
		return c.NoContent(http.StatusOK)
	}

	t.Run("Generates request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/runs?search=x", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()

		err := m.RequestContextMiddleware(next)(e.NewContext(req, rec))
		require.NoError(t, err)

		assert.Equal(t, "/runs", got.Url)
		assert.True(t, got.HxRequest)
		_, err = uuid.Parse(got.RequestID)
		assert.NoError(t, err)
		assert.Equal(t, got.RequestID, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("Keeps incoming request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/alerts", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-42")
		rec := httptest.NewRecorder()

		err := m.RequestContextMiddleware(next)(e.NewContext(req, rec))
		require.NoError(t, err)

		assert.False(t, got.HxRequest)
		assert.Equal(t, "req-42", got.RequestID)
		assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))
	})
}

func TestCsrfMiddleware(t *testing.T) {
	m := NewMiddleware("localhost:3000")
	e := echo.New()
	e.GET("/runs", func(c echo.Context) error { return c.String(http.StatusOK, "ok") }, m.CsrfMiddleware())
	e.POST("/runs", func(c echo.Context) error { return c.String(http.StatusOK, "ok") }, m.CsrfMiddleware())

	t.Run("Safe method passes and sets cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/runs", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get("Set-Cookie"))
	})

	t.Run("Post without token renders error popup", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/runs", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "beforeend", rec.Header().Get("HX-Reswap"))
		assert.Contains(t, rec.Body.String(), "Invalid CSRF token")
		assert.NotEqual(t, "ok", rec.Body.String())
	})
}
