package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHandleErrorView(t *testing.T) {
	handler, _ := newTestHandler(t)
	e := echo.New()

	t.Run("HTTP error as JSON", func(t *testing.T) {
		c, rec := newContext(e, http.MethodGet, "/missing", nil, false)
		handler.HandleErrorView(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
	})

	t.Run("Plain error as JSON", func(t *testing.T) {
		c, rec := newContext(e, http.MethodGet, "/runs", nil, false)
		handler.HandleErrorView(errors.New("boom"), c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"boom"}`, rec.Body.String())
	})

	t.Run("Htmx request gets a popup", func(t *testing.T) {
		c, rec := newContext(e, http.MethodGet, "/missing", nil, true)
		handler.HandleErrorView(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "beforeend", rec.Header().Get("HX-Reswap"))
		assert.Contains(t, rec.Body.String(), `class="popup popup-error"`)
		assert.Contains(t, rec.Body.String(), "Not Found")
	})

	t.Run("HEAD request has no body", func(t *testing.T) {
		c, rec := newContext(e, http.MethodHead, "/missing", nil, false)
		handler.HandleErrorView(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Committed response is left alone", func(t *testing.T) {
		c, rec := newContext(e, http.MethodGet, "/runs", nil, false)
		c.Response().WriteHeader(http.StatusAccepted)
		handler.HandleErrorView(errors.New("late"), c)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestHandleCSRFErrorView(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/export/runs", nil)
	rec := httptest.NewRecorder()

	HandleCSRFErrorView(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "#body", rec.Header().Get("HX-Retarget"))
	assert.Contains(t, rec.Body.String(), "Invalid CSRF token")
}
