package console

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aiops-console/console/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	t.Setenv("CONSOLE_STORAGE_MODE", "memory")
	t.Setenv("CONSOLE_FIXTURES", "")

	logger := NewLogger(io.Discard)
	ch, err := InitConsoleHandler(logger)
	require.NoError(t, err)

	e := echo.New()
	SetupRoutes(e, ch, logger)
	return e
}

func serve(e *echo.Echo, method string, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	return rows
}

func TestSetupRoutes(t *testing.T) {
	e := newTestServer(t)

	t.Run("Health", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy","service":"aiops-console"}`, rec.Body.String())
	})

	t.Run("Dashboard", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<h2>Open alerts</h2>")
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("Every page has a view and an API route", func(t *testing.T) {
		for _, page := range []string{"runs", "evaluations", "deployments", "features", "alerts", "thresholds", "catalog", "reports"} {
			rec := serve(e, http.MethodGet, "/"+page)
			assert.Equal(t, http.StatusOK, rec.Code, page)
			assert.Contains(t, rec.Body.String(), `id="`+page+`-table"`, page)

			rec = serve(e, http.MethodGet, "/api/"+page)
			assert.Equal(t, http.StatusOK, rec.Code, page)
		}
	})

	t.Run("API list with search", func(t *testing.T) {
		rows := decodeList(t, serve(e, http.MethodGet, "/api/runs?search=whisper&sort=name&dir=desc"))
		require.Len(t, rows, 2)
		assert.Equal(t, "whisper-ft-de-v4", rows[0]["name"])
		assert.Equal(t, "whisper-ft-de-v3", rows[1]["name"])
	})

	t.Run("API get by id", func(t *testing.T) {
		rows := decodeList(t, serve(e, http.MethodGet, "/api/alerts"))
		require.NotEmpty(t, rows)
		id := rows[0]["id"].(string)

		rec := serve(e, http.MethodGet, "/api/alerts/"+id)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"`+id+`"`)

		rec = serve(e, http.MethodGet, "/api/alerts/unknown")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Unknown route", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/jobs")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
	})

	t.Run("Export and download without CSRF token", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/api/export/features")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), "Exported 8 row(s)")

		reports := decodeList(t, serve(e, http.MethodGet, "/api/reports"))
		require.Len(t, reports, 1)
		name := reports[0]["name"].(string)
		assert.True(t, strings.HasPrefix(name, "features_"))

		rec = serve(e, http.MethodGet, "/api/report/download/"+name)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Body.String(), "Feature,"))
	})

	t.Run("Static files", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/static/console.css")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestInitConsoleHandler(t *testing.T) {
	t.Run("Fixtures from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fixtures.yaml")
		require.NoError(t, os.WriteFile(path, []byte("alerts:\n  - {title: Disk full, severity: critical}\n"), 0600))
		t.Setenv("CONSOLE_STORAGE_MODE", "memory")
		t.Setenv("CONSOLE_FIXTURES", path)

		ch, err := InitConsoleHandler(NewLogger(io.Discard))
		require.NoError(t, err)

		page, ok := ch.Page("alerts")
		require.True(t, ok)
		grid, err := page.Grid(model.ListRequest{})
		require.NoError(t, err)
		assert.Len(t, grid.Rows, 1)
	})

	t.Run("Missing fixture file", func(t *testing.T) {
		t.Setenv("CONSOLE_STORAGE_MODE", "memory")
		t.Setenv("CONSOLE_FIXTURES", filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := InitConsoleHandler(NewLogger(io.Discard))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "create fixture store")
	})

	t.Run("Invalid storage mode", func(t *testing.T) {
		t.Setenv("CONSOLE_STORAGE_MODE", "tape")

		_, err := InitConsoleHandler(NewLogger(io.Discard))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "create filesystem")
	})
}
