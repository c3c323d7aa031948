package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/aiops-console/console/store"
	"github.com/aiops-console/console/upload"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var exportTime = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func newTestHandler(t *testing.T) (*ConsoleHandler, upload.Filesystem) {
	t.Helper()
	s, err := store.NewDefaultFixtureStore(testLogger())
	require.NoError(t, err)

	fs := upload.NewFilesystemMemory()
	h := NewConsoleHandler(s, fs, testLogger())
	h.now = func() time.Time { return exportTime }
	return h, fs
}

func newContext(e *echo.Echo, method string, target string, body io.Reader, htmx bool) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
