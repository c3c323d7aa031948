package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aiops-console/console/store"
	"github.com/aiops-console/console/upload"

	"github.com/labstack/echo/v4"
)

type ConsoleHandler struct {
	store      store.FixtureStoreFunctions
	filesystem upload.Filesystem
	logger     *slog.Logger
	pages      []Page
	now        func() time.Time
}

func NewConsoleHandler(fixtureStore store.FixtureStoreFunctions, filesystem upload.Filesystem, logger *slog.Logger) *ConsoleHandler {
	h := &ConsoleHandler{
		store:      fixtureStore,
		filesystem: filesystem,
		logger:     logger,
		now:        time.Now,
	}
	h.pages = h.newPages()
	return h
}

// Health check handler
func (h *ConsoleHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "aiops-console",
	})
}

// Pages returns the list pages in navigation order.
func (h *ConsoleHandler) Pages() []Page {
	return h.pages
}

// Page returns the list page called name.
func (h *ConsoleHandler) Page(name string) (Page, bool) {
	for _, p := range h.pages {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}
