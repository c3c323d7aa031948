package console

import (
	"log/slog"
	"net/http"

	"github.com/aiops-console/console/handler"
	mw "github.com/aiops-console/console/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all view and API routes of the console. Requests
// from trustedOrigins pass the CSRF origin check.
func SetupRoutes(e *echo.Echo, h *handler.ConsoleHandler, logger *slog.Logger, trustedOrigins ...string) {
	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.Warn("Request", append(attrs, "error", v.Error)...)
			} else {
				logger.Debug("Request", attrs...)
			}
			return nil
		},
	}))

	// Custom Middleware
	m := mw.NewMiddleware(trustedOrigins...)
	e.Use(m.RequestContextMiddleware)

	// View routes
	e.GET("/health", h.HealthCheck, m.CsrfMiddleware())
	e.GET("/", h.DashboardView, m.CsrfMiddleware())
	for _, page := range h.Pages() {
		e.GET("/"+page.Name(), page.View, m.CsrfMiddleware())
	}

	// API routes
	api := e.Group("/api")

	for _, page := range h.Pages() {
		api.GET("/"+page.Name(), page.List)
		api.GET("/"+page.Name()+"/:id", page.Get)
	}

	api.POST("/export/:page", h.Export)

	reports := api.Group("/report")
	reports.GET("/download/:name", h.DownloadReport)
	reports.POST("/delete/:name", h.DeleteReport)
	reports.POST("/upload", h.UploadReports)

	e.HTTPErrorHandler = h.HandleErrorView

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	e.Static("/static/", "./view/static")
}
