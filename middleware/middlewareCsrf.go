package middleware

import (
	"net/http"

	"github.com/aiops-console/console/handler"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
)

// CsrfMiddleware protects the view routes. Failures render an error popup.
func (r *Middleware) CsrfMiddleware() echo.MiddlewareFunc {
	// TODO drop csrf.Secure(false) once the console is served behind TLS
	csrfMiddleware := csrf.Protect(
		r.csrfKey,
		csrf.Path("/"),
		csrf.Secure(false),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(handler.HandleCSRFErrorView)),
		csrf.TrustedOrigins(r.trustedOrigins),
	)
	return echo.WrapMiddleware(csrfMiddleware)
}
