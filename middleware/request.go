package middleware

import (
	"github.com/aiops-console/console/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestContextMiddleware stores url, htmx flag and request id in the
// request context. An incoming X-Request-ID is kept, otherwise a new one is
// generated. The id is echoed in the response header.
func (r *Middleware) RequestContextMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rc := model.GetRequestContext(c)

		rc.Url = c.Request().URL.Path
		rc.HxRequest = c.Request().Header.Get("hx-request") == "true"
		rc.RequestID = c.Request().Header.Get(echo.HeaderXRequestID)
		if rc.RequestID == "" {
			rc.RequestID = uuid.NewString()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, rc.RequestID)

		model.SetRequestContext(c, rc)

		return next(c)
	}
}
