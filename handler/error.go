package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aiops-console/console/view/components"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
)

// HandleErrorView is the echo error handler. Htmx requests get an error
// popup, everything else a JSON message with the error status.
func (h *ConsoleHandler) HandleErrorView(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var message interface{}
	message = err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = he.Message
	}

	if code >= http.StatusInternalServerError {
		h.logger.Error("Request failed", "path", c.Request().URL.Path, "status", code, "error", err)
	} else {
		h.logger.Debug("Request rejected", "path", c.Request().URL.Path, "status", code, "error", err)
	}

	if isHtmx(c.Request()) {
		err = renderPopup(c, components.PopupError("Error", fmt.Sprint(message)))
	} else if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, map[string]any{"message": message})
	}
	if err != nil {
		h.logger.Error("Failed to write error response", "error", err)
	}
}

func HandleCSRFErrorView(w http.ResponseWriter, r *http.Request) {
	slog.Warn("CSRF error", "path", r.URL.Path, "error", csrf.FailureReason(r))
	err := renderPopupHTTP(w, r, components.PopupError("Error", "Invalid CSRF token, please reload the page."))
	if err != nil {
		slog.Error("Failed to write CSRF error response", "error", err)
	}
}
