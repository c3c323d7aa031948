package handler

import (
	"fmt"
	"net/http"

	"github.com/aiops-console/console/view/components"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func render(c echo.Context, t templ.Component, status ...int) error {
	buf := templ.GetBuffer()
	defer templ.ReleaseBuffer(buf)

	if err := t.Render(c.Request().Context(), buf); err != nil {
		return err
	}

	if len(status) > 0 {
		return c.HTML(status[0], buf.String())
	}
	return c.HTML(http.StatusOK, buf.String())
}

// renderPopup appends component to #body. Popups are always sent with 200 so
// htmx swaps them, whatever the outcome they report.
func renderPopup(c echo.Context, component templ.Component) error {
	c.Response().Header().Add("HX-Retarget", "#body")
	c.Response().Header().Add("HX-Reswap", "beforeend")
	return render(c, component)
}

func renderHTTP(writer http.ResponseWriter, r *http.Request, t templ.Component) error {
	buf := templ.GetBuffer()
	defer templ.ReleaseBuffer(buf)

	if err := t.Render(r.Context(), buf); err != nil {
		return err
	}

	writer.Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	writer.WriteHeader(http.StatusOK)
	_, err := fmt.Fprint(writer, buf.String())
	return err
}

func renderPopupHTTP(writer http.ResponseWriter, r *http.Request, component templ.Component) error {
	writer.Header().Add("HX-Retarget", "#body")
	writer.Header().Add("HX-Reswap", "beforeend")
	return renderHTTP(writer, r, component)
}

func renderPopupOrJson(c echo.Context, status int, value ...any) error {
	// No value to render
	if len(value) == 0 {
		return c.NoContent(status)
	}

	// If HTMX request, render popup
	if isHtmx(c.Request()) {
		messageStr := ""
		if messageTemp, ok := value[0].(string); ok {
			messageStr = messageTemp
		} else {
			messageStr = fmt.Sprintf("%v", value[0])
		}

		if status >= 200 && status < 300 {
			return renderPopup(c, components.PopupSuccess("Info", messageStr))
		}
		return renderPopup(c, components.PopupError("Error", messageStr))
	}

	// Otherwise, return JSON with message if first value is string
	values := map[string]any{}
	for i, v := range value {
		if message, ok := v.(string); ok && i == 0 {
			values["message"] = message
		} else {
			values["value"] = v
		}
	}

	return c.JSON(status, values)
}

func isHtmx(r *http.Request) bool {
	return r.Header.Get("HX-Request") != ""
}
