package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardView(t *testing.T) {
	handler, _ := newTestHandler(t)

	c, rec := newContext(echo.New(), http.MethodGet, "/", nil, false)
	err := handler.DashboardView(c)
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("HX-Push-Url"))
	assert.Contains(t, body, "<h2>Open alerts</h2>")
	assert.Contains(t, body, `id="dashboard-alerts"`)

	t.Run("Open alerts by severity then newest", func(t *testing.T) {
		assert.Equal(t, 5, strings.Count(body, "<tr data-row-id="))
		assertOrder(t, body,
			"Production error rate above 3%",
			"Feature freshness lagging",
			"WER drift on callcenter traffic",
			"Null rate increase",
			"Toxicity above baseline",
		)
	})

	t.Run("Resolved alerts are hidden", func(t *testing.T) {
		assert.NotContains(t, body, "Training job failed")
		assert.NotContains(t, body, "Rollback executed")
	})

	t.Run("Rows link to the alerts page", func(t *testing.T) {
		alerts := handler.store.SelectAllAlerts("Production error rate")
		require.Len(t, alerts, 1)
		assert.Contains(t, body, `hx-get="/alerts?row=`+alerts[0].ID+`"`)
	})
}
