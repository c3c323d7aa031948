package handler

import (
	"github.com/aiops-console/console/model"
	"github.com/aiops-console/console/view/screens"
	"github.com/aiops-console/console/view/table"

	"github.com/labstack/echo/v4"
)

// DashboardView renders the summary and the open alerts, most severe first.
// Alert rows open their popup through the alerts page.
func (h *ConsoleHandler) DashboardView(c echo.Context) error {
	open := []*model.Alert{}
	for _, a := range h.store.SelectAllAlerts("") {
		if a.Open() {
			open = append(open, a)
		}
	}

	columns := screens.AlertColumns()
	open = sortRows(open, columns, table.SortState{Column: "raised", Direction: table.SortDescending})
	open = sortRows(open, columns, table.SortState{Column: "severity", Direction: table.SortAscending})

	// Row clicks land on the alerts page, which opens the popup. The no-op
	// OnRowClick only marks the rows as links.
	alerts := table.Table[*model.Alert]{
		ID:           "dashboard-alerts",
		Columns:      columns,
		Data:         open,
		EmptyMessage: "No open alerts",
		OnRowClick:   func(*model.Alert) {},
		EventURL:     screens.EventURL("/alerts", model.ListRequest{}),
	}

	c.Response().Header().Add("HX-Push-Url", "/")
	c.Response().Header().Add("HX-Retarget", "#body")

	return render(c, screens.Dashboard(h.store.Summary(), alerts))
}
