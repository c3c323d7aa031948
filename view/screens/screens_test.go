package screens

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/aiops-console/console/model"
	"github.com/aiops-console/console/store"
	"github.com/aiops-console/console/view/table"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func fixtureStore(t *testing.T) *store.FixtureStore {
	t.Helper()
	s, err := store.NewDefaultFixtureStore(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})))
	require.NoError(t, err)
	return s
}

func TestColumnSetsAreValid(t *testing.T) {
	s := fixtureStore(t)

	assert.NoError(t, table.Table[*model.TrainingRun]{Columns: RunColumns(), Data: s.SelectAllRuns("")}.Validate())
	assert.NoError(t, table.Table[*model.Evaluation]{Columns: EvaluationColumns(), Data: s.SelectAllEvaluations("")}.Validate())
	assert.NoError(t, table.Table[*model.Deployment]{Columns: DeploymentColumns(), Data: s.SelectAllDeployments("")}.Validate())
	assert.NoError(t, table.Table[*model.Feature]{Columns: FeatureColumns(), Data: s.SelectAllFeatures("")}.Validate())
	assert.NoError(t, table.Table[*model.Alert]{Columns: AlertColumns(), Data: s.SelectAllAlerts("")}.Validate())
	assert.NoError(t, table.Table[*model.ThresholdPoint]{Columns: ThresholdColumns(), Data: s.SelectAllThresholds("")}.Validate())
	assert.NoError(t, table.Table[*model.Dataset]{Columns: DatasetColumns(), Data: s.SelectAllDatasets("")}.Validate())
	assert.NoError(t, table.Table[model.File]{Columns: ReportColumns()}.Validate())
}

func TestRunColumns(t *testing.T) {
	loss := 0.125
	runs := []*model.TrainingRun{
		{ID: "a", Name: "whisper-ft", Status: model.RunStatusRunning, Epoch: 3, Epochs: 12, Loss: &loss, StartedAt: time.Now().Add(-time.Hour)},
		{ID: "b", Name: "seg-aerial", Status: model.RunStatusQueued},
	}
	g := table.Table[*model.TrainingRun]{Columns: RunColumns(), Data: runs}.Grid()
	require.Len(t, g.Rows, 2)

	assert.Equal(t, []string{"whisper-ft", "", "running", "3", "0.125", "0", "", g.Rows[0].Plain[7]}, g.Rows[0].Plain)
	assert.NotEmpty(t, g.Rows[0].Plain[7])
	assert.Equal(t, "", g.Rows[1].Plain[4])
	assert.Equal(t, "", g.Rows[1].Plain[7])

	html := renderString(t, table.Table[*model.TrainingRun]{Columns: RunColumns(), Data: runs})
	assert.Contains(t, html, `<span class="badge badge-info">running</span>`)
	assert.Contains(t, html, "3 / 12")
	assert.Contains(t, html, "1 hour ago")
}

func TestEvaluationDelta(t *testing.T) {
	baseline := 0.5
	evals := []*model.Evaluation{
		{ID: "a", Model: "m", Score: 0.75, Baseline: &baseline, HigherIsBetter: true},
		{ID: "b", Model: "m", Score: 0.75},
	}
	html := renderString(t, table.Table[*model.Evaluation]{Columns: EvaluationColumns(), Data: evals})
	assert.Contains(t, html, `<span class="badge badge-good">+0.2500</span>`)

	g := table.Table[*model.Evaluation]{Columns: EvaluationColumns(), Data: evals}.Grid()
	assert.Equal(t, "0.25", g.Rows[0].Plain[6])
	assert.Equal(t, "", g.Rows[1].Plain[6])
}

func TestEventURL(t *testing.T) {
	req := model.ListRequest{Search: "llm", Sort: table.SortState{Column: "score", Direction: table.SortDescending}}
	build := EventURL("/evaluations", req)

	assert.Equal(t, "/evaluations?click=model&dir=desc&search=llm&sort=score", build(table.Event{Kind: table.HeaderClick, Key: "model"}))
	assert.Equal(t, "/evaluations?row=abc&search=llm", EventURL("/evaluations", model.ListRequest{Search: "llm"})(table.Event{Kind: table.RowClick, Key: "abc"}))
}

func TestList(t *testing.T) {
	req := model.ListRequest{Search: "none"}
	tbl := table.Table[model.File]{Columns: ReportColumns(), EmptyMessage: "No reports yet"}
	page := ListPage{Title: "Reports", Path: "/reports", ReloadEvent: "reloadReports"}

	html := renderString(t, List(page, req, tbl))
	assert.Contains(t, html, "<h1>Reports</h1>")
	assert.Contains(t, html, `<section class="list" hx-get="/reports?search=none" hx-trigger="reloadReports from:body">`)
	assert.Contains(t, html, `name="search" placeholder="Search" value="none"`)
	assert.Contains(t, html, `<div class="empty-state">No reports yet</div>`)
	assert.NotContains(t, html, "Export CSV")
}

func TestDashboard(t *testing.T) {
	s := fixtureStore(t)
	tbl := table.Table[*model.Alert]{Columns: AlertColumns(), Data: s.SelectAllAlerts("")}

	html := renderString(t, Dashboard(s.Summary(), tbl))
	assert.Contains(t, html, `<span class="stat-value">4</span>`)
	assert.Contains(t, html, `<span class="stat-value">4 / 8</span>`)
	assert.Contains(t, html, `<span class="stat-hint">1 critical</span>`)
	assert.Contains(t, html, "<h2>Open alerts</h2>")
}

func TestReport(t *testing.T) {
	file := model.File{Name: "runs_1.csv", Size: 42, MimeType: "text/csv"}
	html := renderString(t, Report(file, "/api/report/download/runs_1.csv", "/api/report/delete/runs_1.csv"))
	assert.Contains(t, html, `href="/api/report/download/runs_1.csv"`)
	assert.Contains(t, html, `hx-post="/api/report/delete/runs_1.csv"`)
	assert.Contains(t, html, "<dd>42 bytes</dd>")
}
