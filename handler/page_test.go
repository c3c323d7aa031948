package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/aiops-console/console/model"
	"github.com/aiops-console/console/view/table"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewPage(t *testing.T, h *ConsoleHandler, name string, target string, htmx bool) (int, http.Header, string) {
	t.Helper()
	p, ok := h.Page(name)
	require.True(t, ok)

	c, rec := newContext(echo.New(), http.MethodGet, target, nil, htmx)
	err := p.View(c)
	require.NoError(t, err)
	return rec.Code, rec.Header(), rec.Body.String()
}

// assertOrder checks that the values appear in body in the given order.
func assertOrder(t *testing.T, body string, values ...string) {
	t.Helper()
	last := -1
	for _, v := range values {
		i := strings.Index(body, v)
		require.NotEqual(t, -1, i, v)
		assert.Greater(t, i, last, v)
		last = i
	}
}

func TestListView(t *testing.T) {
	handler, _ := newTestHandler(t)

	t.Run("Full page", func(t *testing.T) {
		code, header, body := viewPage(t, handler, "runs", "/runs", false)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "/runs", header.Get("HX-Push-Url"))
		assert.Equal(t, "#body", header.Get("HX-Retarget"))
		assert.Contains(t, body, "<h1>Training runs</h1>")
		assert.Contains(t, body, `id="runs-table"`)
		assert.Equal(t, 8, strings.Count(body, "<tr data-row-id="))
		assert.Contains(t, body, `hx-post="/api/export/runs"`)
	})

	t.Run("Search", func(t *testing.T) {
		_, header, body := viewPage(t, handler, "runs", "/runs?search=whisper", false)
		assert.Equal(t, "/runs?search=whisper", header.Get("HX-Push-Url"))
		assert.Equal(t, 2, strings.Count(body, "<tr data-row-id="))
		assert.Contains(t, body, `hx-get="/runs?click=loss&amp;search=whisper"`)
	})

	t.Run("Search without match shows placeholder", func(t *testing.T) {
		_, _, body := viewPage(t, handler, "runs", "/runs?search=nothing-like-this", false)
		assert.Equal(t, 0, strings.Count(body, "<tr data-row-id="))
		assert.Contains(t, body, `<div class="empty-state">No training runs</div>`)
	})

	t.Run("Header click sorts ascending", func(t *testing.T) {
		_, header, body := viewPage(t, handler, "runs", "/runs?click=loss", true)
		assert.Equal(t, "/runs?dir=asc&sort=loss", header.Get("HX-Push-Url"))
		assert.Contains(t, body, `Loss<span class="sort-indicator">↑</span>`)
		assert.Contains(t, body, `Run<span class="sort-indicator">↕</span>`)
		assertOrder(t, body, "demand-tft-weekly", "whisper-ft-de-v4", "diarize-small-2", "seg-aerial-b2")
	})

	t.Run("Second header click flips direction, empty values stay last", func(t *testing.T) {
		_, header, body := viewPage(t, handler, "runs", "/runs?sort=loss&dir=asc&click=loss", true)
		assert.Equal(t, "/runs?dir=desc&sort=loss", header.Get("HX-Push-Url"))
		assert.Contains(t, body, `Loss<span class="sort-indicator">↓</span>`)
		assertOrder(t, body, "diarize-small-2", "whisper-ft-de-v4", "demand-tft-weekly", "seg-aerial-b2")
	})

	t.Run("Click on other header starts ascending", func(t *testing.T) {
		_, header, _ := viewPage(t, handler, "runs", "/runs?sort=loss&dir=desc&click=name", true)
		assert.Equal(t, "/runs?dir=asc&sort=name", header.Get("HX-Push-Url"))
	})

	t.Run("Click on non sortable header keeps state", func(t *testing.T) {
		_, header, body := viewPage(t, handler, "runs", "/runs?sort=name&dir=desc&click=owner", true)
		assert.Equal(t, "/runs?dir=desc&sort=name", header.Get("HX-Push-Url"))
		assertOrder(t, body, "whisper-ft-de-v4", "whisper-ft-de-v3", "support-llm-sft-13", "demand-tft-weekly")
	})

	t.Run("Unknown sort column is reset", func(t *testing.T) {
		_, header, body := viewPage(t, handler, "runs", "/runs?sort=bogus&dir=desc", false)
		assert.Equal(t, "/runs", header.Get("HX-Push-Url"))
		assert.NotContains(t, body, "↓")
	})

	t.Run("Sorting by a non sortable column is reset", func(t *testing.T) {
		_, header, _ := viewPage(t, handler, "runs", "/runs?sort=owner", false)
		assert.Equal(t, "/runs", header.Get("HX-Push-Url"))
	})

	t.Run("Row click opens detail popup", func(t *testing.T) {
		run := handler.store.SelectAllRuns("seg-aerial-b2")[0]
		code, header, body := viewPage(t, handler, "runs", "/runs?row="+run.ID, true)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "beforeend", header.Get("HX-Reswap"))
		assert.Empty(t, header.Get("HX-Push-Url"))
		assert.Contains(t, body, "popup-details")
		assert.Contains(t, body, "<dd>seg-aerial-b2</dd>")
		assert.NotContains(t, body, "<table")
	})

	t.Run("Row click on unknown id", func(t *testing.T) {
		_, header, body := viewPage(t, handler, "runs", "/runs?row=nope", true)
		assert.Equal(t, "beforeend", header.Get("HX-Reswap"))
		assert.Contains(t, body, "popup-error")
		assert.Contains(t, body, "Row nope not found")

		code, _, body := viewPage(t, handler, "runs", "/runs?row=nope", false)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Contains(t, body, "Row nope not found")
	})

	t.Run("Read only page", func(t *testing.T) {
		_, _, body := viewPage(t, handler, "thresholds", "/thresholds", false)
		assert.Equal(t, 8, strings.Count(body, "<tr data-row-id="))
		assert.NotContains(t, body, `hx-get="/thresholds?row=`)
		assert.Contains(t, body, `hx-get="/thresholds?click=f1"`)

		point := handler.store.SelectAllThresholds("")[0]
		code, _, body := viewPage(t, handler, "thresholds", "/thresholds?row="+point.ID, false)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, body, "have no details")
	})

	t.Run("Severity sorts by urgency", func(t *testing.T) {
		_, _, body := viewPage(t, handler, "alerts", "/alerts?sort=severity&dir=asc", false)
		assertOrder(t, body, "badge-bad", "badge-warn", "badge-info")
	})
}

func TestListAPI(t *testing.T) {
	handler, _ := newTestHandler(t)
	p, ok := handler.Page("runs")
	require.True(t, ok)

	t.Run("Search and sort", func(t *testing.T) {
		c, rec := newContext(echo.New(), http.MethodGet, "/api/runs?search=speech&sort=started&dir=desc", nil, false)
		err := p.List(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var runs []model.TrainingRun
		err = json.Unmarshal(rec.Body.Bytes(), &runs)
		require.NoError(t, err)

		names := []string{}
		for _, r := range runs {
			names = append(names, r.Name)
		}
		assert.Equal(t, []string{"whisper-ft-de-v4", "diarize-small-2", "whisper-ft-de-v3"}, names)
	})

	t.Run("Get by id", func(t *testing.T) {
		run := handler.store.SelectAllRuns("diarize")[0]
		c, rec := newContext(echo.New(), http.MethodGet, "/api/runs/"+run.ID, nil, false)
		c.SetParamNames("id")
		c.SetParamValues(run.ID)

		err := p.Get(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var fetched model.TrainingRun
		err = json.Unmarshal(rec.Body.Bytes(), &fetched)
		require.NoError(t, err)
		assert.Equal(t, run.ID, fetched.ID)
		assert.Equal(t, model.RunStatusFailed, fetched.Status)
	})

	t.Run("Get with unknown id", func(t *testing.T) {
		c, rec := newContext(echo.New(), http.MethodGet, "/api/runs/unknown", nil, false)
		c.SetParamNames("id")
		c.SetParamValues("unknown")

		err := p.Get(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Row unknown not found")
	})
}

func TestGrid(t *testing.T) {
	handler, _ := newTestHandler(t)
	p, ok := handler.Page("thresholds")
	require.True(t, ok)

	g, err := p.Grid(model.ListRequest{Sort: table.SortState{Column: "f1", Direction: table.SortDescending}})
	require.NoError(t, err)
	require.Len(t, g.Rows, 8)
	assert.Equal(t, "0.824", g.Rows[0].Plain[4])
	assert.Equal(t, "true", g.Rows[0].Plain[5])
	assert.Equal(t, table.GlyphDescending, g.Headers[4].Glyph)
	assert.False(t, g.Rows[0].Interactive)
}
