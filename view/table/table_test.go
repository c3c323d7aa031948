package table

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	ID   string
	Name *string
	Team string
}

func (p *person) RowID() string { return p.ID }

func strPtr(s string) *string { return &s }

func personColumns() []Column[*person] {
	return []Column[*person]{
		{Key: "name", Header: "Name", Sortable: true, Value: func(p *person) any { return p.Name }},
		{Key: "team", Header: "Team", Value: func(p *person) any { return p.Team }},
		{Key: "badge", Header: "Badge", Render: func(p *person) Cell {
			return Component(templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
				_, err := io.WriteString(w, `<span class="badge">`+p.Team+`</span>`)
				return err
			}))
		}},
	}
}

func samplePeople() []*person {
	return []*person{
		{ID: "1", Name: strPtr("Alice"), Team: "vision"},
		{ID: "2", Name: nil, Team: "audio"},
		{ID: "3", Name: strPtr("Carol"), Team: "llm"},
	}
}

func renderHTML(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestTableRender(t *testing.T) {
	t.Run("Renders one body row per data entry keyed by id", func(t *testing.T) {
		tbl := Table[*person]{Columns: personColumns(), Data: samplePeople()}
		html := renderHTML(t, tbl)

		assert.Equal(t, 3, strings.Count(html, "<tr data-row-id="))
		for _, p := range samplePeople() {
			assert.Contains(t, html, `data-row-id="`+p.ID+`"`)
		}
		assert.NotContains(t, html, "empty-state")
	})

	t.Run("Renders one header cell per column in order", func(t *testing.T) {
		tbl := Table[*person]{Columns: personColumns(), Data: samplePeople()}
		html := renderHTML(t, tbl)

		assert.Equal(t, 3, strings.Count(html, "<th "))
		name := strings.Index(html, `data-column-key="name"`)
		team := strings.Index(html, `data-column-key="team"`)
		badge := strings.Index(html, `data-column-key="badge"`)
		assert.True(t, name < team && team < badge, "headers out of order")
	})

	t.Run("Shows only the placeholder for empty data", func(t *testing.T) {
		tbl := Table[*person]{Columns: personColumns()}
		html := renderHTML(t, tbl)

		assert.Contains(t, html, `<div class="empty-state">No data available</div>`)
		assert.NotContains(t, html, "<tr data-row-id=")
		assert.Equal(t, 3, strings.Count(html, "<th "))
	})

	t.Run("Uses a custom empty message", func(t *testing.T) {
		tbl := Table[*person]{Columns: personColumns(), EmptyMessage: "No runs yet"}
		html := renderHTML(t, tbl)

		assert.Contains(t, html, "No runs yet")
		assert.NotContains(t, html, DefaultEmptyMessage)
	})

	t.Run("Renders component cells verbatim and escapes text cells", func(t *testing.T) {
		data := []*person{{ID: "x", Name: strPtr("<script>"), Team: "ops"}}
		html := renderHTML(t, Table[*person]{Columns: personColumns(), Data: data})

		assert.Contains(t, html, `<span class="badge">ops</span>`)
		assert.Contains(t, html, "&lt;script&gt;")
		assert.NotContains(t, html, "<script>")
	})

	t.Run("Rows are not interactive without OnRowClick", func(t *testing.T) {
		html := renderHTML(t, Table[*person]{Columns: personColumns(), Data: samplePeople()})

		assert.NotContains(t, html, `<tr data-row-id="1" class="clickable"`)
		assert.Equal(t, 0, strings.Count(html, "?row="))
	})

	t.Run("Rows carry a click request with OnRowClick", func(t *testing.T) {
		tbl := Table[*person]{Columns: personColumns(), Data: samplePeople(), OnRowClick: func(*person) {}}
		html := renderHTML(t, tbl)

		assert.Contains(t, html, `<tr data-row-id="1" class="clickable" hx-get="?row=1">`)
		assert.Equal(t, 3, strings.Count(html, "?row="))
	})

	t.Run("Only sortable headers carry a click request", func(t *testing.T) {
		tbl := Table[*person]{Columns: personColumns(), Data: samplePeople(), OnSort: func(string) {}}
		html := renderHTML(t, tbl)

		assert.Contains(t, html, `hx-get="?click=name"`)
		assert.NotContains(t, html, `?click=team`)
		assert.NotContains(t, html, `?click=badge`)
	})

	t.Run("Uses the supplied event URL builder", func(t *testing.T) {
		tbl := Table[*person]{
			Columns:    personColumns(),
			Data:       samplePeople(),
			OnSort:     func(string) {},
			OnRowClick: func(*person) {},
			EventURL: func(e Event) string {
				return "/people?search=a&" + e.Param() + "=" + e.Key
			},
		}
		html := renderHTML(t, tbl)

		assert.Contains(t, html, `hx-get="/people?search=a&amp;click=name"`)
		assert.Contains(t, html, `hx-get="/people?search=a&amp;row=2"`)
	})

	t.Run("Example scenario", func(t *testing.T) {
		columns := []Column[*person]{{Key: "name", Header: "Name", Sortable: true, Value: func(p *person) any { return p.Name }}}
		data := []*person{{ID: "1", Name: strPtr("Alice")}, {ID: "2", Name: nil}}

		var sorted []string
		tbl := Table[*person]{Columns: columns, Data: data, OnSort: func(key string) { sorted = append(sorted, key) }}
		html := renderHTML(t, tbl)

		assert.Contains(t, html, `<tr data-row-id="1"><td class="col-name">Alice</td></tr>`)
		assert.Contains(t, html, `<tr data-row-id="2"><td class="col-name"></td></tr>`)
		assert.True(t, tbl.ClickHeader("name"))
		assert.Equal(t, []string{"name"}, sorted)
	})
}

func TestTableGrid(t *testing.T) {
	t.Run("Header and row counts follow columns and data", func(t *testing.T) {
		for n := 0; n <= 3; n++ {
			data := samplePeople()[:n]
			g := Table[*person]{Columns: personColumns(), Data: data}.Grid()

			assert.Len(t, g.Headers, 3)
			assert.Len(t, g.Rows, n)
			assert.Equal(t, n == 0, g.Empty)
			for i, row := range g.Rows {
				assert.Equal(t, data[i].ID, row.ID)
				assert.Len(t, row.Cells, 3)
			}
		}
	})

	t.Run("Absent values resolve to empty text", func(t *testing.T) {
		g := Table[*person]{Columns: personColumns(), Data: samplePeople()}.Grid()

		assert.Equal(t, "Alice", g.Rows[0].Cells[0].String())
		assert.Equal(t, "", g.Rows[1].Cells[0].String())
		assert.False(t, g.Rows[1].Cells[0].IsComponent())
	})

	t.Run("Plain text uses the accessor for component cells", func(t *testing.T) {
		columns := personColumns()
		columns[2].Value = func(p *person) any { return strings.ToUpper(p.Team) }
		g := Table[*person]{Columns: columns, Data: samplePeople()}.Grid()

		assert.True(t, g.Rows[0].Cells[2].IsComponent())
		assert.Equal(t, []string{"Alice", "vision", "VISION"}, g.Rows[0].Plain)
	})

	t.Run("Header interactivity requires a sortable column and OnSort", func(t *testing.T) {
		g := Table[*person]{Columns: personColumns()}.Grid()
		assert.False(t, g.Headers[0].Interactive)

		g = Table[*person]{Columns: personColumns(), OnSort: func(string) {}}.Grid()
		assert.True(t, g.Headers[0].Interactive)
		assert.False(t, g.Headers[1].Interactive)
	})
}

func TestColumnResolve(t *testing.T) {
	row := &person{ID: "1", Name: strPtr("Alice"), Team: "vision"}

	t.Run("Render result is used verbatim", func(t *testing.T) {
		col := Column[*person]{Key: "name", Render: func(p *person) Cell { return Text("custom " + p.Team) }, Value: func(p *person) any { return p.Name }}
		assert.Equal(t, Text("custom vision"), col.Resolve(row))
	})

	t.Run("Falls back to the accessor", func(t *testing.T) {
		col := Column[*person]{Key: "name", Value: func(p *person) any { return p.Name }}
		assert.Equal(t, Text("Alice"), col.Resolve(row))
	})

	t.Run("Missing accessor resolves to empty text", func(t *testing.T) {
		col := Column[*person]{Key: "name"}
		assert.Equal(t, Text(""), col.Resolve(row))
	})

	t.Run("Nil accessor value resolves to empty text", func(t *testing.T) {
		col := Column[*person]{Key: "name", Value: func(*person) any { return nil }}
		assert.Equal(t, "", col.Resolve(row).String())
	})
}

func TestTableClicks(t *testing.T) {
	t.Run("Non-sortable header never calls OnSort", func(t *testing.T) {
		calls := 0
		tbl := Table[*person]{Columns: personColumns(), OnSort: func(string) { calls++ }}

		assert.False(t, tbl.ClickHeader("team"))
		assert.False(t, tbl.ClickHeader("badge"))
		assert.False(t, tbl.ClickHeader("unknown"))
		assert.Equal(t, 0, calls)
	})

	t.Run("Sortable header calls OnSort once per click whatever the state", func(t *testing.T) {
		states := []SortState{
			{},
			{Column: "name", Direction: SortAscending},
			{Column: "name", Direction: SortDescending},
			{Column: "team", Direction: SortAscending},
		}
		for _, state := range states {
			var keys []string
			tbl := Table[*person]{Columns: personColumns(), Sort: state, OnSort: func(key string) { keys = append(keys, key) }}

			assert.True(t, tbl.ClickHeader("name"))
			assert.Equal(t, []string{"name"}, keys, "state %s", state)
			assert.True(t, tbl.ClickHeader("name"))
			assert.Equal(t, []string{"name", "name"}, keys, "state %s", state)
		}
	})

	t.Run("Header click without OnSort is ignored", func(t *testing.T) {
		tbl := Table[*person]{Columns: personColumns()}
		assert.False(t, tbl.ClickHeader("name"))
	})

	t.Run("Row click passes the exact row", func(t *testing.T) {
		data := samplePeople()
		var clicked *person
		tbl := Table[*person]{Columns: personColumns(), Data: data, OnRowClick: func(p *person) { clicked = p }}

		require.True(t, tbl.ClickRow("2"))
		assert.Same(t, data[1], clicked)
		assert.Equal(t, "2", clicked.ID)
	})

	t.Run("Row click with unknown id is ignored", func(t *testing.T) {
		calls := 0
		tbl := Table[*person]{Columns: personColumns(), Data: samplePeople(), OnRowClick: func(*person) { calls++ }}

		assert.False(t, tbl.ClickRow("missing"))
		assert.Equal(t, 0, calls)
	})

	t.Run("Rows without OnRowClick are not interactive", func(t *testing.T) {
		tbl := Table[*person]{Columns: personColumns(), Data: samplePeople()}

		assert.False(t, tbl.ClickRow("1"))
		assert.False(t, tbl.Dispatch(Event{Kind: RowClick, Key: "1"}))
	})

	t.Run("Dispatch routes events", func(t *testing.T) {
		var sorted string
		var clicked *person
		tbl := Table[*person]{
			Columns:    personColumns(),
			Data:       samplePeople(),
			OnSort:     func(key string) { sorted = key },
			OnRowClick: func(p *person) { clicked = p },
		}

		assert.True(t, tbl.Dispatch(Event{Kind: HeaderClick, Key: "name"}))
		assert.True(t, tbl.Dispatch(Event{Kind: RowClick, Key: "3"}))
		assert.Equal(t, "name", sorted)
		require.NotNil(t, clicked)
		assert.Equal(t, "3", clicked.ID)
	})
}

func TestTableValidate(t *testing.T) {
	t.Run("Valid configuration", func(t *testing.T) {
		assert.NoError(t, Table[*person]{Columns: personColumns(), Data: samplePeople()}.Validate())
	})

	t.Run("Duplicate column key", func(t *testing.T) {
		columns := append(personColumns(), Column[*person]{Key: "name"})
		err := Table[*person]{Columns: columns}.Validate()
		assert.ErrorIs(t, err, ErrDuplicateColumnKey)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("Empty column key", func(t *testing.T) {
		err := Table[*person]{Columns: []Column[*person]{{Header: "Nameless"}}}.Validate()
		assert.ErrorIs(t, err, ErrEmptyColumnKey)
	})

	t.Run("Duplicate row id", func(t *testing.T) {
		data := append(samplePeople(), &person{ID: "1"})
		err := Table[*person]{Columns: personColumns(), Data: data}.Validate()
		assert.ErrorIs(t, err, ErrDuplicateRowID)
	})
}
