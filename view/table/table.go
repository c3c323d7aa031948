// Package table renders lists of records as sortable, clickable HTML tables.
//
// A Table is a pure function of its columns, its data and the caller-owned
// SortState. It never reorders data and never decides the next sort state:
// header clicks are forwarded to OnSort with the column key, row clicks to
// OnRowClick with the row. Clicks reach the server as htmx requests built by
// EventURL and are fed back through ClickHeader and ClickRow.
package table

import (
	"errors"
	"fmt"
)

// DefaultEmptyMessage is shown when a table has no rows.
const DefaultEmptyMessage = "No data available"

var (
	ErrEmptyColumnKey     = errors.New("column key is empty")
	ErrDuplicateColumnKey = errors.New("duplicate column key")
	ErrDuplicateRowID     = errors.New("duplicate row id")
)

// Table is a tabular view over Data. The zero value renders an empty table.
type Table[T Row] struct {
	// ID is set as the id attribute of the table element when not empty.
	ID      string
	Columns []Column[T]
	Data    []T

	// Sort is read to draw the sort indicators.
	Sort SortState
	// OnSort receives the key of a clicked sortable header.
	OnSort func(key string)
	// OnRowClick receives a clicked row. Rows are not interactive when nil.
	OnRowClick func(row T)

	// EmptyMessage replaces DefaultEmptyMessage.
	EmptyMessage string
	// EventURL builds the request URL of a click. Defaults to DefaultEventURL.
	EventURL func(e Event) string
}

// HeaderCell is one rendered header.
type HeaderCell struct {
	Key         string
	Label       string
	Class       string
	Sortable    bool
	Glyph       Glyph
	Interactive bool
}

// BodyRow is one rendered data row. Plain holds the text of every cell,
// using the column accessor for component cells.
type BodyRow struct {
	ID          string
	Cells       []Cell
	Plain       []string
	Interactive bool
}

// Grid is the renderer-neutral display model of a table.
type Grid struct {
	Headers      []HeaderCell
	Rows         []BodyRow
	Empty        bool
	EmptyMessage string
}

// Grid composes columns and data into the display model.
func (t Table[T]) Grid() Grid {
	g := Grid{
		Headers:      make([]HeaderCell, 0, len(t.Columns)),
		Rows:         make([]BodyRow, 0, len(t.Data)),
		Empty:        len(t.Data) == 0,
		EmptyMessage: t.emptyMessage(),
	}

	for _, col := range t.Columns {
		g.Headers = append(g.Headers, HeaderCell{
			Key:         col.Key,
			Label:       col.Header,
			Class:       col.Class,
			Sortable:    col.Sortable,
			Glyph:       Indicator(col.Key, col.Sortable, t.Sort),
			Interactive: col.Sortable && t.OnSort != nil,
		})
	}

	for _, row := range t.Data {
		body := BodyRow{
			ID:          row.RowID(),
			Cells:       make([]Cell, 0, len(t.Columns)),
			Plain:       make([]string, 0, len(t.Columns)),
			Interactive: t.OnRowClick != nil,
		}
		for _, col := range t.Columns {
			cell := col.Resolve(row)
			body.Cells = append(body.Cells, cell)
			if cell.IsComponent() {
				body.Plain = append(body.Plain, col.Text(row))
			} else {
				body.Plain = append(body.Plain, cell.String())
			}
		}
		g.Rows = append(g.Rows, body)
	}

	return g
}

// ClickHeader forwards a header click to OnSort. It returns false and does
// nothing when the column is unknown, not sortable, or OnSort is nil.
func (t Table[T]) ClickHeader(key string) bool {
	if t.OnSort == nil {
		return false
	}
	col, ok := t.column(key)
	if !ok || !col.Sortable {
		return false
	}
	t.OnSort(col.Key)
	return true
}

// ClickRow passes the row with the given id to OnRowClick. It returns false
// and does nothing when OnRowClick is nil or no row has that id.
func (t Table[T]) ClickRow(id string) bool {
	if t.OnRowClick == nil {
		return false
	}
	for _, row := range t.Data {
		if row.RowID() == id {
			t.OnRowClick(row)
			return true
		}
	}
	return false
}

// Column returns the column with the given key.
func (t Table[T]) Column(key string) (Column[T], bool) {
	return t.column(key)
}

// Validate checks the caller contract: non-empty unique column keys and
// unique row ids. Rendering does not depend on it.
func (t Table[T]) Validate() error {
	keys := make(map[string]struct{}, len(t.Columns))
	for i, col := range t.Columns {
		if col.Key == "" {
			return fmt.Errorf("%w: column %d", ErrEmptyColumnKey, i)
		}
		if _, ok := keys[col.Key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateColumnKey, col.Key)
		}
		keys[col.Key] = struct{}{}
	}

	ids := make(map[string]struct{}, len(t.Data))
	for _, row := range t.Data {
		id := row.RowID()
		if _, ok := ids[id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRowID, id)
		}
		ids[id] = struct{}{}
	}
	return nil
}

func (t Table[T]) column(key string) (Column[T], bool) {
	for _, col := range t.Columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column[T]{}, false
}

func (t Table[T]) emptyMessage() string {
	if t.EmptyMessage != "" {
		return t.EmptyMessage
	}
	return DefaultEmptyMessage
}
