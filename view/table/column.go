package table

// Row is a record shown as one table line. RowID must be unique within the
// data handed to a table; it keys the rendered row and row click events.
type Row interface {
	RowID() string
}

// Column describes how one field of T is labelled, sorted and rendered.
type Column[T Row] struct {
	// Key identifies the column and must be unique within a column set.
	Key    string
	Header string
	// Sortable columns forward header clicks to the table's OnSort.
	Sortable bool
	// Value is the accessor used when Render is nil, and by callers that
	// order rows by this column.
	Value func(row T) any
	// Render produces rich cell content. It takes precedence over Value.
	Render func(row T) Cell
	// Class is added to the header and body cells of the column.
	Class string
}

// Resolve returns the cell content of row for this column. It never fails:
// a missing accessor or an absent value resolves to an empty text cell.
func (c Column[T]) Resolve(row T) Cell {
	if c.Render != nil {
		return c.Render(row)
	}
	return Text(c.Text(row))
}

// Text returns the stringified accessor value of row, ignoring Render.
func (c Column[T]) Text(row T) string {
	if c.Value == nil {
		return ""
	}
	return Stringify(c.Value(row))
}
