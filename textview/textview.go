// Package textview writes table grids for terminals and spreadsheets.
package textview

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/aiops-console/console/view/table"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTable draws g as a bordered terminal table. Sortable headers carry
// their sort glyph. Labels and cells are written as given, without the
// upper casing tablewriter applies by default. An empty grid is followed by
// its placeholder message.
func WriteTable(w io.Writer, g table.Grid) error {
	headers := make([]any, 0, len(g.Headers))
	for _, h := range g.Headers {
		label := h.Label
		if h.Glyph != table.GlyphNone {
			label += " " + h.Glyph.String()
		}
		headers = append(headers, label)
	}

	tbl := tablewriter.NewTable(w,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRowAutoFormat(tw.Off),
	)
	tbl.Header(headers...)
	for _, row := range g.Rows {
		err := tbl.Append(row.Plain)
		if err != nil {
			return fmt.Errorf("append row %s: %w", row.ID, err)
		}
	}
	err := tbl.Render()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	if g.Empty {
		_, err = fmt.Fprintln(w, g.EmptyMessage)
	}
	return err
}

// WriteCSV writes the header labels followed by the plain text of every row.
func WriteCSV(w io.Writer, g table.Grid) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(g.Headers))
	for _, h := range g.Headers {
		header = append(header, h.Label)
	}
	err := cw.Write(header)
	if err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range g.Rows {
		err = cw.Write(row.Plain)
		if err != nil {
			return fmt.Errorf("write csv row %s: %w", row.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
