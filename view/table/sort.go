package table

import (
	"fmt"
	"strings"
)

// SortDirection is the direction of the active sort column.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ParseSortDirection maps "desc" (any case) to SortDescending and everything
// else to SortAscending.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDescending)) {
		return SortDescending
	}
	return SortAscending
}

// SortState is the sort configuration owned by the caller of a table.
// An empty Column means unsorted.
type SortState struct {
	Column    string
	Direction SortDirection
}

// IsSorted returns true if a column is active.
func (s SortState) IsSorted() bool {
	return s.Column != ""
}

// IsActive reports whether key is the active sort column.
func (s SortState) IsActive(key string) bool {
	return s.Column != "" && s.Column == key
}

// Toggle returns the state a caller usually moves to after a header click on
// key: flip the direction if key is already active, else sort ascending.
// Tables never call it.
func (s SortState) Toggle(key string) SortState {
	if s.IsActive(key) {
		if s.Direction == SortDescending {
			return SortState{Column: key, Direction: SortAscending}
		}
		return SortState{Column: key, Direction: SortDescending}
	}
	return SortState{Column: key, Direction: SortAscending}
}

func (s SortState) String() string {
	if !s.IsSorted() {
		return "unsorted"
	}
	return fmt.Sprintf("%s %s", s.Column, s.Direction)
}

// Glyph is the sort indicator drawn in a header cell.
type Glyph int

const (
	// GlyphNone is used for non-sortable columns; nothing is drawn.
	GlyphNone Glyph = iota
	GlyphNeutral
	GlyphAscending
	GlyphDescending
)

// String returns the symbol drawn for the glyph.
func (g Glyph) String() string {
	switch g {
	case GlyphNeutral:
		return "↕"
	case GlyphAscending:
		return "↑"
	case GlyphDescending:
		return "↓"
	default:
		return ""
	}
}

// Indicator returns the glyph of a header cell. It is a pure function of the
// column's sortability and the externally supplied state.
func Indicator(key string, sortable bool, state SortState) Glyph {
	if !sortable {
		return GlyphNone
	}
	if !state.IsActive(key) {
		return GlyphNeutral
	}
	if state.Direction == SortAscending {
		return GlyphAscending
	}
	return GlyphDescending
}
