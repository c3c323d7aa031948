package handler

import (
	"cmp"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/aiops-console/console/view/table"
)

type sortKind int

const (
	sortEmpty sortKind = iota
	sortNumber
	sortTime
	sortText
)

type sortKey struct {
	kind   sortKind
	number float64
	time   time.Time
	text   string
}

type ranker interface {
	Rank() int
}

// sortRows returns a copy of rows ordered by the accessor of the sorted
// column. Empty values go last in both directions and equal values keep
// their order. Rows are returned as given when state names no column with
// an accessor.
func sortRows[T table.Row](rows []T, columns []table.Column[T], state table.SortState) []T {
	if !state.IsSorted() {
		return rows
	}
	i := slices.IndexFunc(columns, func(c table.Column[T]) bool { return c.Key == state.Column })
	if i < 0 || columns[i].Value == nil {
		return rows
	}
	value := columns[i].Value

	keys := make(map[string]sortKey, len(rows))
	for _, row := range rows {
		keys[row.RowID()] = newSortKey(value(row))
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b T) int {
		ka, kb := keys[a.RowID()], keys[b.RowID()]
		switch {
		case ka.kind == sortEmpty && kb.kind == sortEmpty:
			return 0
		case ka.kind == sortEmpty:
			return 1
		case kb.kind == sortEmpty:
			return -1
		}
		c := compareKeys(ka, kb)
		if state.Direction == table.SortDescending {
			return -c
		}
		return c
	})
	return sorted
}

func newSortKey(value any) sortKey {
	v := reflect.ValueOf(value)
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return sortKey{}
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return sortKey{}
	}

	switch x := v.Interface().(type) {
	case time.Time:
		if x.IsZero() {
			return sortKey{}
		}
		return sortKey{kind: sortTime, time: x}
	case ranker:
		return sortKey{kind: sortNumber, number: float64(x.Rank())}
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sortKey{kind: sortNumber, number: float64(v.Int())}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return sortKey{kind: sortNumber, number: float64(v.Uint())}
	case reflect.Float32, reflect.Float64:
		return sortKey{kind: sortNumber, number: v.Float()}
	case reflect.Bool:
		if v.Bool() {
			return sortKey{kind: sortNumber, number: 1}
		}
		return sortKey{kind: sortNumber}
	}

	text := table.Stringify(v.Interface())
	if text == "" {
		return sortKey{}
	}
	return sortKey{kind: sortText, text: text}
}

// compareKeys orders numbers before times before text when kinds differ.
func compareKeys(a, b sortKey) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case sortNumber:
		return cmp.Compare(a.number, b.number)
	case sortTime:
		return a.time.Compare(b.time)
	default:
		if c := cmp.Compare(strings.ToLower(a.text), strings.ToLower(b.text)); c != 0 {
			return c
		}
		return cmp.Compare(a.text, b.text)
	}
}
