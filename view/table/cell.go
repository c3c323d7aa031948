package table

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"time"

	"github.com/a-h/templ"
)

// Cell is the resolved content of one table cell. It is either literal text,
// which is escaped on output, or a component rendered verbatim.
type Cell struct {
	text      string
	component templ.Component
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{text: s}
}

// Component returns a cell rendering c. A nil component yields an empty text cell.
func Component(c templ.Component) Cell {
	if c == nil {
		return Cell{}
	}
	return Cell{component: c}
}

// IsComponent reports whether the cell holds rich content.
func (c Cell) IsComponent() bool {
	return c.component != nil
}

// String returns the text of a text cell. Component cells return "".
func (c Cell) String() string {
	return c.text
}

// Component returns the component of a component cell, or nil.
func (c Cell) Component() templ.Component {
	return c.component
}

// Render implements templ.Component.
func (c Cell) Render(ctx context.Context, w io.Writer) error {
	if c.component != nil {
		return c.component.Render(ctx, w)
	}
	_, err := io.WriteString(w, templ.EscapeString(c.text))
	return err
}

// Stringify converts an accessor value to display text. Absent values
// (nil, typed nil pointers, nil maps and slices) become "".
func Stringify(value any) string {
	if isNil(value) {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format("2006-01-02 15:04")
	case *time.Time:
		return Stringify(*v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		return Stringify(rv.Elem().Interface())
	}
	return fmt.Sprint(value)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
