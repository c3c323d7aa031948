package table

import (
	"context"
	"io"
)

// Render implements templ.Component.
func (t Table[T]) Render(ctx context.Context, w io.Writer) error {
	return grid(t.Grid(), t.ID, t.eventURL).Render(ctx, w)
}
