package table

import "net/url"

// Query parameters carrying table clicks.
const (
	ParamHeaderClick = "click"
	ParamRowClick    = "row"
)

type EventKind int

const (
	HeaderClick EventKind = iota
	RowClick
)

// Event is a click on a header (Key is the column key) or a row (Key is the
// row id).
type Event struct {
	Kind EventKind
	Key  string
}

// Param returns the query parameter name of the event.
func (e Event) Param() string {
	if e.Kind == RowClick {
		return ParamRowClick
	}
	return ParamHeaderClick
}

// DefaultEventURL encodes the event as a query relative to the current page.
func DefaultEventURL(e Event) string {
	return "?" + url.Values{e.Param(): []string{e.Key}}.Encode()
}

// EventFromQuery decodes the click carried by a request query, if any.
// A header click wins over a row click.
func EventFromQuery(q url.Values) (Event, bool) {
	if key := q.Get(ParamHeaderClick); key != "" {
		return Event{Kind: HeaderClick, Key: key}, true
	}
	if id := q.Get(ParamRowClick); id != "" {
		return Event{Kind: RowClick, Key: id}, true
	}
	return Event{}, false
}

// Dispatch feeds e to ClickHeader or ClickRow.
func (t Table[T]) Dispatch(e Event) bool {
	if e.Kind == RowClick {
		return t.ClickRow(e.Key)
	}
	return t.ClickHeader(e.Key)
}

func (t Table[T]) eventURL(e Event) string {
	if t.EventURL != nil {
		return t.EventURL(e)
	}
	return DefaultEventURL(e)
}
