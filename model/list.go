package model

import (
	"net/url"

	"github.com/aiops-console/console/view/table"
)

// ListRequest is the state of a list page carried in its query string.
type ListRequest struct {
	Search string          `json:"search"`
	Sort   table.SortState `json:"sort"`
}

// NewListRequest reads search, sort and dir from a query.
func NewListRequest(q url.Values) ListRequest {
	return ListRequest{
		Search: q.Get("search"),
		Sort: table.SortState{
			Column:    q.Get("sort"),
			Direction: table.ParseSortDirection(q.Get("dir")),
		},
	}
}

// Query encodes the request. Empty values are left out.
func (r ListRequest) Query() url.Values {
	q := url.Values{}
	if r.Search != "" {
		q.Set("search", r.Search)
	}
	if r.Sort.IsSorted() {
		q.Set("sort", r.Sort.Column)
		q.Set("dir", string(r.Sort.Direction))
	}
	return q
}

// URL returns path with the encoded request appended.
func (r ListRequest) URL(path string) string {
	q := r.Query()
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
