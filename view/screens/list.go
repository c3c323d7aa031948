package screens

import (
	"github.com/aiops-console/console/model"
	"github.com/aiops-console/console/view/components"
	"github.com/aiops-console/console/view/table"

	"github.com/a-h/templ"
)

// ListPage describes a list screen around one table.
type ListPage struct {
	Title string
	Path  string
	// ExportURL enables the export button when set.
	ExportURL string
	// ReloadEvent re-fetches the page when triggered on the body.
	ReloadEvent string
	// Actions is rendered between toolbar and table.
	Actions templ.Component
}

// List renders the toolbar and tbl inside the console layout.
func List[T table.Row](page ListPage, req model.ListRequest, tbl table.Table[T]) templ.Component {
	return components.Layout(page.Title, list(page, req, tbl))
}

// EventURL builds table click URLs on path that keep the search and sort of req.
func EventURL(path string, req model.ListRequest) func(table.Event) string {
	return func(e table.Event) string {
		q := req.Query()
		q.Set(e.Param(), e.Key)
		return path + "?" + q.Encode()
	}
}

// Details is the detail popup of a record.
func Details(title string, d model.Detailer) templ.Component {
	return components.PopupDetails(title, d.ToDetails())
}

// Report is the popup of a stored report with download and delete actions.
func Report(file model.File, downloadURL string, deleteURL string) templ.Component {
	details := []model.KeyValuePair{
		{Key: "Name", Value: file.Name},
		{Key: "Type", Value: file.MimeType},
		{Key: "Size", Value: table.Stringify(file.Size) + " bytes"},
		{Key: "Modified", Value: table.Stringify(file.ModifiedAt)},
	}
	return components.PopupDetails(file.Name, details, components.Link("Download", downloadURL, "button"), deleteButton(file.Name, deleteURL))
}
