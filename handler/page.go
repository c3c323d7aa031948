package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aiops-console/console/model"
	"github.com/aiops-console/console/store"
	"github.com/aiops-console/console/view/screens"
	"github.com/aiops-console/console/view/table"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Page is a console list page backed by one table.
type Page interface {
	Name() string
	// View renders the page and handles its table clicks.
	View(c echo.Context) error
	// List returns the searched and sorted rows as JSON.
	List(c echo.Context) error
	// Get returns one row as JSON.
	Get(c echo.Context) error
	// Grid composes the searched and sorted table without interaction.
	Grid(req model.ListRequest) (table.Grid, error)
}

type listPage[T table.Row] struct {
	name    string
	title   string
	empty   string
	columns func() []table.Column[T]
	rows    func(search string) ([]T, error)
	lookup  func(id string) (T, error)
	// onRow answers a row click. Rows are read only when nil.
	onRow      func(c echo.Context, row T) error
	exportable bool
	reload     string
	actions    templ.Component
}

func (p *listPage[T]) Name() string {
	return p.name
}

func (p *listPage[T]) path() string {
	return "/" + p.name
}

// load fetches the rows matching req and resets a sort on an unknown or
// unsortable column.
func (p *listPage[T]) load(req *model.ListRequest) (table.Table[T], error) {
	rows, err := p.rows(req.Search)
	if err != nil {
		return table.Table[T]{}, err
	}

	tbl := table.Table[T]{
		ID:           p.name + "-table",
		Columns:      p.columns(),
		Data:         rows,
		EmptyMessage: p.empty,
	}
	if col, ok := tbl.Column(req.Sort.Column); !ok || !col.Sortable {
		req.Sort = table.SortState{}
	}
	return tbl, nil
}

func (p *listPage[T]) arrange(tbl table.Table[T], req model.ListRequest) table.Table[T] {
	tbl.Data = sortRows(tbl.Data, tbl.Columns, req.Sort)
	tbl.Sort = req.Sort
	tbl.EventURL = screens.EventURL(p.path(), req)
	return tbl
}

func (p *listPage[T]) View(c echo.Context) error {
	req := model.NewListRequest(c.QueryParams())
	tbl, err := p.load(&req)
	if err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to load %s: %v", p.name, err))
	}

	var clicked *T
	tbl.OnSort = func(key string) {
		req.Sort = req.Sort.Toggle(key)
	}
	if p.onRow != nil {
		tbl.OnRowClick = func(row T) {
			clicked = &row
		}
	}

	if event, ok := table.EventFromQuery(c.QueryParams()); ok {
		tbl.Dispatch(event)
		if event.Kind == table.RowClick {
			if clicked != nil {
				return p.onRow(c, *clicked)
			}
			if p.onRow == nil {
				return renderPopupOrJson(c, http.StatusBadRequest, fmt.Sprintf("Rows of %s have no details", p.title))
			}
			return renderPopupOrJson(c, http.StatusNotFound, fmt.Sprintf("Row %s not found", event.Key))
		}
	}

	tbl = p.arrange(tbl, req)

	c.Response().Header().Add("HX-Push-Url", req.URL(p.path()))
	c.Response().Header().Add("HX-Retarget", "#body")

	page := screens.ListPage{Title: p.title, Path: p.path(), ReloadEvent: p.reload, Actions: p.actions}
	if p.exportable {
		page.ExportURL = "/api/export/" + p.name
	}
	return render(c, screens.List(page, req, tbl))
}

func (p *listPage[T]) List(c echo.Context) error {
	req := model.NewListRequest(c.QueryParams())
	tbl, err := p.load(&req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": fmt.Sprintf("Failed to load %s: %v", p.name, err),
		})
	}

	return c.JSON(http.StatusOK, sortRows(tbl.Data, tbl.Columns, req.Sort))
}

func (p *listPage[T]) Get(c echo.Context) error {
	id := c.Param("id")
	row, err := p.lookup(id)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": fmt.Sprintf("Row %s not found", id)})
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}

	return c.JSON(http.StatusOK, row)
}

func (p *listPage[T]) Grid(req model.ListRequest) (table.Grid, error) {
	tbl, err := p.load(&req)
	if err != nil {
		return table.Grid{}, err
	}
	return p.arrange(tbl, req).Grid(), nil
}

// detailPopup answers a row click with the details of the row.
func detailPopup[T model.Detailer](title string) func(echo.Context, T) error {
	return func(c echo.Context, row T) error {
		return renderPopup(c, screens.Details(title, row))
	}
}

// fromStore adapts an infallible store search.
func fromStore[T any](selectAll func(search string) []T) func(string) ([]T, error) {
	return func(search string) ([]T, error) {
		return selectAll(search), nil
	}
}
