package handler

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aiops-console/console/helper"
	"github.com/aiops-console/console/model"
	"github.com/aiops-console/console/store"
	"github.com/aiops-console/console/textview"
	"github.com/aiops-console/console/upload"
	"github.com/aiops-console/console/view/screens"

	"github.com/labstack/echo/v4"
)

const reloadReportsEvent = "reloadReports"

// =======API Handlers=======

// Export writes the grid of a page as CSV to the report storage. Search and
// sort are read from the form or query.
func (h *ConsoleHandler) Export(c echo.Context) error {
	name := c.Param("page")
	page, ok := h.Page(name)
	if !ok || name == "reports" {
		return renderPopupOrJson(c, http.StatusNotFound, fmt.Sprintf("Page %s cannot be exported", name))
	}

	params, err := c.FormParams()
	if err != nil {
		return renderPopupOrJson(c, http.StatusBadRequest, fmt.Sprintf("Failed to parse form: %v", err))
	}

	grid, err := page.Grid(model.NewListRequest(params))
	if err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to load %s: %v", name, err))
	}

	var buf bytes.Buffer
	err = textview.WriteCSV(&buf, grid)
	if err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to write csv: %v", err))
	}

	filename := fmt.Sprintf("%s_%s.csv", name, h.now().UTC().Format("20060102T150405Z"))
	err = h.filesystem.Write(filename, &buf, int64(buf.Len()))
	if err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to save report %s: %v", filename, err))
	}
	h.logger.Info("Exported report", "page", name, "file", filename, "rows", len(grid.Rows))

	c.Response().Header().Add("HX-Trigger-After-Settle", reloadReportsEvent)

	return renderPopupOrJson(c, http.StatusOK, fmt.Sprintf("Exported %d row(s) to %s", len(grid.Rows), filename))
}

// DownloadReport streams a stored report as attachment.
func (h *ConsoleHandler) DownloadReport(c echo.Context) error {
	name, err := upload.CleanName(c.Param("name"))
	if err != nil {
		return renderPopupOrJson(c, http.StatusBadRequest, err.Error())
	}

	reader, err := h.filesystem.Open(name)
	if err != nil {
		h.logger.Debug("Failed to open report", "file", name, "error", err)
		return renderPopupOrJson(c, http.StatusNotFound, fmt.Sprintf("Report %s not found", name))
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Stream(http.StatusOK, helper.GetMimeType(name), reader)
}

// DeleteReport removes a stored report. Missing reports answer 404.
func (h *ConsoleHandler) DeleteReport(c echo.Context) error {
	name := c.Param("name")
	err := h.filesystem.Delete(name)
	if errors.Is(err, upload.ErrInvalidName) {
		return renderPopupOrJson(c, http.StatusBadRequest, err.Error())
	} else if errors.Is(err, os.ErrNotExist) {
		return renderPopupOrJson(c, http.StatusNotFound, fmt.Sprintf("Report %s not found", name))
	} else if err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to delete report %s: %v", name, err))
	}

	c.Response().Header().Add("HX-Trigger-After-Settle", reloadReportsEvent)

	return renderPopupOrJson(c, http.StatusOK, fmt.Sprintf("Report %s deleted successfully", name))
}

// =======Reports page=======

func (h *ConsoleHandler) selectReports(search string) ([]model.File, error) {
	files, err := h.filesystem.ListFiles()
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return files, nil
	}

	matches := []model.File{}
	for _, file := range files {
		if strings.Contains(strings.ToLower(file.SearchText()), search) {
			matches = append(matches, file)
		}
	}
	return matches, nil
}

func (h *ConsoleHandler) selectReport(name string) (model.File, error) {
	files, err := h.filesystem.ListFiles()
	if err != nil {
		return model.File{}, err
	}
	for _, file := range files {
		if file.Name == name {
			return file, nil
		}
	}
	return model.File{}, fmt.Errorf("%w: report %s", store.ErrNotFound, name)
}

func (h *ConsoleHandler) reportPopup(c echo.Context, file model.File) error {
	escaped := url.PathEscape(file.Name)
	return renderPopup(c, screens.Report(file, "/api/report/download/"+escaped, "/api/report/delete/"+escaped))
}

// UploadReports stores the files of a multipart form as reports.
func (h *ConsoleHandler) UploadReports(c echo.Context) error {
	// Parse multipart form with 32MB max memory
	err := c.Request().ParseMultipartForm(32 << 20)
	if err != nil {
		return renderPopupOrJson(c, http.StatusBadRequest, fmt.Sprintf("Failed to parse multipart form: %v", err))
	}

	form := c.Request().MultipartForm
	defer form.RemoveAll()

	files := form.File["files"]
	if len(files) == 0 {
		return renderPopupOrJson(c, http.StatusBadRequest, "No files found in the request")
	}

	uploaded := 0
	for _, fileHeader := range files {
		err := h.storeUpload(fileHeader)
		if err != nil {
			return renderPopupOrJson(c, http.StatusBadRequest, err.Error())
		}
		uploaded++
	}

	c.Response().Header().Add("HX-Trigger-After-Settle", reloadReportsEvent)

	return renderPopupOrJson(c, http.StatusOK, fmt.Sprintf("%v file(s) uploaded successfully", uploaded))
}

func (h *ConsoleHandler) storeUpload(fileHeader *multipart.FileHeader) error {
	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
	}
	defer file.Close()

	name := filepath.Base(fileHeader.Filename)
	err = h.filesystem.Write(name, file, fileHeader.Size)
	if err != nil {
		return fmt.Errorf("failed to save file %s: %w", name, err)
	}
	return nil
}
