package upload

import (
	"io"
	"os"
	"path/filepath"

	"github.com/aiops-console/console/helper"
	"github.com/aiops-console/console/model"
)

// FilesystemLocal implements the Filesystem interface for local file storage
type FilesystemLocal struct {
	basePath string
}

// NewFilesystemLocal creates a new local filesystem instance with the specified base path
func NewFilesystemLocal(basePath string) Filesystem {
	return &FilesystemLocal{
		basePath: basePath,
	}
}

// Write streams data from reader to a report file below the base path
func (fs *FilesystemLocal) Write(name string, reader io.Reader, size int64) error {
	name, err := CleanName(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(fs.basePath, 0750); err != nil {
		return helper.NewError("create report directory", err)
	}

	// #nosec G304 -- name is validated by CleanName.
	file, err := os.Create(filepath.Join(fs.basePath, name))
	if err != nil {
		return helper.NewError("create report", err)
	}
	defer file.Close()

	_, err = io.Copy(file, reader)
	return err
}

// Open opens a report and returns a ReadCloser
func (fs *FilesystemLocal) Open(name string) (io.ReadCloser, error) {
	name, err := CleanName(name)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- name is validated by CleanName.
	return os.Open(filepath.Join(fs.basePath, name))
}

// Delete removes a report
func (fs *FilesystemLocal) Delete(name string) error {
	name, err := CleanName(name)
	if err != nil {
		return err
	}
	return os.Remove(filepath.Join(fs.basePath, name))
}

// ListFiles returns the reports in the base path. A missing base path holds no reports.
func (fs *FilesystemLocal) ListFiles() ([]model.File, error) {
	entries, err := os.ReadDir(fs.basePath)
	if os.IsNotExist(err) {
		return []model.File{}, nil
	}
	if err != nil {
		return nil, helper.NewError("list reports", err)
	}

	files := []model.File{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, helper.NewError("stat report", err)
		}
		files = append(files, model.File{
			Name:       entry.Name(),
			Size:       info.Size(),
			MimeType:   helper.GetMimeType(entry.Name()),
			ModifiedAt: info.ModTime(),
		})
	}

	return files, nil
}
