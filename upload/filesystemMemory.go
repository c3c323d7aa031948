package upload

import (
	"io"
	"os"

	"github.com/aiops-console/console/helper"
	"github.com/aiops-console/console/model"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
)

// FilesystemMemory implements the Filesystem interface for in-memory file storage using go-billy's memfs
type FilesystemMemory struct {
	fs billy.Filesystem
}

// NewFilesystemMemory creates a new in-memory filesystem instance
func NewFilesystemMemory() Filesystem {
	return &FilesystemMemory{
		fs: memfs.New(),
	}
}

// Write streams data from reader to a report
func (m *FilesystemMemory) Write(name string, reader io.Reader, size int64) error {
	name, err := CleanName(name)
	if err != nil {
		return err
	}

	file, err := m.fs.Create(name)
	if err != nil {
		return helper.NewError("create report", err)
	}
	defer file.Close()

	_, err = io.Copy(file, reader)
	return err
}

// Open opens a report for reading
func (m *FilesystemMemory) Open(name string) (io.ReadCloser, error) {
	name, err := CleanName(name)
	if err != nil {
		return nil, err
	}
	return m.fs.Open(name)
}

// Delete removes a report
func (m *FilesystemMemory) Delete(name string) error {
	name, err := CleanName(name)
	if err != nil {
		return err
	}
	return m.fs.Remove(name)
}

// ListFiles returns the reports at the root of the filesystem
func (m *FilesystemMemory) ListFiles() ([]model.File, error) {
	entries, err := m.fs.ReadDir(".")
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
		files = append(files, model.File{
			Name:       entry.Name(),
			Size:       entry.Size(),
			MimeType:   helper.GetMimeType(entry.Name()),
			ModifiedAt: entry.ModTime(),
		})
	}

	return files, nil
}
