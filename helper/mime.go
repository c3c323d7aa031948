package helper

import (
	"mime"
	"path/filepath"
	"strings"
)

// reportMimeTypes covers export formats missing from the builtin mime table.
var reportMimeTypes = map[string]string{
	".csv":  "text/csv",
	".txt":  "text/plain",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
}

// GetMimeType returns the MIME type for a file based on its extension
func GetMimeType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if mimeType, ok := reportMimeTypes[ext]; ok {
		return mimeType
	}
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return "application/octet-stream"
	}
	return mimeType
}
