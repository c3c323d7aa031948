package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/aiops-console/console/helper"
	"github.com/aiops-console/console/model"
)

const (
	STORAGE_MODE_LOCAL  = "local"
	STORAGE_MODE_S3     = "s3"
	STORAGE_MODE_MEMORY = "memory"
)

var ErrInvalidName = errors.New("invalid report name")

// Filesystem stores exported reports.
type Filesystem interface {
	Write(name string, reader io.Reader, size int64) error
	Open(name string) (io.ReadCloser, error)
	Delete(name string) error
	ListFiles() ([]model.File, error)
}

// CreateFilesystemFromEnv creates a filesystem based on environment variables
func CreateFilesystemFromEnv() (Filesystem, error) {
	storageMode := strings.ToLower(helper.GetEnvOrDefault("CONSOLE_STORAGE_MODE", STORAGE_MODE_MEMORY))

	switch storageMode {
	case STORAGE_MODE_S3:
		config := S3Config{
			Endpoint:        os.Getenv("S3_ENDPOINT"),
			Region:          helper.GetEnvOrDefault("S3_REGION", "us-east-1"),
			BucketName:      os.Getenv("S3_BUCKET_NAME"),
			Prefix:          helper.GetEnvOrDefault("S3_PREFIX", "reports"),
			AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
			UseSSL:          helper.GetEnvOrDefault("S3_USE_SSL", "true") == "true",
		}
		if config.BucketName == "" || config.AccessKeyID == "" || config.SecretAccessKey == "" {
			return nil, fmt.Errorf("missing required S3 configuration: S3_BUCKET_NAME, S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY")
		}
		return NewFilesystemS3(config)
	case STORAGE_MODE_MEMORY:
		return NewFilesystemMemory(), nil
	case STORAGE_MODE_LOCAL:
		basePath := helper.GetEnvOrDefault("CONSOLE_STORAGE_PATH", "./reports")
		return NewFilesystemLocal(basePath), nil
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s (supported: local, s3, memory)", storageMode)
	}
}

// CleanName validates a flat report name. Reports live at the storage root,
// so separators and dot segments are rejected.
func CleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || path.Clean(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return name, nil
}
