package upload

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filesystems(t *testing.T) map[string]Filesystem {
	return map[string]Filesystem{
		"memory": NewFilesystemMemory(),
		"local":  NewFilesystemLocal(filepath.Join(t.TempDir(), "reports")),
	}
}

func TestFilesystem(t *testing.T) {
	for name, fs := range filesystems(t) {
		t.Run(name, func(t *testing.T) {
			files, err := fs.ListFiles()
			require.NoError(t, err)
			assert.Empty(t, files)

			content := "name,loss\nwhisper,0.42\n"
			err = fs.Write("runs_20261018.csv", strings.NewReader(content), int64(len(content)))
			require.NoError(t, err)

			files, err = fs.ListFiles()
			require.NoError(t, err)
			require.Len(t, files, 1)
			assert.Equal(t, "runs_20261018.csv", files[0].Name)
			assert.Equal(t, int64(len(content)), files[0].Size)
			assert.Equal(t, "text/csv", files[0].MimeType)
			assert.False(t, files[0].ModifiedAt.IsZero())

			reader, err := fs.Open("runs_20261018.csv")
			require.NoError(t, err)
			data, err := io.ReadAll(reader)
			require.NoError(t, err)
			require.NoError(t, reader.Close())
			assert.Equal(t, content, string(data))

			err = fs.Delete("runs_20261018.csv")
			require.NoError(t, err)

			files, err = fs.ListFiles()
			require.NoError(t, err)
			assert.Empty(t, files)

			_, err = fs.Open("runs_20261018.csv")
			assert.ErrorIs(t, err, os.ErrNotExist)

			err = fs.Delete("runs_20261018.csv")
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}

func TestFilesystemRejectsInvalidNames(t *testing.T) {
	for name, fs := range filesystems(t) {
		t.Run(name, func(t *testing.T) {
			for _, invalid := range []string{"", "..", "../secret.csv", "nested/report.csv", `dir\report.csv`} {
				err := fs.Write(invalid, strings.NewReader("x"), 1)
				assert.ErrorIs(t, err, ErrInvalidName, invalid)

				_, err = fs.Open(invalid)
				assert.ErrorIs(t, err, ErrInvalidName, invalid)

				err = fs.Delete(invalid)
				assert.ErrorIs(t, err, ErrInvalidName, invalid)
			}
		})
	}
}

func TestCleanName(t *testing.T) {
	name, err := CleanName("  alerts_1.csv ")
	require.NoError(t, err)
	assert.Equal(t, "alerts_1.csv", name)
}

func TestCreateFilesystemFromEnv(t *testing.T) {
	t.Run("Default is memory", func(t *testing.T) {
		t.Setenv("CONSOLE_STORAGE_MODE", "")
		fs, err := CreateFilesystemFromEnv()
		require.NoError(t, err)
		assert.IsType(t, &FilesystemMemory{}, fs)
	})

	t.Run("Local uses the storage path", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("CONSOLE_STORAGE_MODE", "LOCAL")
		t.Setenv("CONSOLE_STORAGE_PATH", dir)

		fs, err := CreateFilesystemFromEnv()
		require.NoError(t, err)
		require.NoError(t, fs.Write("a.csv", strings.NewReader("a"), 1))

		_, err = os.Stat(filepath.Join(dir, "a.csv"))
		assert.NoError(t, err)
	})

	t.Run("S3 without credentials fails", func(t *testing.T) {
		t.Setenv("CONSOLE_STORAGE_MODE", "s3")
		t.Setenv("S3_BUCKET_NAME", "")
		_, err := CreateFilesystemFromEnv()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing required S3 configuration")
	})

	t.Run("Valid S3 configuration", func(t *testing.T) {
		t.Setenv("CONSOLE_STORAGE_MODE", "s3")
		t.Setenv("S3_ENDPOINT", "localhost:9000")
		t.Setenv("S3_BUCKET_NAME", "console")
		t.Setenv("S3_ACCESS_KEY_ID", "minio")
		t.Setenv("S3_SECRET_ACCESS_KEY", "minio123")
		t.Setenv("S3_PREFIX", "/exports/")

		fs, err := CreateFilesystemFromEnv()
		require.NoError(t, err)
		s3fs, ok := fs.(*FilesystemS3)
		require.True(t, ok)
		assert.Equal(t, "exports/", s3fs.prefix)

		key, err := s3fs.key("runs.csv")
		require.NoError(t, err)
		assert.Equal(t, "exports/runs.csv", key)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		t.Setenv("CONSOLE_STORAGE_MODE", "ftp")
		_, err := CreateFilesystemFromEnv()
		assert.Error(t, err)
	})
}

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "", endpointURL("", true))
	assert.Equal(t, "https://s3.local", endpointURL("s3.local", true))
	assert.Equal(t, "http://s3.local:9000", endpointURL("s3.local:9000", false))
	assert.Equal(t, "http://minio:9000", endpointURL("http://minio:9000", true))
}
