package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONSOLE_STORAGE_MODE", "memory")
	t.Setenv("CONSOLE_FIXTURES", "")
	t.Setenv("CONSOLE_LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDumpCmd(t *testing.T) {
	t.Run("Searched and sorted page", func(t *testing.T) {
		out, err := execute(t, "dump", "runs", "--search", "whisper", "--sort", "name", "--dir", "desc")
		require.NoError(t, err)

		assert.Contains(t, out, "Run ↓")
		v4 := strings.Index(out, "whisper-ft-de-v4")
		v3 := strings.Index(out, "whisper-ft-de-v3")
		require.NotEqual(t, -1, v4)
		require.NotEqual(t, -1, v3)
		assert.Less(t, v4, v3)
		assert.NotContains(t, out, "seg-aerial-b2")
	})

	t.Run("No match prints placeholder", func(t *testing.T) {
		out, err := execute(t, "dump", "alerts", "--search", "does-not-exist")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out, "No alerts\n"))
	})

	t.Run("Unknown page", func(t *testing.T) {
		_, err := execute(t, "dump", "jobs")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown page "jobs"`)
		assert.Contains(t, err.Error(), "runs, evaluations")
	})

	t.Run("Missing page argument", func(t *testing.T) {
		_, err := execute(t, "dump")
		assert.Error(t, err)
	})
}
