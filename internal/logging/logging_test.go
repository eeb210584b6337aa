package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("no-op logger when PRIMER_LOG is unset", func(t *testing.T) {
		t.Setenv(envVar, "")

		logger, err := New()
		require.NoError(t, err)
		require.NotNil(t, logger)
	})

	t.Run("file logger when PRIMER_LOG names a path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "primer.log")
		t.Setenv(envVar, path)

		logger, err := New()
		require.NoError(t, err)

		logger.Info("step changed")
		logger.Sync()

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "step changed")
	})
}
