package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInputDirectory(t *testing.T) {
	v := NewFileValidator(nil)

	t.Run("existing directory passes", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "num_data_AUT.csv"), []byte("x"), 0644))
		assert.NoError(t, v.ValidateInputDirectory(dir, "*.csv"))
	})

	t.Run("missing directory fails", func(t *testing.T) {
		assert.Error(t, v.ValidateInputDirectory(filepath.Join(t.TempDir(), "nope"), ""))
	})

	t.Run("file instead of directory fails", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file.csv")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
		assert.Error(t, v.ValidateInputDirectory(file, ""))
	})

	t.Run("empty directory passes with warning only", func(t *testing.T) {
		assert.NoError(t, v.ValidateInputDirectory(t.TempDir(), "*.csv"))
	})
}

func TestValidateOutputDirectory(t *testing.T) {
	v := NewFileValidator(nil)

	dir := filepath.Join(t.TempDir(), "out", "nested")
	require.NoError(t, v.ValidateOutputDirectory(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
