package dataprocessing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRowsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "num_data_AUT.csv")
	content := "month,value,adjustment\n" +
		"0,100.5,Seasonally Adjusted\n" +
		"0,98.2,Unadjusted\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rows, err := LoadRows(path)
	require.NoError(t, err)

	// Header row is dropped.
	assert.Equal(t, [][]string{
		{"0", "100.5", "Seasonally Adjusted"},
		{"0", "98.2", "Unadjusted"},
	}, rows)
}

func TestLoadRowsRaggedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	content := "a,b,c\n1,2\n1,2,3,4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rows, err := LoadRows(path)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Len(t, rows[0], 2)
	assert.Len(t, rows[1], 4)
}

func TestLoadRowsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	rows, err := LoadRows(path)
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestLoadRowsMissingFile(t *testing.T) {
	_, err := LoadRows(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
