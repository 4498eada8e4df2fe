package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriterWrite(t *testing.T) {
	base := t.TempDir()
	w := NewJSONWriter(base)

	payload := map[string]interface{}{"adjusted": []interface{}{}}
	require.NoError(t, w.Write(filepath.Join("mortgages", "chart.json"), payload))

	data, err := os.ReadFile(filepath.Join(base, "mortgages", "chart.json"))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, payload, decoded)

	// Output is indented for human diffability.
	assert.Contains(t, string(data), "\n")
}

func TestJSONWriterAbsolutePath(t *testing.T) {
	base := t.TempDir()
	other := t.TempDir()
	w := NewJSONWriter(base)

	target := filepath.Join(other, "snapshot.json")
	require.NoError(t, w.Write(target, map[string]string{"k": "v"}))

	_, err := os.Stat(target)
	assert.NoError(t, err)
}
