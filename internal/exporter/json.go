package exporter

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cfpb/consumer-credit-trends-data/internal/errors"
)

// JSONWriter writes chart and digest payloads under a base directory.
type JSONWriter struct {
	basePath string
}

// NewJSONWriter creates a new JSON writer instance
func NewJSONWriter(basePath string) *JSONWriter {
	return &JSONWriter{basePath: basePath}
}

// Write marshals payload with indentation and writes it to filePath,
// resolved against the base directory unless absolute.
func (w *JSONWriter) Write(filePath string, payload interface{}) error {
	fullPath := filePath
	if !filepath.IsAbs(fullPath) {
		fullPath = filepath.Join(w.basePath, fullPath)
	}

	slog.Debug("writing JSON file", slog.String("path", fullPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return errors.NewStorageError("failed to create JSON file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(payload); err != nil {
		return errors.NewStorageError("failed to encode JSON payload", err)
	}
	return nil
}
