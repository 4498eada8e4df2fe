package exporter

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cfpb/consumer-credit-trends-data/internal/errors"
)

// CSVWriter writes output tables under a base directory.
type CSVWriter struct {
	basePath string
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(basePath string) *CSVWriter {
	return &CSVWriter{basePath: basePath}
}

// WriteTable writes a processed table (header row included) to filePath,
// resolved against the base directory unless absolute. Parent directories
// are created as needed.
func (w *CSVWriter) WriteTable(filePath string, table [][]string) error {
	fullPath := w.resolvePath(filePath)

	slog.Debug("writing CSV file",
		slog.String("path", fullPath),
		slog.Int("row_count", len(table)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return errors.NewStorageError("failed to create CSV file", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for i, row := range table {
		if err := writer.Write(row); err != nil {
			return errors.NewStorageError("failed to write CSV row", err).
				WithContext("row_index", i)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush CSV file", err)
	}
	return nil
}

func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) {
		return filePath
	}
	return filepath.Join(w.basePath, filePath)
}
