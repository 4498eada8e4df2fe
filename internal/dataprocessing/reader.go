package dataprocessing

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cfpb/consumer-credit-trends-data/internal/errors"
)

// LoadRows reads the data rows of an extract file, dropping the header
// row. The Office of Research delivers comma-delimited .csv files; the
// same tables occasionally arrive as single-sheet .xlsx workbooks, which
// are read through excelize and treated identically.
func LoadRows(path string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return loadWorkbookRows(path)
	}
	return loadCSVRows(path)
}

func loadCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open input file "+path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Extracts are ragged in places; let each pipeline enforce its own
	// field count.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError("failed to read csv file "+path, err)
	}

	return dropHeader(rows), nil
}

func loadWorkbookRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open workbook "+path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewParsingError("workbook has no sheets: "+path, nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewParsingError("failed to read workbook sheet "+sheets[0], err)
	}

	return dropHeader(rows), nil
}

func dropHeader(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}
