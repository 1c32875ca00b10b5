// Package table extracts rows of string cells from tabular source files.
//
// Statistical agencies publish the same tables as CSV, XLSX or legacy XLS
// depending on the year and the portal. ExtractDataFromFile hides the format
// and streams every row of the first sheet to a handler.
package table

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Handler receives one row of cells. Returning an error stops extraction
// and the error is returned to the caller unchanged.
type Handler func(row []string) error

// Format is a supported tabular file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

// FormatOf picks the format from the file extension. Anything that is not
// a spreadsheet is read as CSV.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	default:
		return FormatCSV
	}
}

// ExtractDataFromFile opens path and passes each row to handler.
func ExtractDataFromFile(path string, handler Handler) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open table %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close table %s: %w", path, closeErr)
		}
	}()

	switch FormatOf(path) {
	case FormatXLSX:
		err = ExtractDataFromXLSX(f, handler)
	case FormatXLS:
		err = ExtractDataFromXLS(f, handler)
	default:
		err = ExtractDataFromCSV(f, handler)
	}
	if err != nil {
		return fmt.Errorf("read table %s: %w", path, err)
	}
	return nil
}
