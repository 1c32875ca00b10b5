package table

import (
	"fmt"
	"strings"
)

// Header maps column names to their position in a row.
type Header map[string]int

// MissingColumnError reports a required column absent from a header row.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column '%s'", e.Column)
}

// NewHeader indexes a header row. Names are trimmed; on duplicates the
// first occurrence wins.
func NewHeader(row []string) Header {
	h := make(Header, len(row))
	for i, name := range row {
		name = strings.TrimSpace(name)
		if _, found := h[name]; !found {
			h[name] = i
		}
	}
	return h
}

// Require returns a *MissingColumnError for the first absent column.
func (h Header) Require(columns ...string) error {
	for _, c := range columns {
		if _, found := h[c]; !found {
			return &MissingColumnError{Column: c}
		}
	}
	return nil
}

// Get returns the trimmed cell for column, or "" when the row is short or
// the column is unknown.
func (h Header) Get(row []string, column string) string {
	i, found := h[column]
	if !found || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// IsBlank reports whether every cell in row is empty after trimming.
func IsBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
