package table

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// ExtractDataFromCSV reads comma separated rows from r. Rows may have a
// varying number of fields; a leading UTF-8 byte order mark is dropped.
func ExtractDataFromCSV(r io.Reader, handler Handler) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if first {
			if len(row) > 0 {
				row[0] = strings.TrimPrefix(row[0], utf8BOM)
			}
			first = false
		}

		if err := handler(row); err != nil {
			return err
		}
	}
}
