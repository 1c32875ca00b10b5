package table

import (
	"fmt"
	"io"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/anrid/xls"
)

// ExtractDataFromXLS reads the first sheet of a legacy Excel workbook.
func ExtractDataFromXLS(r io.ReadSeeker, handler Handler) error {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return fmt.Errorf("open XLS workbook: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return fmt.Errorf("XLS workbook has no sheets")
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}

		var cols []string
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		if err := handler(cols); err != nil {
			return err
		}
	}
	return nil
}

// ExtractDataFromXLSX reads the first sheet of an Office Open XML workbook.
func ExtractDataFromXLSX(r io.Reader, handler Handler) error {
	wb, err := xlsx.OpenReader(r)
	if err != nil {
		return fmt.Errorf("open XLSX workbook: %w", err)
	}

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("XLSX workbook has no sheets")
	}
	defaultSheet := sheets[0]

	rows, err := wb.GetRows(defaultSheet)
	if err != nil {
		return fmt.Errorf("get rows for sheet '%s': %w", defaultSheet, err)
	}

	for _, row := range rows {
		if err := handler(row); err != nil {
			return err
		}
	}
	return nil
}
