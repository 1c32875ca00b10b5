package mortality

import (
	"fmt"

	"github.com/anrid/mortality-stats/pkg/table"
)

// Source column names.
const (
	USColumnState  = "State"
	USColumnYear   = "Year"
	USColumnCause  = "Cause Name"
	USColumnDeaths = "Deaths"

	MexicoColumnYear       = "year"
	MexicoColumnCause      = "cause"
	MexicoColumnPopulation = "population"
	MexicoColumnAgeGroup   = "age_group"
	MexicoColumnDeaths     = "deaths"
)

// rowReader walks a table, indexing the header and handing data rows with
// their 1-based line number to fn. Blank rows are skipped.
func rowReader(path string, required []string, fn func(h table.Header, line int, row []string) error) error {
	var h table.Header
	line := 0

	err := table.ExtractDataFromFile(path, func(row []string) error {
		line++
		if h == nil {
			h = table.NewHeader(row)
			return h.Require(required...)
		}
		if table.IsBlank(row) {
			return nil
		}
		return fn(h, line, row)
	})
	if err != nil {
		return err
	}
	if h == nil {
		return fmt.Errorf("%s: no header row", path)
	}
	return nil
}

func intCell(path string, h table.Header, line int, row []string, column string) (int, error) {
	v := h.Get(row, column)
	n, err := table.ParseInt(v)
	if err != nil {
		return 0, &table.ParseError{File: path, Line: line, Column: column, Value: v, Err: err}
	}
	return n, nil
}

// LoadUS reads the US table at path.
func LoadUS(path string) ([]USRow, error) {
	var rows []USRow

	required := []string{USColumnState, USColumnYear, USColumnCause, USColumnDeaths}
	err := rowReader(path, required, func(h table.Header, line int, row []string) error {
		year, err := intCell(path, h, line, row, USColumnYear)
		if err != nil {
			return err
		}
		deaths, err := intCell(path, h, line, row, USColumnDeaths)
		if err != nil {
			return err
		}

		rows = append(rows, USRow{
			State:  h.Get(row, USColumnState),
			Year:   year,
			Cause:  h.Get(row, USColumnCause),
			Deaths: deaths,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load US table: %w", err)
	}
	return rows, nil
}

// LoadMexico reads the Mexico table at path.
func LoadMexico(path string) ([]MexicoRow, error) {
	var rows []MexicoRow

	required := []string{MexicoColumnYear, MexicoColumnCause, MexicoColumnPopulation, MexicoColumnAgeGroup, MexicoColumnDeaths}
	err := rowReader(path, required, func(h table.Header, line int, row []string) error {
		year, err := intCell(path, h, line, row, MexicoColumnYear)
		if err != nil {
			return err
		}
		deaths, err := intCell(path, h, line, row, MexicoColumnDeaths)
		if err != nil {
			return err
		}

		rows = append(rows, MexicoRow{
			Year:       year,
			Cause:      h.Get(row, MexicoColumnCause),
			Population: h.Get(row, MexicoColumnPopulation),
			AgeGroup:   h.Get(row, MexicoColumnAgeGroup),
			Deaths:     deaths,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load Mexico table: %w", err)
	}
	return rows, nil
}
