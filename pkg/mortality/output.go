package mortality

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Output file names under the clean data directory.
const (
	NationalFile = "us_mexico_national.json"
	StatesFile   = "us_states_top10.json"
)

// Save writes v to path as indented JSON, creating the parent directory.
func Save(path string, v interface{}) error {
	js, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, js, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SaveOutputs writes the national and state files into dir and returns
// their paths.
func SaveOutputs(dir string, o *Outputs) (nationalPath, statesPath string, err error) {
	nationalPath = filepath.Join(dir, NationalFile)
	statesPath = filepath.Join(dir, StatesFile)

	if err := Save(nationalPath, o.National); err != nil {
		return "", "", err
	}
	if err := Save(statesPath, o.States); err != nil {
		return "", "", err
	}
	return nationalPath, statesPath, nil
}

func load(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// LoadNational reads a national file written by SaveOutputs.
func LoadNational(path string) ([]NationalRecord, error) {
	var records []NationalRecord
	if err := load(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadStates reads a state file written by SaveOutputs.
func LoadStates(path string) ([]StateRecord, error) {
	var records []StateRecord
	if err := load(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Info prints a short summary of the run.
func (o *Outputs) Info(w io.Writer) {
	firstYear, lastYear := 0, 0
	for _, r := range o.National {
		if firstYear == 0 || r.Year < firstYear {
			firstYear = r.Year
		}
		if r.Year > lastYear {
			lastYear = r.Year
		}
	}

	missing := "-"
	if len(o.MissingInMexico) > 0 {
		missing = strings.Join(o.MissingInMexico, ", ")
	}

	fmt.Fprintf(w, `
	Years            : %d - %d
	Causes           : %s
	Suicide label    : %s
	National records : %d
	State records    : %d
	US only          : %s
`, firstYear, lastYear, strings.Join(o.Causes, ", "), o.SuicideLabel, len(o.National), len(o.States), missing)
	fmt.Fprintln(w)
}
