package table

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotInteger is wrapped by ParseInt for values that are not whole numbers.
var ErrNotInteger = errors.New("not an integer")

// ParseError locates a cell that could not be converted.
type ParseError struct {
	File   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: column '%s': cannot parse '%s': %v", e.File, e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseInt converts a cell to an int. Integral float spellings such as
// "2015.0" are accepted since spreadsheet exports often write them.
func ParseInt(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, fmt.Errorf("empty value: %w", ErrNotInteger)
	}

	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, ErrNotInteger
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, ErrNotInteger
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, ErrNotInteger
	}
	return int(f), nil
}
