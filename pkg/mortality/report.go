package mortality

import "sort"

// EntityDeaths is one bar of a country comparison.
type EntityDeaths struct {
	Entity string
	Deaths int
	Found  bool
}

// Comparison holds each entity's deaths for one cause and year.
type Comparison struct {
	Cause  string
	Year   int
	Values []EntityDeaths
}

// Compare looks up cause and year for every entity.
func Compare(records []NationalRecord, entities []string, cause string, year int) Comparison {
	c := Comparison{Cause: cause, Year: year}
	for _, e := range entities {
		d, found := LookupNational(records, e, cause, year)
		c.Values = append(c.Values, EntityDeaths{Entity: e, Deaths: d, Found: found})
	}
	return c
}

// Gap compares the first two entities of a comparison. Missing values
// count as zero. Ratio is only meaningful when HasRatio is set.
type Gap struct {
	Diff     int
	Ratio    float64
	HasRatio bool
}

// Gap returns the difference and ratio of the first value to the second.
func (c Comparison) Gap() Gap {
	if len(c.Values) < 2 {
		return Gap{}
	}

	a, b := c.Values[0].Deaths, c.Values[1].Deaths
	g := Gap{Diff: a - b}
	if b != 0 && a != 0 {
		g.Ratio = float64(a) / float64(b)
		g.HasRatio = true
	}
	return g
}

// Relation describes the sign of the difference.
func (g Gap) Relation() string {
	switch {
	case g.Diff > 0:
		return "higher"
	case g.Diff < 0:
		return "lower"
	}
	return "the same"
}

// AbsDiff is the size of the difference.
func (g Gap) AbsDiff() int {
	if g.Diff < 0 {
		return -g.Diff
	}
	return g.Diff
}

// DefaultCause returns preferred when causes holds it, else the first cause.
func DefaultCause(causes []string, preferred string) string {
	for _, c := range causes {
		if c == preferred {
			return c
		}
	}
	if len(causes) == 0 {
		return ""
	}
	return causes[0]
}

// Trend is an entity's series for one cause with the change between its
// first and last year.
type Trend struct {
	Entity string
	Cause  string
	Series []YearTotal

	First, Last YearTotal
	Change      int
	// ChangePct is only meaningful when HasPct is set, i.e. First.Deaths != 0.
	ChangePct float64
	HasPct    bool
}

// TrendOf builds the trend of entity for cause. It returns false when the
// entity has no records for the cause.
func TrendOf(records []NationalRecord, entity, cause string) (Trend, bool) {
	t := Trend{Entity: entity, Cause: cause}
	for _, r := range records {
		if r.Entity == entity && r.Cause == cause {
			t.Series = append(t.Series, YearTotal{Year: r.Year, Deaths: r.Deaths})
		}
	}
	if len(t.Series) == 0 {
		return t, false
	}

	sort.SliceStable(t.Series, func(i, j int) bool { return t.Series[i].Year < t.Series[j].Year })
	t.First, t.Last = t.Series[0], t.Series[len(t.Series)-1]
	t.Change = t.Last.Deaths - t.First.Deaths
	if t.First.Deaths != 0 {
		t.ChangePct = float64(t.Change) / float64(t.First.Deaths) * 100
		t.HasPct = true
	}
	return t, true
}

// TopStates returns up to n states with the most deaths for cause in
// year, largest first.
func TopStates(states []StateRecord, cause string, year, n int) []StateRecord {
	var rows []StateRecord
	for _, s := range states {
		if s.Cause == cause && s.Year == year {
			rows = append(rows, s)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Deaths > rows[j].Deaths })
	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// HasStateData reports whether any state row exists for cause.
func HasStateData(states []StateRecord, cause string) bool {
	for _, s := range states {
		if s.Cause == cause {
			return true
		}
	}
	return false
}

// CauseNames returns the distinct causes of records, sorted.
func CauseNames(records []NationalRecord) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range records {
		if !seen[r.Cause] {
			seen[r.Cause] = true
			names = append(names, r.Cause)
		}
	}
	sort.Strings(names)
	return names
}
