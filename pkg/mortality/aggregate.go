package mortality

import "sort"

// MexicoTotal is the summed deaths of one Mexico cause label in one year.
type MexicoTotal struct {
	Year   int
	Cause  string
	Deaths int
}

type yearCause struct {
	year  int
	cause string
}

// SumMexicoTotals keeps the rows whose population and age group match the
// totals filter and whose year is a snapshot year, then sums deaths per
// (year, cause). The Mexico table carries one total row per sex, so the sum
// is what produces the all-sex figure. The result is sorted by year, then
// cause.
func SumMexicoTotals(rows []MexicoRow, years []int, filter MexicoTotals) []MexicoTotal {
	keep := yearSet(years)
	sums := make(map[yearCause]int)

	for _, r := range rows {
		if r.Population != filter.Population || r.AgeGroup != filter.AgeGroup || !keep[r.Year] {
			continue
		}
		sums[yearCause{r.Year, r.Cause}] += r.Deaths
	}

	totals := make([]MexicoTotal, 0, len(sums))
	for k, d := range sums {
		totals = append(totals, MexicoTotal{Year: k.year, Cause: k.cause, Deaths: d})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Year != totals[j].Year {
			return totals[i].Year < totals[j].Year
		}
		return totals[i].Cause < totals[j].Cause
	})
	return totals
}

// SumByYear sums the totals of all labels in ascending year order. It
// returns nil when none of the labels occur.
func SumByYear(totals []MexicoTotal, labels []string) []YearTotal {
	wanted := make(map[string]bool, len(labels))
	for _, l := range labels {
		wanted[l] = true
	}

	sums := make(map[int]int)
	for _, t := range totals {
		if wanted[t.Cause] {
			sums[t.Year] += t.Deaths
		}
	}
	return sortedYearTotals(sums)
}

// YearTotal is a per-year death count.
type YearTotal struct {
	Year   int
	Deaths int
}

func sortedYearTotals(sums map[int]int) []YearTotal {
	if len(sums) == 0 {
		return nil
	}

	out := make([]YearTotal, 0, len(sums))
	for y, d := range sums {
		out = append(out, YearTotal{Year: y, Deaths: d})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

func yearSet(years []int) map[int]bool {
	s := make(map[int]bool, len(years))
	for _, y := range years {
		s[y] = true
	}
	return s
}

func stringSet(values []string) map[string]bool {
	s := make(map[string]bool, len(values))
	for _, v := range values {
		s[v] = true
	}
	return s
}

// USNational returns the national rows for the selected causes and
// snapshot years in source order.
func USNational(rows []USRow, nationalState, entity string, causes []string, years []int) []NationalRecord {
	keepYear, keepCause := yearSet(years), stringSet(causes)

	var out []NationalRecord
	for _, r := range rows {
		if r.State != nationalState || !keepCause[r.Cause] || !keepYear[r.Year] {
			continue
		}
		out = append(out, NationalRecord{Entity: entity, Year: r.Year, Cause: r.Cause, Deaths: r.Deaths})
	}
	return out
}

// USCauseByYear sums the national deaths of one cause per snapshot year.
func USCauseByYear(rows []USRow, nationalState, cause string, years []int) []YearTotal {
	keepYear := yearSet(years)
	sums := make(map[int]int)

	for _, r := range rows {
		if r.State != nationalState || r.Cause != cause || !keepYear[r.Year] {
			continue
		}
		sums[r.Year] += r.Deaths
	}
	return sortedYearTotals(sums)
}

// USStates returns the non-national rows for the selected causes and
// snapshot years in source order.
func USStates(rows []USRow, nationalState string, causes []string, years []int) []StateRecord {
	keepYear, keepCause := yearSet(years), stringSet(causes)

	var out []StateRecord
	for _, r := range rows {
		if r.State == nationalState || !keepCause[r.Cause] || !keepYear[r.Year] {
			continue
		}
		out = append(out, StateRecord{State: r.State, Year: r.Year, Cause: r.Cause, Deaths: r.Deaths})
	}
	return out
}

func toRecords(entity, cause string, series []YearTotal) []NationalRecord {
	out := make([]NationalRecord, 0, len(series))
	for _, s := range series {
		out = append(out, NationalRecord{Entity: entity, Year: s.Year, Cause: cause, Deaths: s.Deaths})
	}
	return out
}
