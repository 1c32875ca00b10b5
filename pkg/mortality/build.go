package mortality

import "fmt"

// WarningKind classifies a condition the pipeline tolerates but reports.
type WarningKind string

const (
	WarningReferenceYearMissing WarningKind = "reference_year_missing"
	WarningSuicideFallback      WarningKind = "suicide_label_fallback"
	WarningCauseUnmapped        WarningKind = "cause_unmapped"
	WarningCauseAbsentInMexico  WarningKind = "cause_absent_in_mexico"
	WarningCombinedAbsent       WarningKind = "combined_absent"
)

// Warning describes data that was skipped or defaulted.
type Warning struct {
	Kind    WarningKind
	Cause   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// Outputs is everything BuildOutputs derives from the two source tables.
type Outputs struct {
	// National is US per-cause, US combined, Mexico per-cause and Mexico
	// combined records, in that order.
	National []NationalRecord
	States   []StateRecord

	Ranking      []CauseTotal
	Causes       []string
	SuicideLabel string

	// MissingInMexico lists selected causes reported for the US only.
	MissingInMexico []string
	Warnings        []Warning
}

// BuildOutputs runs the selection, mapping and aggregation steps. It does
// no I/O and depends only on its arguments.
func BuildOutputs(us []USRow, mx []MexicoRow, cls *Classification) (*Outputs, error) {
	if cls == nil {
		cls = DefaultClassification()
	}
	if err := cls.Validate(); err != nil {
		return nil, err
	}

	out := &Outputs{}
	warn := func(kind WarningKind, cause, format string, args ...interface{}) {
		out.Warnings = append(out.Warnings, Warning{Kind: kind, Cause: cause, Message: fmt.Sprintf(format, args...)})
	}

	// Causes.
	out.Ranking = RankCauses(us, cls.NationalState, cls.ReferenceYear)
	if len(out.Ranking) == 0 {
		warn(WarningReferenceYearMissing, "", "no %s rows for reference year %d, cause list is empty", cls.NationalState, cls.ReferenceYear)
	}

	label, found := ResolveLabel(DistinctCauses(us, cls.NationalState), cls.SuicideLabelRules())
	if !found {
		label = cls.Suicide.Fallback
		warn(WarningSuicideFallback, label, "no suicide label found in US data, using '%s'", label)
	}
	out.SuicideLabel = label
	out.Causes = SelectCauses(out.Ranking, cls.Exclude, cls.TopN, IsSuicideLabel)

	// US.
	out.National = append(out.National, USNational(us, cls.NationalState, cls.USEntity, out.Causes, cls.Years)...)
	usCombined := USCauseByYear(us, cls.NationalState, out.SuicideLabel, cls.Years)
	out.National = append(out.National, toRecords(cls.USEntity, cls.Combined.Label, usCombined)...)

	// Mexico.
	totals := SumMexicoTotals(mx, cls.Years, cls.Mexico)
	for _, cause := range out.Causes {
		labels, mapped := cls.CauseMap[cause]
		if !mapped {
			out.MissingInMexico = append(out.MissingInMexico, cause)
			warn(WarningCauseUnmapped, cause, "'%s' has no Mexico mapping, reported for %s only", cause, cls.USEntity)
			continue
		}

		series := SumByYear(totals, labels)
		if len(series) == 0 {
			out.MissingInMexico = append(out.MissingInMexico, cause)
			warn(WarningCauseAbsentInMexico, cause, "no Mexico rows for '%s' (%v), reported for %s only", cause, labels, cls.USEntity)
			continue
		}
		out.National = append(out.National, toRecords(cls.MexicoEntity, cause, series)...)
	}

	mxCombined := SumByYear(totals, cls.Combined.MexicoLabels)
	if len(mxCombined) == 0 {
		warn(WarningCombinedAbsent, cls.Combined.Label, "no Mexico rows for %v", cls.Combined.MexicoLabels)
	}
	out.National = append(out.National, toRecords(cls.MexicoEntity, cls.Combined.Label, mxCombined)...)

	out.States = USStates(us, cls.NationalState, out.Causes, cls.Years)

	if out.National == nil {
		out.National = []NationalRecord{}
	}
	if out.States == nil {
		out.States = []StateRecord{}
	}
	return out, nil
}

// LookupNational returns the deaths of the first record matching entity,
// cause and year.
func LookupNational(records []NationalRecord, entity, cause string, year int) (int, bool) {
	for _, r := range records {
		if r.Entity == entity && r.Cause == cause && r.Year == year {
			return r.Deaths, true
		}
	}
	return 0, false
}
