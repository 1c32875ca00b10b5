// Package mortality turns raw US and Mexico cause-of-death tables into the
// national and state level series read by the visualization front end.
package mortality

// USRow is one row of the NCHS leading causes of death table. The pseudo
// state "United States" holds the national total.
type USRow struct {
	State  string
	Year   int
	Cause  string
	Deaths int
}

// MexicoRow is one row of the Mexico mortality table. Population holds the
// sex category and AgeGroup the age band, either of which may be "Total".
type MexicoRow struct {
	Year       int
	Cause      string
	Population string
	AgeGroup   string
	Deaths     int
}

// NationalRecord is a (country, year, cause) death total.
type NationalRecord struct {
	Entity string `json:"Entity"`
	Year   int    `json:"Year"`
	Cause  string `json:"Cause"`
	Deaths int    `json:"Deaths"`
}

// StateRecord is one US state row for a selected cause.
type StateRecord struct {
	State  string `json:"State"`
	Year   int    `json:"Year"`
	Cause  string `json:"Cause Name"`
	Deaths int    `json:"Deaths"`
}

// CauseTotal is the summed deaths of a cause in the ranking year.
type CauseTotal struct {
	Cause  string
	Deaths int
}
