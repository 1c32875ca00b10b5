package mortality

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Classification holds every fixed choice the pipeline makes: which years
// and causes are kept, how the US suicide label is found, and how US cause
// names translate into Mexico's ICD10 derived labels.
//
// It is kept as data so the cross-classification approximations are
// visible in one reviewable file.
type Classification struct {
	USEntity      string `yaml:"us_entity"`
	MexicoEntity  string `yaml:"mexico_entity"`
	NationalState string `yaml:"national_state"`

	ReferenceYear int      `yaml:"reference_year"`
	Years         []int    `yaml:"years"`
	Exclude       []string `yaml:"exclude"`
	TopN          int      `yaml:"top_n"`

	Suicide  SuicideRules  `yaml:"suicide"`
	Combined CombinedCause `yaml:"combined"`
	Mexico   MexicoTotals  `yaml:"mexico_totals"`

	// CauseMap maps a US cause name to one or more Mexico cause labels.
	CauseMap map[string][]string `yaml:"cause_map"`
}

// SuicideRules configures how the US suicide label is resolved.
type SuicideRules struct {
	Candidates []string `yaml:"candidates"`
	Keywords   []string `yaml:"keywords"`
	Fallback   string   `yaml:"fallback"`
}

// CombinedCause is the synthetic cause shared by both countries. The US
// side sums the resolved suicide label while Mexico sums MexicoLabels, so
// the two values are only approximately comparable.
type CombinedCause struct {
	Label        string   `yaml:"label"`
	MexicoLabels []string `yaml:"mexico_labels"`
}

// MexicoTotals selects the pre-aggregated rows of the Mexico table.
type MexicoTotals struct {
	Population string `yaml:"population"`
	AgeGroup   string `yaml:"age_group"`
}

// DefaultClassification returns the classification used to publish the
// front end data.
func DefaultClassification() *Classification {
	return &Classification{
		USEntity:      "United States",
		MexicoEntity:  "Mexico",
		NationalState: "United States",

		ReferenceYear: 2015,
		Years:         []int{2000, 2005, 2010, 2015},
		Exclude:       []string{"All causes", "Alzheimer's disease"},
		TopN:          10,

		Suicide: SuicideRules{
			Candidates: []string{"Suicide", "Intentional self-harm (suicide)"},
			Keywords:   []string{"suicide", "self-harm"},
			Fallback:   "Suicide",
		},
		Combined: CombinedCause{
			Label:        "Mental health/suicide",
			MexicoLabels: []string{"Mental and behavioural disorders, ICD10"},
		},
		Mexico: MexicoTotals{
			Population: "Total",
			AgeGroup:   "Total",
		},

		CauseMap: map[string][]string{
			"Heart disease":           {"Ischaemic heart diseases, ICD10"},
			"Cancer":                  {"Malignant neoplasms, ICD10"},
			"CLRD":                    {"Chronic lower respiratory diseases, ICD10"},
			"Unintentional injuries":  {"Accidents, ICD10"},
			"Stroke":                  {"Cerebrovascular diseases, ICD10"},
			"Diabetes":                {"Diabetes mellitus, ICD10"},
			"Influenza and pneumonia": {"Influenza, ICD10", "Pneumonia, ICD10"},
			"Kidney disease":          {"Disorders of kidney and ureter, ICD10"},
		},
	}
}

// LoadClassification reads a YAML classification file. Fields the file
// leaves out keep their default value.
func LoadClassification(path string) (*Classification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read classification file %s: %w", path, err)
	}
	return ParseClassification(data)
}

// ParseClassification parses YAML on top of DefaultClassification.
// A cause_map in data replaces the default map rather than merging with it.
func ParseClassification(data []byte) (*Classification, error) {
	c := DefaultClassification()

	var override struct {
		CauseMap map[string][]string `yaml:"cause_map"`
	}
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse classification YAML: %w", err)
	}
	if override.CauseMap != nil {
		c.CauseMap = nil
	}

	// Unknown keys are errors, a misspelled key would otherwise keep its default.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse classification YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Marshal serializes the classification to YAML.
func (c *Classification) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks the fields BuildOutputs depends on.
func (c *Classification) Validate() error {
	var errs []error

	if c.USEntity == "" || c.MexicoEntity == "" {
		errs = append(errs, errors.New("entity names must not be empty"))
	}
	if c.NationalState == "" {
		errs = append(errs, errors.New("national_state must not be empty"))
	}
	if len(c.Years) == 0 {
		errs = append(errs, errors.New("years must not be empty"))
	}
	if c.TopN <= 0 {
		errs = append(errs, fmt.Errorf("top_n must be positive, got %d", c.TopN))
	}
	if c.Combined.Label == "" {
		errs = append(errs, errors.New("combined.label must not be empty"))
	}
	if c.Suicide.Fallback == "" {
		errs = append(errs, errors.New("suicide.fallback must not be empty"))
	}
	for cause, labels := range c.CauseMap {
		if len(labels) == 0 {
			errs = append(errs, fmt.Errorf("cause_map entry '%s' has no Mexico labels", cause))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid classification: %w", errors.Join(errs...))
	}
	return nil
}

// IncludesYear reports whether year is a snapshot year.
func (c *Classification) IncludesYear(year int) bool {
	for _, y := range c.Years {
		if y == year {
			return true
		}
	}
	return false
}

// SuicideLabelRules returns the ordered rules used to find the US suicide
// label: exact candidates first, then a keyword scan.
func (c *Classification) SuicideLabelRules() []LabelRule {
	rules := make([]LabelRule, 0, len(c.Suicide.Candidates)+1)
	for _, s := range c.Suicide.Candidates {
		rules = append(rules, ExactLabel(s))
	}
	if len(c.Suicide.Keywords) > 0 {
		rules = append(rules, ContainsFold(c.Suicide.Keywords...))
	}
	return rules
}
