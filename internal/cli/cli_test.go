package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anrid/mortality-stats/pkg/mortality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usCSV = `State,Year,Cause Name,Deaths
United States,2015,All causes,100
United States,2015,Heart disease,50
United States,2015,Cancer,40
United States,2015,Alzheimer's disease,30
United States,2015,Suicide,10
United States,2010,Heart disease,45
United States,2010,Suicide,8
Texas,2015,Heart disease,7
Ohio,2015,Heart disease,5
`

const mxCSV = `year,cause,population,age_group,deaths
2015,"Ischaemic heart diseases, ICD10",Total,Total,200
2015,"Ischaemic heart diseases, ICD10",Total,Total,50
2015,"Malignant neoplasms, ICD10",Total,Total,70
2015,"Mental and behavioural disorders, ICD10",Total,Total,5199
2015,"Mental and behavioural disorders, ICD10",Male,Total,3000
`

type fixture struct {
	raw   string
	clean string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	root := t.TempDir()
	f := fixture{raw: filepath.Join(root, "raw"), clean: filepath.Join(root, "clean")}
	require.NoError(t, os.MkdirAll(f.raw, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(f.raw, "us.csv"), []byte(usCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(f.raw, "mx.csv"), []byte(mxCSV), 0o644))
	return f
}

func (f fixture) args(extra ...string) []string {
	return append([]string{
		"--config", "",
		"--raw-dir", f.raw,
		"--clean-dir", f.clean,
		"--us-file", "us.csv",
		"--mx-file", "mx.csv",
	}, extra...)
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootBuildsOutputs(t *testing.T) {
	f := newFixture(t)

	stdout, stderr, err := run(t, f.args()...)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	nationalPath := filepath.Join(f.clean, mortality.NationalFile)
	statesPath := filepath.Join(f.clean, mortality.StatesFile)
	assert.Equal(t, "Wrote:\n"+
		" - "+nationalPath+"\n"+
		" - "+statesPath+"\n"+
		"Sanity checks:\n"+
		" US 2015 (Mental health/suicide) = 10\n"+
		" MX 2015 (Mental health/suicide) = 5199\n", stdout)

	national, err := mortality.LoadNational(nationalPath)
	require.NoError(t, err)
	d, found := mortality.LookupNational(national, "Mexico", "Heart disease", 2015)
	require.True(t, found)
	assert.Equal(t, 250, d)

	states, err := mortality.LoadStates(statesPath)
	require.NoError(t, err)
	assert.Len(t, states, 2)
}

func TestRootIsIdempotent(t *testing.T) {
	f := newFixture(t)

	_, _, err := run(t, f.args()...)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(f.clean, mortality.NationalFile))
	require.NoError(t, err)

	_, _, err = run(t, f.args()...)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(f.clean, mortality.NationalFile))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRootWarnsAndVerbose(t *testing.T) {
	f := newFixture(t)
	us := usCSV + "United States,2015,Septicemia,45\n"
	require.NoError(t, os.WriteFile(filepath.Join(f.raw, "us.csv"), []byte(us), 0o644))

	_, stderr, err := run(t, f.args("-v")...)
	require.NoError(t, err)

	assert.Contains(t, stderr, "Loading US data: "+filepath.Join(f.raw, "us.csv"))
	assert.Contains(t, stderr, "Warning: cause_unmapped: 'Septicemia' has no Mexico mapping")
	assert.Contains(t, stderr, "US only          : Septicemia")
}

func TestRootSanityMissingValue(t *testing.T) {
	f := newFixture(t)
	mx := "year,cause,population,age_group,deaths\n2015,\"Malignant neoplasms, ICD10\",Total,Total,70\n"
	require.NoError(t, os.WriteFile(filepath.Join(f.raw, "mx.csv"), []byte(mx), 0o644))

	stdout, stderr, err := run(t, f.args()...)
	require.NoError(t, err)

	assert.Contains(t, stdout, " US 2015 (Mental health/suicide) = 10\n")
	assert.Contains(t, stdout, " MX 2015 (Mental health/suicide) = None\n")
	assert.Contains(t, stderr, "Warning: combined_absent: ")
}

func TestRootMissingInput(t *testing.T) {
	f := newFixture(t)

	_, _, err := run(t, f.args("--us-file", "absent.csv")...)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(filepath.Join(f.clean, mortality.NationalFile))
	assert.True(t, os.IsNotExist(statErr), "nothing is written on failure")
}

func TestRootBadYear(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(f.raw, "mx.csv"), []byte("year,cause,population,age_group,deaths\nabc,x,Total,Total,1\n"), 0o644))

	_, _, err := run(t, f.args()...)
	assert.ErrorContains(t, err, "column 'year': cannot parse 'abc'")
}

func TestRootClassificationFile(t *testing.T) {
	f := newFixture(t)
	cls := filepath.Join(f.raw, "classification.yaml")
	require.NoError(t, os.WriteFile(cls, []byte("combined:\n  label: Mental health\n"), 0o644))

	stdout, _, err := run(t, f.args("--classification", cls)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, " US 2015 (Mental health) = 10\n")
}

func TestRootEnvironment(t *testing.T) {
	f := newFixture(t)
	t.Setenv("MORTALITY_CLEAN_DIR", filepath.Join(f.clean, "env"))

	_, _, err := run(t,
		"--config", "",
		"--raw-dir", f.raw,
		"--us-file", "us.csv",
		"--mx-file", "mx.csv",
	)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(f.clean, "env", mortality.NationalFile))
	assert.NoError(t, statErr)
}

func TestRootConfigFile(t *testing.T) {
	f := newFixture(t)
	cfgPath := filepath.Join(f.raw, "mortality.yaml")
	cfg := "raw_dir: " + f.raw + "\nclean_dir: " + f.clean + "\nus_file: us.csv\nmx_file: mx.csv\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	_, _, err := run(t, "--config", cfgPath)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(f.clean, mortality.StatesFile))
	assert.NoError(t, statErr)
}

func TestShow(t *testing.T) {
	f := newFixture(t)
	_, _, err := run(t, f.args()...)
	require.NoError(t, err)

	stdout, _, err := run(t, f.args("show", "--cause", "Heart disease")...)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Heart disease deaths in 2015")
	assert.Contains(t, stdout, "United States")
	assert.Contains(t, stdout, "250")
	assert.Contains(t, stdout, "2010: 45  ->  2015: 50  (11.1%)")
	texas, ohio := strings.Index(stdout, "Texas"), strings.Index(stdout, "Ohio")
	require.NotEqual(t, -1, texas)
	require.NotEqual(t, -1, ohio)
	assert.Less(t, texas, ohio, "states are listed by deaths")
}

func TestShowDefaultCause(t *testing.T) {
	f := newFixture(t)
	_, _, err := run(t, f.args()...)
	require.NoError(t, err)

	stdout, _, err := run(t, f.args("show")...)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Heart disease deaths in 2015")
	assert.Contains(t, stdout, "The US total is lower than Mexico by 200 deaths.")
	assert.Contains(t, stdout, "That's about 0.20x Mexico's count.")
}

func TestShowOffSnapshotYear(t *testing.T) {
	f := newFixture(t)
	_, _, err := run(t, f.args()...)
	require.NoError(t, err)

	stdout, stderr, err := run(t, f.args("show", "--year", "2012")...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: 2012 is not a snapshot year")
	assert.Contains(t, stdout, "n/a")
}

func TestShowList(t *testing.T) {
	f := newFixture(t)
	_, _, err := run(t, f.args()...)
	require.NoError(t, err)

	stdout, _, err := run(t, f.args("show", "--list")...)
	require.NoError(t, err)
	assert.Equal(t, "Cancer\nHeart disease\nMental health/suicide\n", stdout)
}

func TestShowCombinedHasNoStates(t *testing.T) {
	f := newFixture(t)
	_, _, err := run(t, f.args()...)
	require.NoError(t, err)

	stdout, _, err := run(t, f.args("show", "--cause", "Mental health/suicide", "--dump")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No US state rows for Mental health/suicide.")
	assert.Contains(t, stdout, "(mortality.Comparison)")
}

func TestShowWithoutData(t *testing.T) {
	f := newFixture(t)

	_, _, err := run(t, f.args("show")...)
	assert.ErrorContains(t, err, "run mortality first")
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := run(t, "--config", "", "config", "init", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(dir, "mortality.yaml"))

	_, err = mortality.LoadClassification(filepath.Join(dir, "classification.yaml"))
	require.NoError(t, err)

	_, _, err = run(t, "--config", "", "config", "init", "--dir", dir)
	assert.ErrorContains(t, err, "file already exists")

	stdout, _, err = run(t, "--config", filepath.Join(dir, "mortality.yaml"), "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "raw_dir: data/raw")
	assert.Contains(t, stdout, "Influenza and pneumonia:")
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "--config", "", "version")
	require.NoError(t, err)
	assert.Equal(t, "mortality "+version+"\n", stdout)
}
