package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/anrid/mortality-stats/pkg/mortality"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const defaultShowCause = "Heart disease"

type showOptions struct {
	cause string
	year  int
	top   int
	list  bool
	dump  bool
}

func (a *app) newShowCommand() *cobra.Command {
	var o showOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Summarize the written data files for one cause",
		Long: `Show reads the clean data files and prints, for one cause and year, the
US and Mexico death counts, each country's change across the snapshot years
and the US states with the most deaths.

Example:
  mortality show --list
  mortality show --cause "Heart disease" --year 2010`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd.OutOrStdout(), o)
		},
	}

	cmd.Flags().StringVar(&o.cause, "cause", "", "cause to show (default: Heart disease, or the first cause)")
	cmd.Flags().IntVar(&o.year, "year", sanityYear, "snapshot year")
	cmd.Flags().IntVar(&o.top, "top", 3, "number of states to list")
	cmd.Flags().BoolVar(&o.list, "list", false, "list the available causes and exit")
	cmd.Flags().BoolVar(&o.dump, "dump", false, "dump the raw comparison and trends")
	return cmd
}

func (a *app) runShow(w io.Writer, o showOptions) error {
	cls, err := a.cfg.LoadClassification()
	if err != nil {
		return err
	}

	national, err := mortality.LoadNational(filepath.Join(a.cfg.CleanDir, mortality.NationalFile))
	if err != nil {
		return fmt.Errorf("no national data found, run mortality first: %w", err)
	}
	states, err := mortality.LoadStates(filepath.Join(a.cfg.CleanDir, mortality.StatesFile))
	if err != nil {
		return fmt.Errorf("no state data found, run mortality first: %w", err)
	}

	causes := mortality.CauseNames(national)
	if o.list {
		for _, c := range causes {
			fmt.Fprintln(w, c)
		}
		return nil
	}
	if len(causes) == 0 {
		return fmt.Errorf("national data is empty")
	}

	cause := o.cause
	if cause == "" {
		cause = mortality.DefaultCause(causes, defaultShowCause)
	}

	if !cls.IncludesYear(o.year) {
		a.warnf("%d is not a snapshot year %v\n", o.year, cls.Years)
	}

	// New locale number printer.
	p := message.NewPrinter(language.English)

	entities := []string{cls.USEntity, cls.MexicoEntity}
	cmp := mortality.Compare(national, entities, cause, o.year)

	p.Fprintf(w, "\n%s deaths in %s\n\n", cause, yearString(o.year))
	for _, v := range cmp.Values {
		if v.Found {
			p.Fprintf(w, "  %-15s  %12d\n", v.Entity, v.Deaths)
		} else {
			p.Fprintf(w, "  %-15s  %12s\n", v.Entity, "n/a")
		}
	}
	if g := cmp.Gap(); len(cmp.Values) == 2 {
		p.Fprintf(w, "\n  The US total is %s than Mexico by %d deaths.\n", g.Relation(), g.AbsDiff())
		if g.HasRatio {
			p.Fprintf(w, "  That's about %.2fx Mexico's count.\n", g.Ratio)
		}
	}
	if cause == cls.Combined.Label {
		p.Fprintf(w, "\n  Note: the US value counts suicide, the Mexico value counts mental and\n  behavioural disorders.\n")
	}

	var trends []mortality.Trend
	p.Fprintf(w, "\nChange across snapshot years\n\n")
	for _, e := range entities {
		t, found := mortality.TrendOf(national, e, cause)
		if !found {
			p.Fprintf(w, "  %-15s  no data\n", e)
			continue
		}
		trends = append(trends, t)

		if t.HasPct {
			p.Fprintf(w, "  %-15s  %s: %d  ->  %s: %d  (%.1f%%)\n", e, yearString(t.First.Year), t.First.Deaths, yearString(t.Last.Year), t.Last.Deaths, t.ChangePct)
		} else {
			p.Fprintf(w, "  %-15s  %s: %d  ->  %s: %d\n", e, yearString(t.First.Year), t.First.Deaths, yearString(t.Last.Year), t.Last.Deaths)
		}
	}

	p.Fprintf(w, "\nTop US states in %s\n\n", yearString(o.year))
	if !mortality.HasStateData(states, cause) {
		p.Fprintf(w, "  No US state rows for %s.\n", cause)
	} else {
		for i, s := range mortality.TopStates(states, cause, o.year, o.top) {
			p.Fprintf(w, "  %02d. %-20s  %10d\n", i+1, s.State, s.Deaths)
		}
	}
	fmt.Fprintln(w)

	if o.dump {
		spew.Fdump(w, cmp, trends)
	}
	return nil
}

// yearString keeps years out of the locale printer's digit grouping.
func yearString(year int) string {
	return strconv.Itoa(year)
}
