package cli

import (
	"fmt"
	"io"

	"github.com/anrid/mortality-stats/pkg/mortality"
	"github.com/spf13/cobra"
)

const sanityYear = 2015

func (a *app) runBuild(cmd *cobra.Command, args []string) error {
	cls, err := a.cfg.LoadClassification()
	if err != nil {
		return err
	}

	a.logf("Loading US data: %s\n", a.cfg.USPath())
	us, err := mortality.LoadUS(a.cfg.USPath())
	if err != nil {
		return err
	}
	a.logf("US rows : %d\n", len(us))

	a.logf("Loading Mexico data: %s\n", a.cfg.MexicoPath())
	mx, err := mortality.LoadMexico(a.cfg.MexicoPath())
	if err != nil {
		return err
	}
	a.logf("Mexico rows : %d\n", len(mx))

	out, err := mortality.BuildOutputs(us, mx, cls)
	if err != nil {
		return err
	}
	for _, w := range out.Warnings {
		a.warnf("%s\n", w)
	}

	nationalPath, statesPath, err := mortality.SaveOutputs(a.cfg.CleanDir, out)
	if err != nil {
		return err
	}
	if a.cfg.Verbose {
		out.Info(a.stderr)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Wrote:")
	fmt.Fprintf(w, " - %s\n", nationalPath)
	fmt.Fprintf(w, " - %s\n", statesPath)
	fmt.Fprintln(w, "Sanity checks:")
	printSanity(w, "US", out.National, cls.USEntity, cls.Combined.Label)
	printSanity(w, "MX", out.National, cls.MexicoEntity, cls.Combined.Label)
	return nil
}

func printSanity(w io.Writer, short string, records []mortality.NationalRecord, entity, cause string) {
	value := "None"
	if d, found := mortality.LookupNational(records, entity, cause, sanityYear); found {
		value = fmt.Sprint(d)
	}
	fmt.Fprintf(w, " %s %d (%s) = %s\n", short, sanityYear, cause, value)
}
