// Package cli implements the mortality command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "v0.2.0"

type app struct {
	cfgFile string
	cfg     Config
	viper   *viper.Viper
	stderr  io.Writer
}

// logf writes progress lines to stderr when verbose output is on.
func (a *app) logf(format string, args ...interface{}) {
	if a.cfg.Verbose {
		fmt.Fprintf(a.stderr, format, args...)
	}
}

func (a *app) warnf(format string, args ...interface{}) {
	fmt.Fprintf(a.stderr, "Warning: "+format, args...)
}

// NewRootCommand builds the command tree. Running the root command with no
// arguments rebuilds the clean data files.
func NewRootCommand() *cobra.Command {
	a := &app{viper: viper.New(), stderr: os.Stderr}

	rootCmd := &cobra.Command{
		Use:   "mortality",
		Short: "Build the US / Mexico cause of death data files",
		Long: `mortality reads the NCHS leading causes of death table and the Mexico
mortality table and writes the two JSON files used by the visualization:

  us_mexico_national.json  national series for the top US causes, both countries
  us_states_top10.json     per-state US rows for the same causes

The "Mental health/suicide" series sums US suicide deaths and Mexico mental
and behavioural disorder deaths. The two are related, not equivalent.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.stderr = cmd.ErrOrStderr()
			return a.initConfig()
		},
		RunE: a.runBuild,
	}

	d := DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./mortality.yaml or $HOME/.mortality/mortality.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.String("raw-dir", d.RawDir, "directory holding the source tables")
	flags.String("clean-dir", d.CleanDir, "directory the JSON files are written to")
	flags.String("us-file", d.USFile, "US table (CSV, XLSX or XLS), relative to --raw-dir")
	flags.String("mx-file", d.MexicoFile, "Mexico table (CSV, XLSX or XLS), relative to --raw-dir")
	flags.String("classification", "", "YAML classification file (default: built-in)")

	// Bind flags to viper
	for key, flag := range map[string]string{
		"verbose":        "verbose",
		"raw_dir":        "raw-dir",
		"clean_dir":      "clean-dir",
		"us_file":        "us-file",
		"mx_file":        "mx-file",
		"classification": "classification",
	} {
		_ = a.viper.BindPFlag(key, flags.Lookup(flag))
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mortality %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd, a.newShowCommand(), a.newConfigCommand())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
