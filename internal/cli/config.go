package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anrid/mortality-stats/pkg/mortality"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config locates the source tables and the output directory.
type Config struct {
	RawDir     string `yaml:"raw_dir" mapstructure:"raw_dir"`
	CleanDir   string `yaml:"clean_dir" mapstructure:"clean_dir"`
	USFile     string `yaml:"us_file" mapstructure:"us_file"`
	MexicoFile string `yaml:"mx_file" mapstructure:"mx_file"`

	// Classification is an optional YAML file replacing the built-in
	// cause selection and mapping rules.
	Classification string `yaml:"classification" mapstructure:"classification"`

	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the layout of the data directory in the repository.
func DefaultConfig() Config {
	return Config{
		RawDir:     filepath.Join("data", "raw"),
		CleanDir:   filepath.Join("data", "clean"),
		USFile:     "NCHS_-_Leading_Causes_of_Death__United_States.csv",
		MexicoFile: "mexico_mortality_2000_2021.csv",
	}
}

// USPath is the US table path; relative file names are under RawDir.
func (c Config) USPath() string {
	return c.rawPath(c.USFile)
}

// MexicoPath is the Mexico table path; relative file names are under RawDir.
func (c Config) MexicoPath() string {
	return c.rawPath(c.MexicoFile)
}

func (c Config) rawPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.RawDir, name)
}

// LoadClassification returns the configured classification, or the
// built-in one when no file is set.
func (c Config) LoadClassification() (*mortality.Classification, error) {
	if c.Classification == "" {
		return mortality.DefaultClassification(), nil
	}
	return mortality.LoadClassification(c.Classification)
}

const (
	configName         = "mortality"
	configFileName     = configName + ".yaml"
	classificationFile = "classification.yaml"
	envPrefix          = "MORTALITY"
)

// initConfig reads in config file and ENV variables.
func (a *app) initConfig() error {
	v := a.viper

	d := DefaultConfig()
	v.SetDefault("raw_dir", d.RawDir)
	v.SetDefault("clean_dir", d.CleanDir)
	v.SetDefault("us_file", d.USFile)
	v.SetDefault("mx_file", d.MexicoFile)
	v.SetDefault("classification", d.Classification)
	v.SetDefault("verbose", d.Verbose)

	// Read in environment variables that match MORTALITY_*
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".mortality"))
		}

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if a.cfg.Verbose {
		if used := v.ConfigFileUsed(); used != "" {
			a.logf("Using config file: %s\n", used)
		}
	}
	return nil
}

func (a *app) newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage the run configuration and the cause classification.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (MORTALITY_*)
3. Config file (./mortality.yaml or ~/.mortality/mortality.yaml)
4. Defaults`,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration and classification",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if used := a.viper.ConfigFileUsed(); used != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", used)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "No configuration file found (using defaults)\n\n")
			}

			cfgYAML, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("error marshaling config: %w", err)
			}

			cls, err := a.cfg.LoadClassification()
			if err != nil {
				return err
			}
			clsYAML, err := cls.Marshal()
			if err != nil {
				return fmt.Errorf("error marshaling classification: %w", err)
			}

			fmt.Fprintf(w, "# %s\n%s\n", configFileName, cfgYAML)
			fmt.Fprintf(w, "# %s\n%s", classificationSource(a.cfg), clsYAML)
			return nil
		},
	}

	var dir string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write default configuration and classification files",
		Long: `Create mortality.yaml and classification.yaml with the built-in defaults.
Existing files are never overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath := filepath.Join(dir, configFileName)
			clsPath := filepath.Join(dir, classificationFile)

			for _, p := range []string{cfgPath, clsPath} {
				if _, err := os.Stat(p); err == nil {
					return fmt.Errorf("file already exists: %s\nUse 'mortality config show' to view it, or delete it first to recreate", p)
				}
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating config directory: %w", err)
			}

			cfg := DefaultConfig()
			cfg.Classification = clsPath
			cfgYAML, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("error marshaling config: %w", err)
			}
			clsYAML, err := mortality.DefaultClassification().Marshal()
			if err != nil {
				return fmt.Errorf("error marshaling classification: %w", err)
			}

			header := "# Mortality preprocessing configuration\n" +
				"#\n" +
				"# Configuration hierarchy (highest to lowest priority):\n" +
				"#   1. CLI flags\n" +
				"#   2. Environment variables (MORTALITY_*)\n" +
				"#   3. This config file\n" +
				"#   4. Built-in defaults\n\n"
			if err := os.WriteFile(cfgPath, append([]byte(header), cfgYAML...), 0o644); err != nil {
				return fmt.Errorf("error writing config: %w", err)
			}

			clsHeader := "# Cause classification.\n" +
				"# cause_map translates US cause names into Mexico ICD10 labels.\n" +
				"# The combined cause sums the US suicide label and the Mexico\n" +
				"# mexico_labels, which are related but not the same concept.\n\n"
			if err := os.WriteFile(clsPath, append([]byte(clsHeader), clsYAML...), 0o644); err != nil {
				return fmt.Errorf("error writing classification: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\nCreated %s\n", cfgPath, clsPath)
			return nil
		},
	}
	initCmd.Flags().StringVar(&dir, "dir", ".", "directory to write the files into")

	configCmd.AddCommand(showCmd, initCmd)
	return configCmd
}

func classificationSource(c Config) string {
	if c.Classification == "" {
		return "built-in classification"
	}
	return c.Classification
}
