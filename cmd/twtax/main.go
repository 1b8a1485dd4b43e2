package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/rgehrsitz/twtax/internal/calculation"
	"github.com/rgehrsitz/twtax/internal/config"
	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what every subcommand needs once flags and settings are resolved
type app struct {
	v        *viper.Viper
	settings *config.Settings
	logger   slogLogger
	now      func() time.Time
}

// engine loads the configured rule document and returns an engine bound to it
func (a *app) engine() (*calculation.Engine, error) {
	rules, err := config.LoadRules(a.settings.RulesPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debugf("loaded rules %s: income year %s, %d brackets", a.settings.RulesPath, rules.IncomeYear, len(rules.Brackets))
	engine := calculation.NewEngine(rules)
	engine.SetLogger(a.logger)
	return engine, nil
}

// evaluate loads a case and evaluates it. An evaluation failure is returned as is
// so nothing downstream renders a partial result.
func (a *app) evaluate(casePath string) (*calculation.Engine, *domain.Case, *domain.TaxResult, error) {
	engine, err := a.engine()
	if err != nil {
		return nil, nil, nil, err
	}
	c, err := config.LoadCase(casePath)
	if err != nil {
		return nil, nil, nil, err
	}
	result, err := engine.Evaluate(c.Input, c.Household)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("evaluation failed: %w", err)
	}
	return engine, c, result, nil
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}
	var configFile string

	root := &cobra.Command{
		Use:           "twtax",
		Short:         "Comprehensive income tax estimator",
		Long:          "Estimate personal comprehensive income tax from a rule table and a household case file, then get tax-saving advice and what-if simulations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.v = config.NewViper(configFile)
			for _, key := range []string{config.KeyRules, config.KeyDebug, config.KeyFormat, config.KeyOutputDir} {
				flagName := key
				if key == config.KeyOutputDir {
					flagName = "output"
				}
				if f := cmd.Flags().Lookup(flagName); f != nil {
					if err := a.v.BindPFlag(key, f); err != nil {
						return err
					}
				}
			}
			settings, err := config.LoadSettings(a.v)
			if err != nil {
				return err
			}
			a.settings = settings
			a.logger = newSlogLogger(cmd.ErrOrStderr(), settings.Debug)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (default: twtax.yaml in the working directory, if present)")
	root.PersistentFlags().String("rules", "", "Rule document (YAML or JSON); default rules/2025.yaml")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")

	root.AddCommand(
		calculateCmd(a),
		adviseCmd(a),
		simulateCmd(a),
		compareCmd(a),
		reportCmd(a),
		validateCmd(a),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "twtax %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
