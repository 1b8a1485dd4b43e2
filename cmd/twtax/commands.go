package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/twtax/internal/advice"
	"github.com/rgehrsitz/twtax/internal/calculation"
	"github.com/rgehrsitz/twtax/internal/compare"
	"github.com/rgehrsitz/twtax/internal/config"
	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/rgehrsitz/twtax/internal/output"
	"github.com/rgehrsitz/twtax/internal/transform"
	"github.com/spf13/cobra"
)

func calculateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [case-file]",
		Short: "Calculate the tax for a case file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, result, err := a.evaluate(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(a.settings.Format) {
			case "json":
				return writeJSON(out, result)
			case "console", "table", "":
				writeResult(out, result, engine.Rules)
				return nil
			default:
				return fmt.Errorf("unknown output format: %s (valid: console, json)", a.settings.Format)
			}
		},
	}
	cmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	return cmd
}

func adviseCmd(a *app) *cobra.Command {
	var checklist bool
	cmd := &cobra.Command{
		Use:   "advise [case-file]",
		Short: "Show tax-saving advice for a case file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, c, result, err := a.evaluate(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "TAX-SAVING ADVICE")
			for _, tip := range advice.Tips(c.Input, c.Input.FilingStatus, result, engine.Rules) {
				fmt.Fprintf(out, "• [%s] %s\n", tip.Severity, tip.Message)
			}
			if checklist {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "CHECKLIST")
				for _, hint := range advice.Checklist(c.Input, c.Household, result, engine.Rules) {
					fmt.Fprintf(out, "• %s\n", hint)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&checklist, "checklist", false, "Also list household-level hints")
	return cmd
}

func simulateCmd(a *app) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "simulate [case-file]",
		Short: "Simulate different donation, insurance, mortgage or rent amounts",
		Long: "Simulate a what-if return. Each --set overrides one amount, bounded by its deductible limit:\n" +
			"  --set donation=50000 --set rent=120000\n" +
			"Fields: donation, insurance, mortgage, rent. Unset fields start from the declared amount held to its limit.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := setSpecs(sets)
			if err != nil {
				return err
			}
			// Every run shows the simulated scenario, even with no overrides
			if len(specs) == 0 {
				specs = []string{"clamp"}
			}
			return a.runCompare(cmd, args[0], compare.CompareOptions{Transforms: specs, CasePath: args[0]})
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Override an amount as field=amount (repeatable)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	return cmd
}

// setSpecs converts field=amount overrides into transform specs
func setSpecs(sets []string) ([]string, error) {
	specs := make([]string, 0, len(sets))
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q, expected field=amount", s)
		}
		field, err := transform.ParseField(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		amount, err := transform.ParseAmount(value)
		if err != nil {
			return nil, err
		}
		t := &transform.SetAmount{Field: field, Amount: amount}
		specs = append(specs, fmt.Sprintf("%s:amount=%d", t.Name(), amount))
	}
	return specs, nil
}

func compareCmd(a *app) *cobra.Command {
	var with string
	var listTemplates bool
	cmd := &cobra.Command{
		Use:   "compare [case-file]",
		Short: "Compare the case against what-if templates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listTemplates {
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
				return nil
			}
			if len(args) != 1 {
				return errors.New("a case file is required")
			}
			templates := transform.ParseTemplateList(with)
			if len(templates) == 0 {
				return errors.New("--with is required to specify templates to compare (or use --list-templates)")
			}
			return a.runCompare(cmd, args[0], compare.CompareOptions{Templates: templates, CasePath: args[0]})
		},
	}
	cmd.Flags().StringVar(&with, "with", "", "Comma-separated list of templates to compare")
	cmd.Flags().BoolVar(&listTemplates, "list-templates", false, "List all available scenario templates")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, casePath string, options compare.CompareOptions) error {
	engine, err := a.engine()
	if err != nil {
		return err
	}
	c, err := config.LoadCase(casePath)
	if err != nil {
		return err
	}

	compSet, err := compare.NewCompareEngine(engine).Compare(context.Background(), c, options)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(a.settings.Format) {
	case "csv":
		s, err := (&compare.CSVFormatter{}).Format(compSet)
		if err != nil {
			return fmt.Errorf("failed to format CSV: %w", err)
		}
		fmt.Fprint(out, s)
	case "json":
		return (&compare.JSONFormatter{Pretty: true}).Write(out, compSet)
	case "table", "console", "":
		fmt.Fprint(out, (&compare.TableFormatter{}).Format(compSet))
	default:
		return fmt.Errorf("unknown output format: %s (valid: table, csv, json)", a.settings.Format)
	}
	return nil
}

func reportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [case-file]",
		Short: "Write a tax report with advice",
		Long: "Write a tax report with advice and the household checklist.\n" +
			"The file is named tax_report_<income year>_<timestamp>.<ext> inside --output; use --output - for stdout.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.GetFormatterByName(a.settings.Format)
			if f == nil {
				return fmt.Errorf("unknown output format: %s (valid: %s)", a.settings.Format, strings.Join(output.AvailableFormats(), ", "))
			}

			engine, c, result, err := a.evaluate(args[0])
			if err != nil {
				return err
			}
			r := output.NewReport(result, advice.Tips(c.Input, c.Input.FilingStatus, result, engine.Rules), a.now())
			r.Checklist = advice.Checklist(c.Input, c.Household, result, engine.Rules)

			if a.settings.OutputDir == "-" {
				data, err := f.Format(r)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			path, err := output.WriteFormatted(f, r, a.settings.OutputDir)
			if err != nil {
				return err
			}
			a.logger.Infof("report %s written", r.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "console", "Report format ("+strings.Join(output.AvailableFormats(), ", ")+")")
	cmd.Flags().StringP("output", "o", ".", "Output directory, or - for stdout")
	return cmd
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [rules-file]",
		Short: "Validate a rule document",
		Long:  "Validate a rule document. Without an argument the configured --rules document is checked.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.settings.RulesPath
			if len(args) == 1 {
				path = args[0]
			}

			rules, err := config.LoadRules(path)
			if err != nil {
				var loadErr *config.RuleLoadError
				if errors.As(err, &loadErr) && loadErr.Err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Rule document %s is invalid: %s\n", loadErr.Source, loadErr.Reason)
					for _, line := range strings.Split(loadErr.Err.Error(), "\n") {
						fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", line)
					}
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rule document %s is valid (income year %s, filed %s, %d brackets)\n",
				path, rules.IncomeYear, rules.FilingYear, len(rules.Brackets))
			return nil
		},
	}
}

func writeResult(w io.Writer, result *domain.TaxResult, rules *domain.RuleSet) {
	fmt.Fprintf(w, "Income year %s (filed %s)\n", result.IncomeYear, result.FilingYear)
	fmt.Fprintln(w, strings.Repeat("-", 52))
	for _, item := range result.LineItems() {
		fmt.Fprintf(w, "%-32s %19s\n", item.Label, domain.FormatMoney(item.Amount))
	}
	fmt.Fprintln(w, strings.Repeat("-", 52))
	rate := calculation.MarginalRate(result.NetIncome, rules.Brackets)
	fmt.Fprintf(w, "Marginal rate: %s%%\n", rate.Shift(2).String())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
