package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"gocoach/adapters/excel"
	"gocoach/domain/factors"
	"gocoach/domain/strategy"
	"gocoach/domain/verdict"
	"gocoach/internal/errors"
	"gocoach/internal/guidance"
	"gocoach/internal/scoring"
	"gocoach/internal/sweep"
)

func newDecideCmd(env *cliEnv) *cobra.Command {
	f := factors.Defaults()
	var country, discipline, stage, goal, budget string
	var file, format string

	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Recommend conference, journal or both for one researcher",
		Long: `Score conference and journal submission for one researcher context.

Factors come from flags (defaults match the web form) or from a JSON file
with the same keys the web form sends.

Example: gocoach-cli decide --country India --discipline Humanities --goal fast --format markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				raw, err := os.ReadFile(file)
				if err != nil {
					return errors.Wrapf(err, "failed to read %s", file)
				}
				if !factors.IsObject(raw) {
					return errors.InvalidInput(file + " must contain a JSON object")
				}
				f = factors.FromJSON(raw)
			} else {
				f.Country = factors.Country(country)
				f.Discipline = factors.Discipline(discipline)
				f.Stage = factors.Stage(stage)
				f.Goal = factors.Goal(goal)
				f.BudgetSensitivity = factors.Budget(budget)
			}

			if unmapped := f.Unmapped(); len(unmapped) > 0 {
				env.logger.Warn("Factors outside closed sets match no rule", zap.Any("unmapped", unmapped))
			}

			res := scoring.NewEngine().Evaluate(f)
			return printDecision(cmd.OutOrStdout(), format, f, res)
		},
	}

	d := factors.Defaults()
	cmd.Flags().StringVar(&country, "country", string(d.Country), "Country norms: "+joinStrings(factors.Countries()))
	cmd.Flags().StringVar(&discipline, "discipline", string(d.Discipline), "Discipline: "+joinStrings(factors.Disciplines()))
	cmd.Flags().StringVar(&stage, "stage", string(d.Stage), "Research stage: "+joinStrings(factors.Stages()))
	cmd.Flags().StringVar(&goal, "goal", string(d.Goal), "Goal: "+joinStrings(factors.Goals()))
	cmd.Flags().IntVar(&f.TimeConstraint, "months", d.TimeConstraint, fmt.Sprintf("Months available (%d-%d)", factors.MinMonths, factors.MaxMonths))
	cmd.Flags().StringVar(&budget, "budget", string(d.BudgetSensitivity), "Budget sensitivity: "+joinStrings(factors.Budgets()))
	cmd.Flags().StringVar(&file, "file", "", "Read factors from a JSON file instead of flags")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text|json|markdown")

	for _, name := range []string{"country", "discipline", "stage", "goal", "months", "budget"} {
		cmd.MarkFlagsMutuallyExclusive("file", name)
	}
	return cmd
}

func newBatchCmd(env *cliEnv) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "batch [cohort-file]",
		Short: "Decide for every researcher in a CSV or Excel cohort sheet",
		Long: `Read one researcher per row (columns: name, country, discipline, stage,
goal, timeConstraint, budgetSensitivity) and write the recommendations to an
Excel workbook.

Example: gocoach-cli batch cohort.csv --out decisions.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := excel.NewDataReader(args[0], env.logger).ReadFactors()
			if err != nil {
				return errors.Wrap(err, "failed to read cohort")
			}

			engine := scoring.NewMemo(scoring.NewEngine())
			decisions := make([]excel.Decision, 0, len(records))
			counts := make(map[verdict.Verdict]int)
			for _, rec := range records {
				res := engine.Evaluate(rec.Factors)
				counts[res.Verdict]++
				decisions = append(decisions, excel.Decision{
					Record:   rec,
					Result:   res,
					Unmapped: rec.Factors.Unmapped(),
				})
			}

			if err := writeFile(out, func(w io.Writer) error { return excel.WriteDecisions(w, decisions) }); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "📊 %d researchers decided -> %s\n", len(decisions), out)
			for _, v := range verdict.All() {
				fmt.Fprintf(w, "   %-10s %d\n", v.Label(), counts[v])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "decisions.xlsx", "Excel workbook to write")
	return cmd
}

func newSweepCmd(env *cliEnv) *cobra.Command {
	var xlsxPath, format string
	var workers int
	var keepRows bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate every possible input and report verdict coverage",
		Long: `Evaluate the full closed input domain and summarise totals, margins and
verdict coverage. Flags when the Conference verdict is unreachable and
whether stage, time and budget still have no effect on the outcome.

With --rows every evaluated input is kept: the JSON report lists them under
"rows" and the workbook gets a Rows sheet.

Example: gocoach-cli sweep --xlsx sweep.xlsx --rows`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return errors.InvalidInput("unknown format " + format + " (use text or json)")
			}
			if workers <= 0 {
				workers = env.cfg.Sweep.Workers
			}
			ruleset := scoring.Reference()
			report, err := sweep.Run(cmd.Context(), scoring.NewEngineWithRuleset(ruleset), sweep.Options{
				Workers:  workers,
				KeepRows: keepRows,
				Ruleset:  ruleset.Fingerprint(),
				Logger:   env.logger,
			})
			if err != nil {
				return err
			}

			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return errors.ExportFailed("json", err)
				}
			} else {
				printSweep(cmd.OutOrStdout(), report)
			}

			if xlsxPath != "" {
				if err := writeFile(xlsxPath, func(w io.Writer) error { return excel.WriteSweep(w, report) }); err != nil {
					return err
				}
				env.logger.Info("Sweep workbook written", zap.String("path", xlsxPath), zap.Int("rows", len(report.Rows)))
				if format == "text" {
					fmt.Fprintf(cmd.OutOrStdout(), "\n💾 Sweep written to: %s\n", xlsxPath)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the report to an Excel workbook")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent workers (default from SWEEP_WORKERS)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text|json")
	cmd.Flags().BoolVar(&keepRows, "rows", false, "Keep every evaluated input in the JSON report and workbook")
	return cmd
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the base score table and modifier rules as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ruleset := scoring.Reference()
			doc := struct {
				Fingerprint     string `yaml:"fingerprint"`
				scoring.Ruleset `yaml:",inline"`
			}{ruleset.Fingerprint().String(), ruleset}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return errors.ExportFailed("yaml", err)
			}
			return enc.Close()
		},
	}
}

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the accepted value for every factor as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(factors.Options()); err != nil {
				return errors.ExportFailed("yaml", err)
			}
			return enc.Close()
		},
	}
}

func printDecision(w io.Writer, format string, f factors.Factors, res strategy.Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Factors factors.Factors `json:"factors"`
			strategy.Result
		}{f, res})
	case "markdown":
		_, err := io.WriteString(w, guidance.Brief(f, res))
		return err
	case "text":
		fmt.Fprintf(w, "🎯 Recommendation: %s\n", res.Verdict.Label())
		fmt.Fprintf(w, "Conference total: %d\n", res.ConferenceTotal)
		fmt.Fprintf(w, "Journal total:    %d\n", res.JournalTotal)
		fmt.Fprintf(w, "Margin:           %+d (threshold %d)\n", res.Delta, scoring.TieBreakThreshold)
		fmt.Fprintf(w, "\n%-8s %10s %8s %9s\n", "", "conference", "journal", "combined")
		for _, d := range strategy.Dimensions() {
			fmt.Fprintf(w, "%-8s %10d %8d %9d\n", d, res.Conference[d], res.Journal[d], res.DimensionVector[d])
		}
		if unmapped := f.Unmapped(); len(unmapped) > 0 {
			fmt.Fprintf(w, "\n⚠️  Ignored values for: %v\n", unmapped)
		}
		return nil
	default:
		return errors.InvalidInput("unknown format " + format + " (use text, json or markdown)")
	}
}

func printSweep(w io.Writer, r *sweep.Report) {
	fmt.Fprintf(w, "🔬 DOMAIN SWEEP %s\n", r.ID)
	fmt.Fprintf(w, "Ruleset:    %s\n", r.Ruleset.Short())
	fmt.Fprintf(w, "Evaluated:  %d inputs in %v\n", r.Evaluated, r.Duration)
	for _, v := range verdict.All() {
		fmt.Fprintf(w, "  %-10s %d\n", v.Label(), r.Verdicts[v])
	}
	fmt.Fprintf(w, "Conference total: %d..%d\n", r.ConferenceTotal.Min, r.ConferenceTotal.Max)
	fmt.Fprintf(w, "Journal total:    %d..%d\n", r.JournalTotal.Min, r.JournalTotal.Max)
	fmt.Fprintf(w, "Margin:           %.0f..%.0f (mean %.2f, sd %.2f)\n", r.Delta.Min, r.Delta.Max, r.Delta.Mean, r.Delta.StdDev)

	if r.ConferenceReachable {
		fmt.Fprintf(w, "✅ Conference verdict is reachable\n")
	} else {
		fmt.Fprintf(w, "⚠️  Conference verdict is unreachable with these rules\n")
	}
	if r.InertFieldsHold {
		fmt.Fprintf(w, "⚠️  Stage, time and budget never change the outcome\n")
	} else {
		fmt.Fprintf(w, "✅ Stage, time or budget affect the outcome\n")
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}
	return nil
}

func joinStrings[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
