package sweep

import (
	"context"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gocoach/domain/core"
	"gocoach/domain/factors"
	"gocoach/domain/strategy"
	"gocoach/domain/verdict"
	"gocoach/internal/errors"
	"gocoach/ports"
)

const batchSize = 256

// Options controls a sweep run
type Options struct {
	Workers  int
	KeepRows bool
	Ruleset  core.RulesetHash
	Logger   *zap.Logger
}

// Row pairs one input record with its result
type Row struct {
	Factors factors.Factors `json:"factors"`
	Result  strategy.Result `json:"result"`
}

// Range is an inclusive integer interval
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// DeltaStats summarises conferenceTotal - journalTotal over the domain
type DeltaStats struct {
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	StdDev float64 `json:"stdDev" yaml:"stdDev"`
}

// Report is the outcome of evaluating the whole input domain
type Report struct {
	ID        core.SweepID            `json:"id" yaml:"id"`
	Ruleset   core.RulesetHash        `json:"ruleset" yaml:"ruleset"`
	Evaluated int                     `json:"evaluated" yaml:"evaluated"`
	Verdicts  map[verdict.Verdict]int `json:"verdicts" yaml:"verdicts"`

	ConferenceTotal Range      `json:"conferenceTotal" yaml:"conferenceTotal"`
	JournalTotal    Range      `json:"journalTotal" yaml:"journalTotal"`
	Delta           DeltaStats `json:"delta" yaml:"delta"`

	// ConferenceReachable is false when no input yields a Conference verdict
	ConferenceReachable bool `json:"conferenceReachable" yaml:"conferenceReachable"`
	// InertFieldsHold is true when stage, time and budget never change a result
	InertFieldsHold bool `json:"inertFieldsHold" yaml:"inertFieldsHold"`

	// Profiles holds one row per (country, discipline, goal)
	Profiles []Row `json:"profiles" yaml:"-"`
	// Rows holds every evaluated record when Options.KeepRows is set
	Rows []Row `json:"rows,omitempty" yaml:"-"`

	Duration time.Duration `json:"duration" yaml:"duration"`
}

type profileKey struct {
	country    factors.Country
	discipline factors.Discipline
	goal       factors.Goal
}

// Run evaluates every in-domain Decision Factors record and aggregates the
// results. Evaluation is spread over Options.Workers goroutines and stops
// early when ctx is canceled.
func Run(ctx context.Context, eval ports.StrategyEvaluator, opts Options) (*Report, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()
	id := core.NewSweepID()
	inputs := factors.Domain()
	results := make([]strategy.Result, len(inputs))

	logger.Info("Starting domain sweep",
		zap.String("sweep_id", id.String()),
		zap.Int("records", len(inputs)),
		zap.Int("workers", opts.Workers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for lo := 0; lo < len(inputs); lo += batchSize {
		lo, hi := lo, min(lo+batchSize, len(inputs))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				results[i] = eval.Evaluate(inputs[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn("Domain sweep interrupted", zap.String("sweep_id", id.String()), zap.Error(err))
		return nil, errors.Canceled(err)
	}

	report := aggregate(inputs, results, opts.KeepRows)
	report.ID = id
	report.Ruleset = opts.Ruleset
	report.Duration = time.Since(start)

	logger.Info("Domain sweep complete",
		zap.String("sweep_id", id.String()),
		zap.Int("evaluated", report.Evaluated),
		zap.Bool("conference_reachable", report.ConferenceReachable),
		zap.Bool("inert_fields_hold", report.InertFieldsHold),
		zap.Duration("duration", report.Duration))

	return report, nil
}

func aggregate(inputs []factors.Factors, results []strategy.Result, keepRows bool) *Report {
	report := &Report{
		Evaluated:       len(results),
		Verdicts:        make(map[verdict.Verdict]int, 3),
		InertFieldsHold: true,
	}
	for _, v := range verdict.All() {
		report.Verdicts[v] = 0
	}
	if len(results) == 0 {
		return report
	}

	report.ConferenceTotal = Range{Min: results[0].ConferenceTotal, Max: results[0].ConferenceTotal}
	report.JournalTotal = Range{Min: results[0].JournalTotal, Max: results[0].JournalTotal}

	deltas := make(stats.Float64Data, 0, len(results))
	firstByProfile := make(map[profileKey]int)
	if keepRows {
		report.Rows = make([]Row, 0, len(results))
	}

	for i, res := range results {
		f := inputs[i]
		report.Verdicts[res.Verdict]++
		report.ConferenceTotal.extend(res.ConferenceTotal)
		report.JournalTotal.extend(res.JournalTotal)
		deltas = append(deltas, float64(res.Delta))

		key := profileKey{country: f.Country, discipline: f.Discipline, goal: f.Goal}
		if first, ok := firstByProfile[key]; !ok {
			firstByProfile[key] = i
			report.Profiles = append(report.Profiles, Row{Factors: f, Result: res})
		} else if report.InertFieldsHold && !cmp.Equal(results[first], res) {
			report.InertFieldsHold = false
		}

		if keepRows {
			report.Rows = append(report.Rows, Row{Factors: f, Result: res})
		}
	}

	report.ConferenceReachable = report.Verdicts[verdict.Conference] > 0
	report.Delta = summarize(deltas)
	return report
}

func (r *Range) extend(v int) {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
}

func summarize(data stats.Float64Data) DeltaStats {
	var s DeltaStats
	s.Min, _ = data.Min()
	s.Max, _ = data.Max()
	s.Mean, _ = data.Mean()
	s.Median, _ = data.Median()
	s.StdDev, _ = data.StandardDeviation()
	return s
}
