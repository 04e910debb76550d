package scoring

import (
	"math"

	"github.com/montanaflynn/stats"

	"gocoach/domain/factors"
	"gocoach/domain/strategy"
	"gocoach/domain/verdict"
)

// Engine turns Decision Factors into a strategy verdict.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	ruleset Ruleset
}

// NewEngine creates an engine over the reference ruleset
func NewEngine() *Engine {
	return &Engine{ruleset: Reference()}
}

// NewEngineWithRuleset creates an engine over custom tables.
// A non-positive threshold or divisor falls back to the reference value and
// modifiers naming an unknown dimension are dropped.
func NewEngineWithRuleset(r Ruleset) *Engine {
	if r.Threshold <= 0 {
		r.Threshold = TieBreakThreshold
	}
	if r.Divisor <= 0 {
		r.Divisor = VectorDivisor
	}
	kept := make([]strategy.Modifier, 0, len(r.Modifiers))
	for _, m := range r.Modifiers {
		if m.Dimension < 0 || int(m.Dimension) >= strategy.NumDimensions {
			continue
		}
		kept = append(kept, m)
	}
	r.Modifiers = kept
	return &Engine{ruleset: r}
}

// Ruleset returns the tables this engine scores with
func (e *Engine) Ruleset() Ruleset {
	r := e.ruleset
	r.Modifiers = append([]strategy.Modifier(nil), r.Modifiers...)
	return r
}

// Evaluate scores both strategies and applies the tie-break rule.
// Values outside the closed sets match no modifier, so the call always
// produces a verdict.
func (e *Engine) Evaluate(f factors.Factors) strategy.Result {
	conf := e.ruleset.Base.Conference
	journal := e.ruleset.Base.Journal
	applied := make([]strategy.Modifier, 0, 4)

	for _, m := range e.ruleset.Modifiers {
		if !m.Matches(f) {
			continue
		}
		switch m.Strategy {
		case strategy.Conference:
			conf[m.Dimension] += m.Delta
		case strategy.Journal:
			journal[m.Dimension] += m.Delta
		default:
			continue
		}
		m.Values = append([]string(nil), m.Values...)
		applied = append(applied, m)
	}

	confTotal := conf.Total()
	journalTotal := journal.Total()

	return strategy.Result{
		Verdict:         verdict.Decide(confTotal, journalTotal, e.ruleset.Threshold),
		ConferenceTotal: confTotal,
		JournalTotal:    journalTotal,
		Delta:           confTotal - journalTotal,
		DimensionVector: normalize(conf, journal, e.ruleset.Divisor),
		Conference:      conf,
		Journal:         journal,
		Applied:         applied,
	}
}

// normalize computes round((conf+journal)/divisor*100) per dimension, halves rounding up
func normalize(conf, journal strategy.Scores, divisor int) strategy.Scores {
	var out strategy.Scores
	for _, d := range strategy.Dimensions() {
		combined := float64(conf[d]+journal[d]) / float64(divisor) * 100
		rounded, err := stats.Round(combined, 0)
		if err != nil {
			// stats.Round only fails on NaN, which a positive divisor rules out
			rounded = math.Round(combined)
		}
		out[d] = int(rounded)
	}
	return out
}
