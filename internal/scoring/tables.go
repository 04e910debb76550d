package scoring

import (
	"encoding/json"

	"gocoach/domain/core"
	"gocoach/domain/factors"
	"gocoach/domain/strategy"
)

const (
	// TieBreakThreshold is the smallest total margin that picks one strategy outright
	TieBreakThreshold = 3

	// VectorDivisor scales a combined dimension score onto 0-100
	VectorDivisor = 16
)

var baseScores = strategy.Table{
	//                     speed depth weight risk cost
	Conference: strategy.Scores{5, 2, 2, 3, 2},
	Journal:    strategy.Scores{2, 5, 5, 4, 4},
}

var rules = []strategy.Modifier{
	{Field: factors.FieldCountry, Values: []string{string(factors.CountryIndia)}, Strategy: strategy.Journal, Dimension: strategy.Weight, Delta: 2},
	{Field: factors.FieldCountry, Values: []string{string(factors.CountryUS)}, Strategy: strategy.Journal, Dimension: strategy.Weight, Delta: -1},
	{Field: factors.FieldDiscipline, Values: []string{string(factors.DisciplineCSEngineering)}, Strategy: strategy.Conference, Dimension: strategy.Weight, Delta: 2},
	{Field: factors.FieldDiscipline, Values: []string{string(factors.DisciplineHumanities), string(factors.DisciplineManagement)}, Strategy: strategy.Journal, Dimension: strategy.Depth, Delta: 1},
	{Field: factors.FieldGoal, Values: []string{string(factors.GoalDegree)}, Strategy: strategy.Conference, Dimension: strategy.Weight, Delta: 1},
	{Field: factors.FieldGoal, Values: []string{string(factors.GoalDegree)}, Strategy: strategy.Journal, Dimension: strategy.Weight, Delta: 2},
	{Field: factors.FieldGoal, Values: []string{string(factors.GoalFast)}, Strategy: strategy.Conference, Dimension: strategy.Speed, Delta: 3},
	{Field: factors.FieldGoal, Values: []string{string(factors.GoalFast)}, Strategy: strategy.Journal, Dimension: strategy.Speed, Delta: -1},
}

// BaseScores returns the context-free starting scores
func BaseScores() strategy.Table {
	return baseScores
}

// Rules returns a copy of the reference modifier rule set
func Rules() []strategy.Modifier {
	out := make([]strategy.Modifier, len(rules))
	for i, m := range rules {
		m.Values = append([]string(nil), m.Values...)
		out[i] = m
	}
	return out
}

// Ruleset bundles the tables an engine scores with
type Ruleset struct {
	Base      strategy.Table      `json:"base" yaml:"base"`
	Modifiers []strategy.Modifier `json:"modifiers" yaml:"modifiers"`
	Threshold int                 `json:"threshold" yaml:"threshold"`
	Divisor   int                 `json:"divisor" yaml:"divisor"`
}

// Reference returns the ruleset the product ships with
func Reference() Ruleset {
	return Ruleset{
		Base:      BaseScores(),
		Modifiers: Rules(),
		Threshold: TieBreakThreshold,
		Divisor:   VectorDivisor,
	}
}

// Fingerprint identifies the ruleset content so exported reports can be
// traced back to the tables that produced them.
func (r Ruleset) Fingerprint() core.RulesetHash {
	data, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return core.NewRulesetHash(data)
}

// Bounds returns the lowest and highest total each strategy can reach,
// assuming every negative and every positive rule could fire together.
func (r Ruleset) Bounds() (confMin, confMax, journalMin, journalMax int) {
	lo := make(map[strategy.Strategy]int, 2)
	hi := make(map[strategy.Strategy]int, 2)
	for _, s := range strategy.Strategies() {
		lo[s] = r.Base.For(s).Total()
		hi[s] = lo[s]
	}
	for _, m := range r.Modifiers {
		if m.Delta > 0 {
			hi[m.Strategy] += m.Delta
		} else {
			lo[m.Strategy] += m.Delta
		}
	}
	return lo[strategy.Conference], hi[strategy.Conference], lo[strategy.Journal], hi[strategy.Journal]
}
