package strategy

import (
	"fmt"

	"gocoach/domain/factors"
	"gocoach/domain/verdict"
)

// Strategy is one of the two publication routes being compared
type Strategy string

const (
	Conference Strategy = "conference"
	Journal    Strategy = "journal"
)

// Strategies returns both strategies in display order
func Strategies() []Strategy {
	return []Strategy{Conference, Journal}
}

// Dimension is one of the five fixed evaluation axes
type Dimension int

const (
	Speed Dimension = iota
	Depth
	Weight // academic or degree significance
	Risk   // review and rejection risk
	Cost

	NumDimensions = 5
)

var dimensionNames = [NumDimensions]string{"speed", "depth", "weight", "risk", "cost"}

// Dimensions returns every dimension in its fixed order
func Dimensions() []Dimension {
	return []Dimension{Speed, Depth, Weight, Risk, Cost}
}

func (d Dimension) String() string {
	if d < 0 || int(d) >= NumDimensions {
		return fmt.Sprintf("dimension(%d)", int(d))
	}
	return dimensionNames[d]
}

// MarshalText encodes the dimension by name
func (d Dimension) MarshalText() ([]byte, error) {
	if d < 0 || int(d) >= NumDimensions {
		return nil, fmt.Errorf("unknown dimension %d", int(d))
	}
	return []byte(dimensionNames[d]), nil
}

// UnmarshalText decodes a dimension name
func (d *Dimension) UnmarshalText(text []byte) error {
	for i, name := range dimensionNames {
		if name == string(text) {
			*d = Dimension(i)
			return nil
		}
	}
	return fmt.Errorf("unknown dimension %q", string(text))
}

// Scores holds one integer per dimension, indexed by Dimension
type Scores [NumDimensions]int

// Total sums the scores across all dimensions
func (s Scores) Total() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// Table holds the per-dimension scores of both strategies
type Table struct {
	Conference Scores `json:"conference" yaml:"conference"`
	Journal    Scores `json:"journal" yaml:"journal"`
}

// For returns the scores of one strategy
func (t Table) For(s Strategy) Scores {
	if s == Conference {
		return t.Conference
	}
	return t.Journal
}

// Modifier is a declarative scoring rule: when Field holds one of Values,
// Delta is added to Strategy's score on Dimension.
type Modifier struct {
	Field     factors.Field `json:"field" yaml:"field"`
	Values    []string      `json:"values" yaml:"values,flow"`
	Strategy  Strategy      `json:"strategy" yaml:"strategy"`
	Dimension Dimension     `json:"dimension" yaml:"dimension"`
	Delta     int           `json:"delta" yaml:"delta"`
}

// Matches reports whether the rule fires for f
func (m Modifier) Matches(f factors.Factors) bool {
	v := f.Value(m.Field)
	for _, want := range m.Values {
		if v == want {
			return true
		}
	}
	return false
}

func (m Modifier) String() string {
	return fmt.Sprintf("%s in %v -> %s.%s %+d", m.Field, m.Values, m.Strategy, m.Dimension, m.Delta)
}

// Result is the outcome of one evaluation.
// DimensionVector is the combined magnitude of both strategies per axis on a
// 0-100 scale; it does not favour either strategy.
type Result struct {
	Verdict         verdict.Verdict `json:"verdict"`
	ConferenceTotal int             `json:"conferenceTotal"`
	JournalTotal    int             `json:"journalTotal"`
	Delta           int             `json:"delta"`
	DimensionVector Scores          `json:"dimensionVector"`
	Conference      Scores          `json:"conferenceScores"`
	Journal         Scores          `json:"journalScores"`
	Applied         []Modifier      `json:"appliedModifiers"`
}
