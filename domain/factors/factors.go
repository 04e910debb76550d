package factors

import (
	"fmt"
	"strconv"
)

// Country represents the regional publication norms a researcher works under
type Country string

const (
	CountryIndia Country = "India"
	CountryEUUK  Country = "EU/UK"
	CountryUS    Country = "United States"
)

// Discipline represents the researcher's academic domain
type Discipline string

const (
	DisciplineCSEngineering     Discipline = "CS/Engineering"
	DisciplineLifeSciences      Discipline = "Life Sciences"
	DisciplineManagement        Discipline = "Management"
	DisciplineHumanities        Discipline = "Humanities"
	DisciplineInterdisciplinary Discipline = "Interdisciplinary"
)

// Stage represents the position in the research lifecycle
type Stage string

const (
	StageEarly Stage = "early"
	StageMid   Stage = "mid"
	StageFinal Stage = "final"
)

// Goal represents what the researcher wants from the publication
type Goal string

const (
	GoalDegree     Goal = "degree"
	GoalFast       Goal = "fast"
	GoalImpact     Goal = "impact"
	GoalSupervisor Goal = "supervisor"
	GoalCareer     Goal = "career"
)

// Budget represents sensitivity to publication fees and travel cost
type Budget string

const (
	BudgetLow    Budget = "low"
	BudgetMedium Budget = "medium"
	BudgetHigh   Budget = "high"
)

// Bounds of TimeConstraint in months
const (
	MinMonths = 1
	MaxMonths = 24
)

// Factors is the researcher context a strategy recommendation is computed from.
// Values are expected to come from closed form controls; nothing here rejects
// an unknown value.
type Factors struct {
	Country           Country    `json:"country" yaml:"country"`
	Discipline        Discipline `json:"discipline" yaml:"discipline"`
	Stage             Stage      `json:"stage" yaml:"stage"`
	Goal              Goal       `json:"goal" yaml:"goal"`
	TimeConstraint    int        `json:"timeConstraint" yaml:"timeConstraint"`
	BudgetSensitivity Budget     `json:"budgetSensitivity" yaml:"budgetSensitivity"`
}

// Defaults returns the values the decision form starts with
func Defaults() Factors {
	return Factors{
		Country:           CountryEUUK,
		Discipline:        DisciplineCSEngineering,
		Stage:             StageMid,
		Goal:              GoalDegree,
		TimeConstraint:    6,
		BudgetSensitivity: BudgetLow,
	}
}

// Field names one Decision Factors field
type Field string

const (
	FieldCountry           Field = "country"
	FieldDiscipline        Field = "discipline"
	FieldStage             Field = "stage"
	FieldGoal              Field = "goal"
	FieldTimeConstraint    Field = "timeConstraint"
	FieldBudgetSensitivity Field = "budgetSensitivity"
)

// Fields returns every field in form order
func Fields() []Field {
	return []Field{
		FieldCountry,
		FieldDiscipline,
		FieldStage,
		FieldGoal,
		FieldTimeConstraint,
		FieldBudgetSensitivity,
	}
}

// Value returns the string form of a field so rules can match on it as data.
// Unknown fields yield an empty string.
func (f Factors) Value(field Field) string {
	switch field {
	case FieldCountry:
		return string(f.Country)
	case FieldDiscipline:
		return string(f.Discipline)
	case FieldStage:
		return string(f.Stage)
	case FieldGoal:
		return string(f.Goal)
	case FieldTimeConstraint:
		return strconv.Itoa(f.TimeConstraint)
	case FieldBudgetSensitivity:
		return string(f.BudgetSensitivity)
	default:
		return ""
	}
}

// Unmapped lists the fields whose values fall outside their closed sets
func (f Factors) Unmapped() []Field {
	var out []Field
	if !contains(Countries(), f.Country) {
		out = append(out, FieldCountry)
	}
	if !contains(Disciplines(), f.Discipline) {
		out = append(out, FieldDiscipline)
	}
	if !contains(Stages(), f.Stage) {
		out = append(out, FieldStage)
	}
	if !contains(Goals(), f.Goal) {
		out = append(out, FieldGoal)
	}
	if f.TimeConstraint < MinMonths || f.TimeConstraint > MaxMonths {
		out = append(out, FieldTimeConstraint)
	}
	if !contains(Budgets(), f.BudgetSensitivity) {
		out = append(out, FieldBudgetSensitivity)
	}
	return out
}

// Valid reports whether every field is inside its closed set
func (f Factors) Valid() bool {
	return len(f.Unmapped()) == 0
}

func (f Factors) String() string {
	return fmt.Sprintf("country=%q discipline=%q stage=%s goal=%s time=%dmo budget=%s",
		f.Country, f.Discipline, f.Stage, f.Goal, f.TimeConstraint, f.BudgetSensitivity)
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
