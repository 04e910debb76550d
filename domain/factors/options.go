package factors

// Countries returns the closed set of country tags in display order
func Countries() []Country {
	return []Country{CountryIndia, CountryEUUK, CountryUS}
}

// Disciplines returns the closed set of discipline tags in display order
func Disciplines() []Discipline {
	return []Discipline{
		DisciplineCSEngineering,
		DisciplineLifeSciences,
		DisciplineManagement,
		DisciplineHumanities,
		DisciplineInterdisciplinary,
	}
}

// Stages returns the lifecycle stages in order
func Stages() []Stage {
	return []Stage{StageEarly, StageMid, StageFinal}
}

// Goals returns the closed set of goals in display order
func Goals() []Goal {
	return []Goal{GoalDegree, GoalFast, GoalImpact, GoalSupervisor, GoalCareer}
}

// Budgets returns the budget sensitivity levels from least to most sensitive
func Budgets() []Budget {
	return []Budget{BudgetLow, BudgetMedium, BudgetHigh}
}

// OptionSet describes every closed set the decision form offers
type OptionSet struct {
	Countries   []Country    `json:"countries" yaml:"countries"`
	Disciplines []Discipline `json:"disciplines" yaml:"disciplines"`
	Stages      []Stage      `json:"stages" yaml:"stages"`
	Goals       []Goal       `json:"goals" yaml:"goals"`
	MinMonths   int          `json:"minMonths" yaml:"minMonths"`
	MaxMonths   int          `json:"maxMonths" yaml:"maxMonths"`
	Budgets     []Budget     `json:"budgets" yaml:"budgets"`
	Defaults    Factors      `json:"defaults" yaml:"defaults"`
}

// Options returns the form options together with the default selection
func Options() OptionSet {
	return OptionSet{
		Countries:   Countries(),
		Disciplines: Disciplines(),
		Stages:      Stages(),
		Goals:       Goals(),
		MinMonths:   MinMonths,
		MaxMonths:   MaxMonths,
		Budgets:     Budgets(),
		Defaults:    Defaults(),
	}
}

// DomainSize is the number of distinct in-domain Factors records
func DomainSize() int {
	return len(Countries()) * len(Disciplines()) * len(Stages()) * len(Goals()) *
		(MaxMonths - MinMonths + 1) * len(Budgets())
}

// Domain enumerates every in-domain Factors record.
// Order is country, discipline, goal, stage, months, budget so records that
// differ only in inert fields are adjacent.
func Domain() []Factors {
	out := make([]Factors, 0, DomainSize())
	for _, c := range Countries() {
		for _, d := range Disciplines() {
			for _, g := range Goals() {
				for _, s := range Stages() {
					for m := MinMonths; m <= MaxMonths; m++ {
						for _, b := range Budgets() {
							out = append(out, Factors{
								Country:           c,
								Discipline:        d,
								Stage:             s,
								Goal:              g,
								TimeConstraint:    m,
								BudgetSensitivity: b,
							})
						}
					}
				}
			}
		}
	}
	return out
}
