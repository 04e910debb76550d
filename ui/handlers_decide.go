package ui

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"gocoach/domain/factors"
	"gocoach/domain/strategy"
	"gocoach/internal/guidance"
)

type dimensionRow struct {
	Name       string
	Conference int
	Journal    int
	Combined   int
}

type decidePage struct {
	Options       factors.OptionSet
	Factors       factors.Factors
	Result        strategy.Result
	Rows          []dimensionRow
	Unmapped      []factors.Field
	Justification template.HTML
	Questions     []string
}

// handleDecide renders the decision form with the recommendation for the
// factors in the query string, or for the defaults when none are given.
func (a *App) handleDecide(w http.ResponseWriter, r *http.Request) {
	f := factorsFromQuery(r.URL.Query())
	res := a.evaluator.Evaluate(f)

	rows := make([]dimensionRow, 0, strategy.NumDimensions)
	for _, d := range strategy.Dimensions() {
		rows = append(rows, dimensionRow{
			Name:       d.String(),
			Conference: res.Conference[d],
			Journal:    res.Journal[d],
			Combined:   res.DimensionVector[d],
		})
	}

	a.renderTemplate(w, "decide.html", decidePage{
		Options:       factors.Options(),
		Factors:       f,
		Result:        res,
		Rows:          rows,
		Unmapped:      f.Unmapped(),
		Justification: guidance.RenderHTML(guidance.Justification(res.Verdict)),
		Questions:     guidance.SupervisorQuestions(),
	})
}

// factorsFromQuery starts from the defaults and overrides any field present
func factorsFromQuery(q url.Values) factors.Factors {
	f := factors.Defaults()
	if q.Has(string(factors.FieldCountry)) {
		f.Country = factors.Country(q.Get(string(factors.FieldCountry)))
	}
	if q.Has(string(factors.FieldDiscipline)) {
		f.Discipline = factors.Discipline(q.Get(string(factors.FieldDiscipline)))
	}
	if q.Has(string(factors.FieldStage)) {
		f.Stage = factors.Stage(q.Get(string(factors.FieldStage)))
	}
	if q.Has(string(factors.FieldGoal)) {
		f.Goal = factors.Goal(q.Get(string(factors.FieldGoal)))
	}
	if q.Has(string(factors.FieldTimeConstraint)) {
		months, _ := strconv.Atoi(q.Get(string(factors.FieldTimeConstraint)))
		f.TimeConstraint = months
	}
	if q.Has(string(factors.FieldBudgetSensitivity)) {
		f.BudgetSensitivity = factors.Budget(q.Get(string(factors.FieldBudgetSensitivity)))
	}
	return f
}
