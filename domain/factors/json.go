package factors

import (
	"github.com/tidwall/gjson"
)

// FromJSON reads Decision Factors from a form payload.
// Keys are matched by name and anything else in the payload is ignored.
// Missing keys leave the field empty, which matches no scoring rule.
// Use IsObject first to reject payloads that are not JSON objects.
func FromJSON(raw []byte) Factors {
	doc := gjson.ParseBytes(raw)
	return Factors{
		Country:           Country(doc.Get(string(FieldCountry)).String()),
		Discipline:        Discipline(doc.Get(string(FieldDiscipline)).String()),
		Stage:             Stage(doc.Get(string(FieldStage)).String()),
		Goal:              Goal(doc.Get(string(FieldGoal)).String()),
		TimeConstraint:    int(doc.Get(string(FieldTimeConstraint)).Int()),
		BudgetSensitivity: Budget(doc.Get(string(FieldBudgetSensitivity)).String()),
	}
}

// IsObject reports whether raw is a well-formed JSON object
func IsObject(raw []byte) bool {
	return gjson.ValidBytes(raw) && gjson.ParseBytes(raw).IsObject()
}
