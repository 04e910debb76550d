package guidance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gocoach/domain/factors"
	"gocoach/domain/verdict"
	"gocoach/internal/scoring"
)

func TestEveryVerdictHasJustification(t *testing.T) {
	for _, v := range verdict.All() {
		assert.NotEmpty(t, Justification(v), "missing justification for %s", v)
	}
	assert.Empty(t, Justification(verdict.Verdict("abstain")))
}

func TestSupervisorQuestionsReturnsCopy(t *testing.T) {
	q := SupervisorQuestions()
	assert.NotEmpty(t, q)
	q[0] = "changed"
	assert.NotEqual(t, "changed", SupervisorQuestions()[0])
}

func TestRenderHTML(t *testing.T) {
	out := string(RenderHTML(Justification(verdict.Journal)))
	assert.Contains(t, out, "<strong>Submit to a journal.</strong>")
	assert.Contains(t, out, "<p>")
}

func TestRenderHTMLDropsRawHTML(t *testing.T) {
	out := string(RenderHTML("hello\n\n<script>alert(1)</script>\n"))
	assert.Contains(t, out, "hello")
	assert.NotContains(t, out, "<script>")
}

func TestBrief(t *testing.T) {
	f := factors.Defaults()
	res := scoring.NewEngine().Evaluate(f)

	md := Brief(f, res)

	assert.True(t, strings.HasPrefix(md, "# Publication strategy: Journal"))
	assert.Contains(t, md, "| weight | 5 | 7 | 75 |")
	assert.Contains(t, md, "| **total** | **17** | **22** | |")
	assert.Contains(t, md, "Margin: -5")
	assert.Contains(t, md, "- goal in [degree] -> journal.weight +2")
	assert.Contains(t, md, "- country: EU/UK")
	assert.Contains(t, md, "1. "+SupervisorQuestions()[0])
}

func TestBriefWithoutAdjustments(t *testing.T) {
	f := factors.Factors{}
	md := Brief(f, scoring.NewEngine().Evaluate(f))
	assert.Contains(t, md, "None; base scores only.")
}
