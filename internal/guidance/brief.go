package guidance

import (
	"fmt"
	"strings"

	"gocoach/domain/factors"
	"gocoach/domain/strategy"
)

// Brief renders an evaluation as a markdown report: the verdict, a score
// table per dimension, the rules that fired and the supervisor checklist.
func Brief(f factors.Factors, res strategy.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Publication strategy: %s\n\n", res.Verdict.Label())
	fmt.Fprintf(&b, "%s\n\n", Justification(res.Verdict))

	b.WriteString("## Context\n\n")
	for _, field := range factors.Fields() {
		fmt.Fprintf(&b, "- %s: %s\n", field, f.Value(field))
	}

	b.WriteString("\n## Scores\n\n")
	b.WriteString("| Dimension | Conference | Journal | Combined |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, d := range strategy.Dimensions() {
		fmt.Fprintf(&b, "| %s | %d | %d | %d |\n", d, res.Conference[d], res.Journal[d], res.DimensionVector[d])
	}
	fmt.Fprintf(&b, "| **total** | **%d** | **%d** | |\n\n", res.ConferenceTotal, res.JournalTotal)
	fmt.Fprintf(&b, "Margin: %+d\n\n", res.Delta)

	b.WriteString("## Adjustments applied\n\n")
	if len(res.Applied) == 0 {
		b.WriteString("None; base scores only.\n")
	}
	for _, m := range res.Applied {
		fmt.Fprintf(&b, "- %s\n", m)
	}

	b.WriteString("\n## Confirm with your supervisor\n\n")
	for i, q := range supervisorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}

	return b.String()
}
