package guidance

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"gocoach/domain/verdict"
)

var justifications = map[verdict.Verdict]string{
	verdict.Conference: `**Submit to a conference.**

Your context rewards speed and visibility. A conference paper gets your work
reviewed and presented within months, and in your field proceedings carry
real weight. Plan the camera-ready and travel budget early.`,

	verdict.Journal: `**Submit to a journal.**

Your context rewards depth and formal recognition. A journal article carries
more weight for degree requirements and evaluation committees, and the
longer review cycle gives room for a complete treatment of the work. Start
with a shortlist of indexed journals and check their typical turnaround.`,

	verdict.Both: `**Consider both routes.**

Neither strategy clearly dominates. A common path is to present an early
version at a conference for feedback, then extend it into a journal
article. Check the journal's policy on prior conference publication before
you submit.`,
}

var supervisorQuestions = []string{
	"Does the degree regulation require a journal publication, or do peer-reviewed proceedings count?",
	"Which venues does the department or evaluation committee recognise?",
	"Is there funding for conference registration and travel?",
	"Can a conference paper be extended into a journal article later without conflict?",
	"What is a realistic submission date given the current state of the results?",
}

// Justification returns the markdown explanation shown for a verdict.
// Unknown verdicts get an empty string.
func Justification(v verdict.Verdict) string {
	return justifications[v]
}

// SupervisorQuestions returns the fixed list of questions to confirm with a supervisor
func SupervisorQuestions() []string {
	return append([]string(nil), supervisorQuestions...)
}

// RenderHTML converts markdown to HTML. Raw HTML in the input is dropped.
func RenderHTML(md string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})
	return template.HTML(markdown.ToHTML([]byte(md), p, r))
}
