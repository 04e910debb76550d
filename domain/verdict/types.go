package verdict

// Verdict represents the recommended publication strategy
type Verdict string

const (
	Conference Verdict = "conference"
	Journal    Verdict = "journal"
	Both       Verdict = "both"
)

// All returns every verdict in display order
func All() []Verdict {
	return []Verdict{Conference, Journal, Both}
}

// Label returns the human-readable name shown to researchers
func (v Verdict) Label() string {
	switch v {
	case Conference:
		return "Conference"
	case Journal:
		return "Journal"
	case Both:
		return "Both"
	default:
		return string(v)
	}
}

// Decide applies the tie-break rule to two aggregate totals.
// A margin of at least threshold picks the leading strategy outright,
// anything closer recommends both.
func Decide(conferenceTotal, journalTotal, threshold int) Verdict {
	delta := conferenceTotal - journalTotal
	if delta >= threshold {
		return Conference
	}
	if -delta >= threshold {
		return Journal
	}
	return Both
}
