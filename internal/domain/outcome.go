package domain

// Outcome reports what a store mutation did. Missing-trip and unknown-id
// mutations are safe no-ops; explicit variants let callers and tests tell
// the cases apart instead of inferring them from unchanged state.
type Outcome int

const (
	// OutcomeApplied means the mutation changed state and was persisted.
	OutcomeApplied Outcome = iota
	// OutcomeNoTrip means no trip exists; the mutation was skipped.
	OutcomeNoTrip
	// OutcomeNotFound means the referenced item id does not exist; the
	// mutation was skipped.
	OutcomeNotFound
)

// String implements fmt.Stringer for log lines and test failure messages.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeNoTrip:
		return "no-trip"
	case OutcomeNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}
