package session

// State is the lifecycle phase of one quiz attempt.
//
//	NotStarted → InProgress → Submitting → Reviewing
//
// Submitting is entered either by an explicit submission or by the
// countdown expiring; Reviewing loops back to NotStarted on retake.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateSubmitting
	StateReviewing
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateSubmitting:
		return "submitting"
	case StateReviewing:
		return "reviewing"
	}
	return "unknown"
}
