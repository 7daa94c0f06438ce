package gate

// Outcome is the verdict of a single stage.
type Outcome int

const (
	// Next lets the following stage decide.
	Next Outcome = iota
	// Forward passes the request to the handlers, skipping remaining stages.
	Forward
	// Reject stops the request.
	Reject
)

func (o Outcome) String() string {
	switch o {
	case Next:
		return "next"
	case Forward:
		return "forward"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// Decision is the result of a stage or of a whole pipeline run.
// Reason is set only for [Reject].
type Decision struct {
	Outcome Outcome
	Reason  error
}

// Continue returns a [Next] decision.
func Continue() Decision {
	return Decision{Outcome: Next}
}

// Allow returns a [Forward] decision.
func Allow() Decision {
	return Decision{Outcome: Forward}
}

// Deny returns a [Reject] decision carrying reason.
func Deny(reason error) Decision {
	return Decision{Outcome: Reject, Reason: reason}
}
