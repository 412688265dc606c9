package behave

// Status is the result of evaluating a node. It is a closed enumeration;
// ordering between values carries no meaning, only membership tests are used.
type Status int

const (
	// StatusNotRun is the initial lastStatus of a node that has never
	// executed its logic. It is the zero value so that embedded node state
	// starts out correct without a constructor.
	StatusNotRun Status = iota
	// StatusError indicates a node's own logic failed abnormally. It halts
	// aggregation at the node that observes it and is never retried.
	StatusError
	// StatusFailure is a normal, expected "this branch did not succeed".
	StatusFailure
	// StatusSuccess indicates the node achieved its goal.
	StatusSuccess
	// StatusRunning indicates the node has not yet resolved and should be
	// re-polled on a later tick.
	StatusRunning
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusError:
		return "ERROR"
	case StatusFailure:
		return "FAILURE"
	case StatusSuccess:
		return "SUCCESS"
	case StatusRunning:
		return "RUNNING"
	case StatusNotRun:
		return "NOTRUN"
	default:
		return "UNKNOWN"
	}
}

// Terminal returns true for statuses that end a node's evaluation, i.e.
// anything other than RUNNING.
func (s Status) Terminal() bool {
	return s != StatusRunning
}
