package engine

// ValidationError reports malformed scoring input: negative runs,
// empty player names, an unknown extra type.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// InvalidStateError reports an operation that is not valid for the
// match's current lifecycle state, such as appending a delivery before
// the toss has opened an innings.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return "invalid state: " + e.Reason
}
