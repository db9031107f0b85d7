package model

// ValidationError reports a board or size that cannot be accepted by a Simulator.
// The simulator state is left unchanged whenever one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var (
	ErrNotSquare   = &ValidationError{Reason: "board must be square"}
	ErrNotNumeric  = &ValidationError{Reason: "board must be a numeric grid"}
	ErrInvalidSize = &ValidationError{Reason: "board size must be positive"}
)
