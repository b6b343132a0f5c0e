package protocol

import (
	"errors"
	"fmt"
)

// Violation sentinels. Callers of the validator only ever observe the
// Invalid verdict; these exist so tests and transcript diagnostics can tell
// which rule a message broke.
var (
	// ErrWrongDirection indicates the message came from the wrong endpoint
	// for the current phase.
	ErrWrongDirection = errors.New("wrong direction for phase")

	// ErrUnexpectedMessage indicates the text matches no message accepted in
	// the current phase.
	ErrUnexpectedMessage = errors.New("unexpected message for phase")

	// ErrBadVersion indicates a malformed VERSION reply.
	ErrBadVersion = errors.New("malformed version reply")

	// ErrBadDataToken indicates a malformed data/file/command reply.
	ErrBadDataToken = errors.New("malformed data reply")

	// ErrBadBase64Token indicates a malformed B64: reply.
	ErrBadBase64Token = errors.New("malformed base64 reply")
)

// ViolationError wraps a violation sentinel with the phase and direction it
// occurred under. SPLPv1 has exactly one failure kind at the API surface (the
// Invalid verdict and the session reset it implies); this type only carries
// context for logs and tests, never alternate recovery semantics.
type ViolationError struct {
	Phase     string    // phase name at the time of the violation
	Direction Direction // direction of the offending message
	Err       error     // the underlying sentinel
}

// NewViolationError creates a ViolationError with context.
func NewViolationError(phase string, dir Direction, err error) *ViolationError {
	return &ViolationError{
		Phase:     phase,
		Direction: dir,
		Err:       err,
	}
}

// Error implements the error interface.
func (e *ViolationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Phase, e.Direction, e.Err)
}

// Unwrap returns the underlying error for errors.Is and errors.As support.
func (e *ViolationError) Unwrap() error {
	return e.Err
}
