package tape

import (
	"errors"
	"fmt"
)

// Sentinel errors describing malformed recordings, distinct from the
// per-kind numerical domain errors raised while sweeping a finished tape.
var (
	// ErrOperandOutOfRange is raised when a recorded operand index does not
	// refer to an earlier slot on the same tape.
	ErrOperandOutOfRange = errors.New("operand index out of range")
	// ErrTapeFinished is raised by any recording method called after Finish.
	ErrTapeFinished = errors.New("tape already finished")
	// ErrTapeNotFinished names a sweep or driver invoked before Finish.
	// Nothing in this module returns it: a Tape only comes from Finish.
	ErrTapeNotFinished = errors.New("tape not finished")
	// ErrNoDependents is raised by Finish when no slot was marked dependent.
	ErrNoDependents = errors.New("tape has no dependent outputs")
	// ErrLengthMismatch is raised when a caller-supplied vector's length
	// does not match the tape's independent or dependent count.
	ErrLengthMismatch = errors.New("vector length does not match tape arity")
)

// DomainError reports a numerical domain violation (division by zero, log
// of a non-positive value, tangent at a singularity) encountered while
// sweeping a tape, together with the position of the offending op.
type DomainError struct {
	// Pos is the slot index of the op that raised the error.
	Pos int
	// Kind names the op that raised the error.
	Kind string
	// Err is the underlying sentinel from the ops package.
	Err error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("tape: %s at slot %d: %v", e.Kind, e.Pos, e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
