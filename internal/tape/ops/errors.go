package ops

import "errors"

// Sentinel errors surfaced by ops whose real-valued semantics are partial.
// The tape sweeps wrap these in tape.DomainError to attach the offending
// op position before returning them to the caller.
var (
	// ErrDivideByZero is returned by EvalDiv when the divisor is zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrLogDomain is returned by EvalLn when the argument is not positive.
	ErrLogDomain = errors.New("logarithm of non-positive value")
	// ErrTanSingularity is returned by EvalTan when |cos(x)| is below
	// singularityEps.
	ErrTanSingularity = errors.New("tangent at singularity")
)
