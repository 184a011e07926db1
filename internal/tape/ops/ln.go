package ops

import "math"

// EvalLn computes the zero-order value of out = ln(x).
//
// Returns ErrLogDomain if x is not strictly positive.
func EvalLn(x float64) (float64, error) {
	if x <= 0 {
		return 0, ErrLogDomain
	}
	return math.Log(x), nil
}

// TangentLn computes the forward-mode derivative: d(ln(x)) = dx/x.
func TangentLn(x, dx float64) (float64, error) {
	if x <= 0 {
		return 0, ErrLogDomain
	}
	return dx / x, nil
}

// AdjointLn distributes the adjoint of out = ln(x) to x.
func AdjointLn(x, bar float64) (float64, error) {
	if x <= 0 {
		return 0, ErrLogDomain
	}
	return bar / x, nil
}
