package ops

import "math"

// Sign reports the sign of x under the fixed tie-break convention that
// sign(0) is +1. This keeps abs, and the switching primitives built from
// it, single-valued at the kink instead of branching undefined behavior
// into callers.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// EvalAbs computes the zero-order value of out = |x|.
func EvalAbs(x float64) float64 {
	return math.Abs(x)
}

// TangentAbs computes the forward-mode derivative of out = |x| using the
// generalized slope sign(x), so the rule is total rather than partial at
// x == 0.
func TangentAbs(x, dx float64) float64 {
	return Sign(x) * dx
}

// AdjointAbs distributes the adjoint of out = |x| to x using the same
// generalized slope as TangentAbs.
func AdjointAbs(x, bar float64) float64 {
	return Sign(x) * bar
}
