package ops

import "math"

// EvalExp computes the zero-order value of out = exp(x).
func EvalExp(x float64) float64 {
	return math.Exp(x)
}

// TangentExp computes the forward-mode derivative: d(exp(x)) = exp(x)*dx.
func TangentExp(x, dx float64) float64 {
	return math.Exp(x) * dx
}

// AdjointExp distributes the adjoint of out = exp(x) to x.
//
// Reuses the already-computed output value rather than re-evaluating exp.
func AdjointExp(out, bar float64) float64 {
	return bar * out
}
