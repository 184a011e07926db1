package ops

import "math"

// EvalSin computes the zero-order value of out = sin(x).
func EvalSin(x float64) float64 {
	return math.Sin(x)
}

// TangentSin computes the forward-mode derivative: d(sin(x)) = cos(x)*dx.
func TangentSin(x, dx float64) float64 {
	return math.Cos(x) * dx
}

// AdjointSin distributes the adjoint of out = sin(x) to x.
func AdjointSin(x, bar float64) float64 {
	return bar * math.Cos(x)
}
