package ops

import "math"

// EvalCos computes the zero-order value of out = cos(x).
func EvalCos(x float64) float64 {
	return math.Cos(x)
}

// TangentCos computes the forward-mode derivative: d(cos(x)) = -sin(x)*dx.
func TangentCos(x, dx float64) float64 {
	return -math.Sin(x) * dx
}

// AdjointCos distributes the adjoint of out = cos(x) to x.
func AdjointCos(x, bar float64) float64 {
	return -bar * math.Sin(x)
}
