package ops

import "math"

// singularityEps bounds how close cos(x) may come to zero before tan(x) and
// its derivative are treated as undefined.
const singularityEps = 1e-12

// EvalTan computes the zero-order value of out = tan(x).
//
// Returns ErrTanSingularity if x is within singularityEps of a pole of tan.
func EvalTan(x float64) (float64, error) {
	c := math.Cos(x)
	if math.Abs(c) < singularityEps {
		return 0, ErrTanSingularity
	}
	return math.Sin(x) / c, nil
}

// TangentTan computes the forward-mode derivative: d(tan(x)) = dx/cos(x)^2.
func TangentTan(x, dx float64) (float64, error) {
	c := math.Cos(x)
	if math.Abs(c) < singularityEps {
		return 0, ErrTanSingularity
	}
	return dx / (c * c), nil
}

// AdjointTan distributes the adjoint of out = tan(x) to x.
func AdjointTan(x, bar float64) (float64, error) {
	c := math.Cos(x)
	if math.Abs(c) < singularityEps {
		return 0, ErrTanSingularity
	}
	return bar / (c * c), nil
}
