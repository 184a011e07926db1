package ops

// EvalMin computes the zero-order value of out = min(a, b).
//
// Ties pick the first argument: a is returned whenever a <= b.
func EvalMin(a, b float64) float64 {
	if a <= b {
		return a
	}
	return b
}

// TangentMin computes the forward-mode derivative of out = min(a, b),
// selecting the tangent of whichever branch EvalMin selected.
func TangentMin(a, b, da, db float64) float64 {
	if a <= b {
		return da
	}
	return db
}

// AdjointMin distributes the adjoint of out = min(a, b) to whichever
// operand EvalMin selected; the other operand receives zero.
func AdjointMin(a, b, bar float64) (barA, barB float64) {
	if a <= b {
		return bar, 0
	}
	return 0, bar
}
