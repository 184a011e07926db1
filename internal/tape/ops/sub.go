package ops

// EvalSub computes the zero-order value of out = a - b.
func EvalSub(a, b float64) float64 {
	return a - b
}

// TangentSub computes the forward-mode derivative of a - b.
func TangentSub(da, db float64) float64 {
	return da - db
}

// AdjointSub distributes the adjoint of out = a - b to its operands.
//
// d(a-b)/da = 1, d(a-b)/db = -1.
func AdjointSub(bar float64) (barA, barB float64) {
	return bar, -bar
}
