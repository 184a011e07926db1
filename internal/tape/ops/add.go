package ops

// EvalAdd computes the zero-order value of out = a + b.
func EvalAdd(a, b float64) float64 {
	return a + b
}

// TangentAdd computes the forward-mode derivative of a + b.
//
// d(a+b) = da + db.
func TangentAdd(da, db float64) float64 {
	return da + db
}

// AdjointAdd distributes the adjoint of out = a + b to its operands.
//
// Since d(a+b)/da = d(a+b)/db = 1, the adjoint flows unchanged to both.
func AdjointAdd(bar float64) (barA, barB float64) {
	return bar, bar
}
