// Package drivers implements the matrix-producing entry points built on
// top of a finished tape: dense Jacobians by repeated forward or reverse
// sweeps, and the abs-normal decomposition of a non-smooth tape into its
// explicit switching-variable form.
package drivers

import "github.com/born-ml/adv/internal/tape"

// JacobianForward computes the m-by-n Jacobian of a tape's m dependent
// outputs with respect to its n independent inputs at x, by running one
// forward sweep per input column. The result is returned row-major:
// entry (i, j) is at index i*n+j.
func JacobianForward(t *tape.Tape, x []float64) ([]float64, error) {
	n := t.NumIndeps()
	m := t.NumDeps()
	out := make([]float64, m*n)

	dx := make([]float64, n)
	for j := 0; j < n; j++ {
		dx[j] = 1
		_, col, err := t.Forward(x, dx)
		dx[j] = 0
		if err != nil {
			return nil, err
		}
		for i := 0; i < m; i++ {
			out[i*n+j] = col[i]
		}
	}
	return out, nil
}

// JacobianReverse computes the m-by-n Jacobian of a tape's m dependent
// outputs with respect to its n independent inputs at x, by running one
// reverse sweep per output row. The result is returned row-major: entry
// (i, j) is at index i*n+j.
func JacobianReverse(t *tape.Tape, x []float64) ([]float64, error) {
	n := t.NumIndeps()
	m := t.NumDeps()
	out := make([]float64, m*n)

	bary := make([]float64, m)
	for i := 0; i < m; i++ {
		bary[i] = 1
		_, row, err := t.Reverse(x, bary)
		bary[i] = 0
		if err != nil {
			return nil, err
		}
		copy(out[i*n:(i+1)*n], row)
	}
	return out, nil
}
