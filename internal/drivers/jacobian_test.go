package drivers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/adv/internal/tape"
	"github.com/born-ml/adv/internal/tape/ops"
)

// buildQuadratic records f(x0, x1) = x0*x0 + 3*x0*x1 - x1, a fully smooth
// function with a non-trivial two-variable Jacobian.
func buildQuadratic(t *testing.T) *tape.Tape {
	c := tape.NewContext()
	x0 := c.NewIndependent()
	x1 := c.NewIndependent()
	sq := c.RecordBinary(ops.Mul, x0, x0)
	three := c.RecordConst(3)
	cross := c.RecordBinary(ops.Mul, three, c.RecordBinary(ops.Mul, x0, x1))
	sum := c.RecordBinary(ops.Add, sq, cross)
	y := c.RecordBinary(ops.Sub, sum, x1)
	c.SetDependent(y)
	tp, err := c.Finish()
	require.NoError(t, err)
	return tp
}

func TestJacobianForwardMatchesReverseOnSmoothFunction(t *testing.T) {
	tp := buildQuadratic(t)
	x := []float64{2, -1}

	jf, err := JacobianForward(tp, x)
	require.NoError(t, err)
	jr, err := JacobianReverse(tp, x)
	require.NoError(t, err)

	require.Len(t, jf, 2)
	require.Len(t, jr, 2)
	assert.InDelta(t, jf[0], jr[0], 1e-12)
	assert.InDelta(t, jf[1], jr[1], 1e-12)

	// d/dx0 = 2*x0 + 3*x1 = 4 - 3 = 1; d/dx1 = 3*x0 - 1 = 5
	assert.InDelta(t, 1.0, jf[0], 1e-12)
	assert.InDelta(t, 5.0, jf[1], 1e-12)
}

func TestJacobianMultipleDependents(t *testing.T) {
	c := tape.NewContext()
	x := c.NewIndependent()
	y := c.NewIndependent()
	sum := c.RecordBinary(ops.Add, x, y)
	diff := c.RecordBinary(ops.Sub, x, y)
	c.SetDependent(sum)
	c.SetDependent(diff)
	tp, err := c.Finish()
	require.NoError(t, err)

	jac, err := JacobianForward(tp, []float64{1, 2})
	require.NoError(t, err)
	// row-major 2x2: [[1,1],[1,-1]]
	assert.Equal(t, []float64{1, 1, 1, -1}, jac)

	jacR, err := JacobianReverse(tp, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, jac, jacR)
}
