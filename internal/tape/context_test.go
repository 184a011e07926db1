package tape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/adv/internal/tape/ops"
)

func TestRecordingAssignsStrictlyIncreasingIndices(t *testing.T) {
	c := NewContext()
	x0 := c.NewIndependent()
	x1 := c.NewIndependent()
	k := c.RecordConst(2.0)
	s := c.RecordBinary(ops.Add, x0, x1)
	p := c.RecordBinary(ops.Mul, s, k)

	assert.Equal(t, 0, x0)
	assert.Equal(t, 1, x1)
	assert.Equal(t, 2, k)
	assert.Equal(t, 3, s)
	assert.Equal(t, 4, p)
}

func TestRecordBinaryRejectsOperandFromTheFuture(t *testing.T) {
	c := NewContext()
	c.NewIndependent()
	assert.PanicsWithValue(t, ErrOperandOutOfRange, func() {
		c.RecordBinary(ops.Add, 0, 5)
	})
}

func TestRecordUnaryRejectsBinaryKind(t *testing.T) {
	c := NewContext()
	x := c.NewIndependent()
	assert.Panics(t, func() {
		c.RecordUnary(ops.Add, x)
	})
}

func TestRecordBinaryRejectsUnaryKind(t *testing.T) {
	c := NewContext()
	x := c.NewIndependent()
	assert.Panics(t, func() {
		c.RecordBinary(ops.Sin, x, x)
	})
}

func TestFinishRejectsEmptyDependentSet(t *testing.T) {
	c := NewContext()
	c.NewIndependent()
	_, err := c.Finish()
	require.ErrorIs(t, err, ErrNoDependents)
}

func TestRecordingAfterFinishPanics(t *testing.T) {
	c := NewContext()
	x := c.NewIndependent()
	c.SetDependent(x)
	_, err := c.Finish()
	require.NoError(t, err)

	assert.PanicsWithValue(t, ErrTapeFinished, func() {
		c.NewIndependent()
	})
}

func TestSetDependentOnSameSlotTwiceIsANoOp(t *testing.T) {
	c := NewContext()
	x := c.NewIndependent()
	c.SetDependent(x)
	c.SetDependent(x)
	tp, err := c.Finish()
	require.NoError(t, err)
	assert.Equal(t, 1, tp.NumDeps())

	y, err := tp.ZeroOrder([]float64{7})
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, y)
}
