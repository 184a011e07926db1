package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmeticRecordsExpectedValue(t *testing.T) {
	c := NewContext()
	x := c.NewIndependent()
	y := c.NewIndependent()

	sum := x.Add(y)
	prod := x.Mul(y)
	both := sum.Sub(prod)
	c.MarkDependent(both)

	tp, err := c.Finish()
	require.NoError(t, err)

	out, err := tp.ZeroOrder([]float64{3, 4})
	require.NoError(t, err)
	// (3+4) - (3*4) = 7 - 12 = -5
	assert.Equal(t, []float64{-5}, out)
}

func TestConstFromMaterializesInOwnersContext(t *testing.T) {
	c := NewContext()
	x := c.NewIndependent()
	shifted := x.Add(x.ConstFrom(10))
	c.MarkDependent(shifted)

	tp, err := c.Finish()
	require.NoError(t, err)

	out, err := tp.ZeroOrder([]float64{5})
	require.NoError(t, err)
	assert.Equal(t, []float64{15}, out)
}

func TestMinMaxFreeFunctions(t *testing.T) {
	c := NewContext()
	x := c.NewIndependent()
	y := c.NewIndependent()
	lo := Min(x, y)
	hi := Max(x, y)
	c.MarkDependent(lo)
	c.MarkDependent(hi)

	tp, err := c.Finish()
	require.NoError(t, err)

	out, err := tp.ZeroOrder([]float64{2, 9})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 9}, out)
}

func TestCombiningValuesFromDifferentContextsPanics(t *testing.T) {
	c1 := NewContext()
	c2 := NewContext()
	x := c1.NewIndependent()
	y := c2.NewIndependent()

	assert.Panics(t, func() {
		x.Add(y)
	})
}

func TestCopyReturnsAliasToSameSlot(t *testing.T) {
	c := NewContext()
	x := c.NewIndependent()
	alias := x.Copy()
	sum := x.Add(alias)
	c.MarkDependent(sum)

	tp, err := c.Finish()
	require.NoError(t, err)

	out, err := tp.ZeroOrder([]float64{4})
	require.NoError(t, err)
	assert.Equal(t, []float64{8}, out)
}

func TestMarkDependentRejectsForeignValue(t *testing.T) {
	c1 := NewContext()
	c2 := NewContext()
	x := c1.NewIndependent()

	assert.Panics(t, func() {
		c2.MarkDependent(x)
	})
}
