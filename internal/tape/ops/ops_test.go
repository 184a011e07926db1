package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(0))
	assert.Equal(t, 1.0, Sign(3.5))
	assert.Equal(t, -1.0, Sign(-3.5))
}

func TestEvalAbs(t *testing.T) {
	assert.Equal(t, 2.0, EvalAbs(-2))
	assert.Equal(t, 2.0, EvalAbs(2))
	assert.Equal(t, 0.0, EvalAbs(0))
}

func TestTangentAbsAtZeroUsesSignConvention(t *testing.T) {
	assert.Equal(t, 1.0, TangentAbs(0, 1))
	assert.Equal(t, -1.0, TangentAbs(0, -1))
}

func TestAdjointAbs(t *testing.T) {
	assert.Equal(t, 1.0, AdjointAbs(3, 1))
	assert.Equal(t, -1.0, AdjointAbs(-3, 1))
}

func TestEvalMinTiePicksFirst(t *testing.T) {
	assert.Equal(t, 2.0, EvalMin(2, 2))
	assert.Equal(t, 1.0, EvalMin(1, 2))
	assert.Equal(t, 1.0, EvalMin(2, 1))
}

func TestAdjointMinTieRoutesToFirst(t *testing.T) {
	barA, barB := AdjointMin(2, 2, 1)
	assert.Equal(t, 1.0, barA)
	assert.Equal(t, 0.0, barB)
}

func TestEvalMaxTiePicksSecond(t *testing.T) {
	assert.Equal(t, 2.0, EvalMax(2, 2))
	assert.Equal(t, 2.0, EvalMax(1, 2))
	assert.Equal(t, 2.0, EvalMax(2, 1))
}

func TestAdjointMaxTieRoutesToSecond(t *testing.T) {
	barA, barB := AdjointMax(2, 2, 1)
	assert.Equal(t, 0.0, barA)
	assert.Equal(t, 1.0, barB)
}

func TestEvalDivByZero(t *testing.T) {
	_, err := EvalDiv(1, 0)
	require.ErrorIs(t, err, ErrDivideByZero)
}

func TestEvalLnDomain(t *testing.T) {
	_, err := EvalLn(0)
	require.ErrorIs(t, err, ErrLogDomain)
	_, err = EvalLn(-1)
	require.ErrorIs(t, err, ErrLogDomain)

	v, err := EvalLn(math.E)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-12)
}

func TestEvalTanSingularity(t *testing.T) {
	_, err := EvalTan(math.Pi / 2)
	require.ErrorIs(t, err, ErrTanSingularity)
}

func TestArithmeticTangentsMatchFiniteDifferences(t *testing.T) {
	const h = 1e-6
	a, b := 1.7, -0.4

	cases := []struct {
		name string
		f    func(a, b float64) float64
		dfda func(a, b float64) float64
	}{
		{"mul", EvalMul, func(a, b float64) float64 { return TangentMul(a, b, 1, 0) }},
		{"sin", func(a, b float64) float64 { return EvalSin(a) }, func(a, b float64) float64 { return TangentSin(a, 1) }},
		{"cos", func(a, b float64) float64 { return EvalCos(a) }, func(a, b float64) float64 { return TangentCos(a, 1) }},
		{"exp", func(a, b float64) float64 { return EvalExp(a) }, func(a, b float64) float64 { return TangentExp(a, 1) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			numeric := (c.f(a+h, b) - c.f(a-h, b)) / (2 * h)
			assert.InDelta(t, c.dfda(a, b), numeric, 1e-6)
		})
	}
}
