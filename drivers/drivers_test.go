// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package drivers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaltape "github.com/born-ml/adv/internal/tape"
	"github.com/born-ml/adv/internal/tape/ops"
)

// buildAbsLine records f(x) = |x| + 1.
func buildAbsLine(t *testing.T) *internaltape.Tape {
	c := internaltape.NewContext()
	x := c.NewIndependent()
	a := c.RecordUnary(ops.Abs, x)
	one := c.RecordConst(1)
	sum := c.RecordBinary(ops.Add, a, one)
	c.SetDependent(sum)
	tp, err := c.Finish()
	require.NoError(t, err)
	return tp
}

func TestJacobianForwardAndReverseAgree(t *testing.T) {
	c := internaltape.NewContext()
	x := c.NewIndependent()
	y := c.NewIndependent()
	sq := c.RecordBinary(ops.Mul, x, x)
	sum := c.RecordBinary(ops.Add, sq, y)
	c.SetDependent(sum)
	tp, err := c.Finish()
	require.NoError(t, err)

	x0 := []float64{3, 1}
	jf, err := Jacobian(tp, x0, Forward)
	require.NoError(t, err)
	jr, err := Jacobian(tp, x0, Reverse)
	require.NoError(t, err)
	assert.InDeltaSlice(t, jf, jr, 1e-12)
	assert.InDeltaSlice(t, []float64{6, 1}, jf, 1e-12)
}

func TestJacobianResultRoundTripsThroughMsgpack(t *testing.T) {
	c := internaltape.NewContext()
	x := c.NewIndependent()
	y := c.RecordBinary(ops.Mul, x, x)
	c.SetDependent(y)
	tp, err := c.Finish()
	require.NoError(t, err)

	jac, err := Jacobian(tp, []float64{5}, Forward)
	require.NoError(t, err)
	jr := &JacobianResult{M: tp.NumDeps(), N: tp.NumIndeps(), Values: jac}

	data, err := EncodeJacobian(jr)
	require.NoError(t, err)

	decoded, err := DecodeJacobian(data)
	require.NoError(t, err)
	assert.Equal(t, jr, decoded)
}

func TestAbsNormalResultRoundTripsThroughMsgpack(t *testing.T) {
	tp := buildAbsLine(t)

	form, err := AbsNormal(tp, []float64{-2})
	require.NoError(t, err)

	data, err := EncodeResult(form)
	require.NoError(t, err)

	decoded, err := DecodeResult(data)
	require.NoError(t, err)
	assert.Equal(t, form, decoded)
}
