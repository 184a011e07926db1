// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package drivers re-exports the dense Jacobian and abs-normal
// decomposition entry points over a finished Tape, and adds msgpack
// (de)serialization for the results so they can cross a process
// boundary — the cmd/adv CLI's --format=msgpack output, or a cached
// abs-normal form read back by a later run.
package drivers

import (
	"github.com/vmihailenco/msgpack/v5"

	internaldrivers "github.com/born-ml/adv/internal/drivers"
	"github.com/born-ml/adv/tape"
)

// Direction selects which sweep direction a dense Jacobian is built
// from. Both directions apply the same sign and tie-break conventions at
// switching ops, so they produce the same Jacobian up to rounding.
type Direction int

const (
	// Forward builds the Jacobian one independent variable at a time.
	Forward Direction = iota
	// Reverse builds the Jacobian one dependent variable at a time.
	Reverse
)

// Jacobian computes the tape's m-by-n Jacobian at x using the requested
// sweep direction, row-major: entry (i, j) is at index i*n+j.
func Jacobian(t *tape.Tape, x []float64, dir Direction) ([]float64, error) {
	if dir == Reverse {
		return internaldrivers.JacobianReverse(t, x)
	}
	return internaldrivers.JacobianForward(t, x)
}

// AbsNormalForm is the abs-normal decomposition of an abs-factorable
// tape at a point: the smooth linear-quadratic system
//
//	z = A + Z*dx + L*|z|   (L strictly lower triangular)
//	y = B + J*dx + Y*|z|
//
// in the displacement dx from x, which reproduces the tape's value
// (at dx = 0) and generalized derivatives at x.
type AbsNormalForm struct {
	N int `msgpack:"n"`
	M int `msgpack:"m"`
	S int `msgpack:"s"`

	A []float64 `msgpack:"a"`
	B []float64 `msgpack:"b"`
	Z []float64 `msgpack:"z"`
	L []float64 `msgpack:"l"`
	J []float64 `msgpack:"j"`
	Y []float64 `msgpack:"y"`
}

// AbsNormal computes the abs-normal form of t at x.
func AbsNormal(t *tape.Tape, x []float64) (*AbsNormalForm, error) {
	f, err := internaldrivers.AbsNormal(t, x)
	if err != nil {
		return nil, err
	}
	return &AbsNormalForm{
		N: f.N, M: f.M, S: f.S,
		A: f.A, B: f.B, Z: f.Z, L: f.L, J: f.J, Y: f.Y,
	}, nil
}

// EncodeResult serializes an AbsNormalForm to msgpack.
func EncodeResult(f *AbsNormalForm) ([]byte, error) {
	return msgpack.Marshal(f)
}

// DecodeResult deserializes an msgpack-encoded AbsNormalForm.
func DecodeResult(data []byte) (*AbsNormalForm, error) {
	var f AbsNormalForm
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// JacobianResult is a dense Jacobian together with its shape, suitable
// for serialization; Values is row-major, length M*N.
type JacobianResult struct {
	M      int       `msgpack:"m"`
	N      int       `msgpack:"n"`
	Values []float64 `msgpack:"values"`
}

// EncodeJacobian serializes a JacobianResult to msgpack.
func EncodeJacobian(j *JacobianResult) ([]byte, error) {
	return msgpack.Marshal(j)
}

// DecodeJacobian deserializes an msgpack-encoded JacobianResult.
func DecodeJacobian(data []byte) (*JacobianResult, error) {
	var j JacobianResult
	if err := msgpack.Unmarshal(data, &j); err != nil {
		return nil, err
	}
	return &j, nil
}
