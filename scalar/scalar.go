// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar is the operator-overloading facade over the tape
// recorder: a thin handle type standing in for a real number, whose
// arithmetic methods append operations to a Context instead of
// evaluating them, and a Context that turns a recorded program into an
// immutable tape once recording is complete.
//
// Handles are values, not nodes: a Value is just (Context, index) and
// copying one around never creates a cycle or allocates. Mixing a
// Value with a raw float64 goes through ConstFrom, which materializes
// the literal as a Const op in the handle's own context.
package scalar

import (
	internaltape "github.com/born-ml/adv/internal/tape"
	"github.com/born-ml/adv/internal/tape/ops"
	"github.com/born-ml/adv/tape"
)

// Context is a recording session: independent variables and arithmetic
// on their derived Values append ops to it. It is not safe for
// concurrent use.
type Context struct {
	ctx *internaltape.Context
}

// NewContext returns an empty recording context.
func NewContext() *Context {
	return &Context{ctx: internaltape.NewContext()}
}

// NewIndependent draws a fresh independent input variable.
func (c *Context) NewIndependent() Value {
	return Value{ctx: c, idx: c.ctx.NewIndependent()}
}

// Const materializes a literal constant as a Value in this context.
func (c *Context) Const(v float64) Value {
	return Value{ctx: c, idx: c.ctx.RecordConst(v)}
}

// MarkDependent declares v a dependent output: its final value and
// derivatives will be reported by the tape's drivers, in the order
// MarkDependent was called.
func (c *Context) MarkDependent(v Value) {
	v.mustOwnedBy(c)
	c.ctx.SetDependent(v.idx)
}

// Finish seals the recording and returns the resulting Tape. The
// Context must not be used to record further operations afterward.
func (c *Context) Finish() (*tape.Tape, error) {
	return c.ctx.Finish()
}

// Value is a handle to a variable recorded on a Context: either an
// independent input, a constant, or the result of an arithmetic
// operation on earlier values.
type Value struct {
	ctx *Context
	idx int
}

// ConstFrom materializes x as a constant Value in v's originating
// context, so it can be combined with v by the arithmetic methods.
func (v Value) ConstFrom(x float64) Value {
	return v.ctx.Const(x)
}

// Copy returns a handle to the same recorded slot as v. Values are
// already index handles rather than nodes, so no new op is recorded;
// Copy exists so callers can hand out an alias without exposing v's
// context or index directly.
func (v Value) Copy() Value {
	return v
}

func (v Value) mustOwnedBy(c *Context) {
	if v.ctx != c {
		panic("scalar: value does not belong to this context")
	}
}

func (v Value) binary(kind ops.Kind, other Value) Value {
	if v.ctx != other.ctx {
		panic("scalar: cannot combine values from different contexts")
	}
	return Value{ctx: v.ctx, idx: v.ctx.ctx.RecordBinary(kind, v.idx, other.idx)}
}

func (v Value) unary(kind ops.Kind) Value {
	return Value{ctx: v.ctx, idx: v.ctx.ctx.RecordUnary(kind, v.idx)}
}

// Add returns v + other.
func (v Value) Add(other Value) Value { return v.binary(ops.Add, other) }

// Sub returns v - other.
func (v Value) Sub(other Value) Value { return v.binary(ops.Sub, other) }

// Mul returns v * other.
func (v Value) Mul(other Value) Value { return v.binary(ops.Mul, other) }

// Div returns v / other.
func (v Value) Div(other Value) Value { return v.binary(ops.Div, other) }

// Sin returns sin(v).
func (v Value) Sin() Value { return v.unary(ops.Sin) }

// Cos returns cos(v).
func (v Value) Cos() Value { return v.unary(ops.Cos) }

// Tan returns tan(v).
func (v Value) Tan() Value { return v.unary(ops.Tan) }

// Exp returns exp(v).
func (v Value) Exp() Value { return v.unary(ops.Exp) }

// Ln returns the natural logarithm of v.
func (v Value) Ln() Value { return v.unary(ops.Ln) }

// Abs returns |v|, the engine's primary switching primitive.
func (v Value) Abs() Value { return v.unary(ops.Abs) }

// Neg returns -v.
func (v Value) Neg() Value { return v.unary(ops.Neg) }

// Min returns min(a, b), a switching primitive. Ties (a == b) pick a.
func Min(a, b Value) Value { return a.binary(ops.Min, b) }

// Max returns max(a, b), a switching primitive. Ties (a == b) pick b.
func Max(a, b Value) Value { return a.binary(ops.Max, b) }
