// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tape re-exports the tape recorder's public surface: the
// finished, immutable Tape type and the sweep/driver errors it can
// raise. The recording side lives in package scalar, which is the
// facade users actually record operations through; this package is
// for code that already holds a Tape and wants to run sweeps or the
// abs-normal decomposition over it directly.
package tape

import internaltape "github.com/born-ml/adv/internal/tape"

// Tape is a finished recording of an abs-factorable scalar function: a
// sequence of elementary ops together with which slots are independent
// inputs and which are reported dependents. It supports the zero-order,
// forward, and reverse sweeps, and AbsDecompose, the structural rewrite
// that exposes Min/Max in terms of explicit Abs switching variables.
type Tape = internaltape.Tape

// DomainError reports a numerical domain violation — division by zero,
// logarithm of a non-positive value, tangent at a singularity —
// encountered while sweeping a Tape, together with the offending op's
// position.
type DomainError = internaltape.DomainError

// Sentinel errors a Context or Tape method can return or, for
// ErrOperandOutOfRange and ErrTapeFinished, panic with.
var (
	ErrOperandOutOfRange = internaltape.ErrOperandOutOfRange
	ErrTapeFinished      = internaltape.ErrTapeFinished
	ErrNoDependents      = internaltape.ErrNoDependents
	ErrLengthMismatch    = internaltape.ErrLengthMismatch
)
