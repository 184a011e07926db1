// Package tape implements the recording and sweeping of abs-factorable
// scalar functions: operator-overloaded elementary operations are
// recorded onto a Context in evaluation order, sealed into an immutable
// Tape, and then replayed by the zero-order, forward, and reverse
// sweeps to compute values, directional derivatives, and gradients.
//
// Non-smooth switching primitives (Abs, Min, Max) are handled with fixed
// tie-break conventions rather than rejected: sign(0) is +1, ties in Min
// pick the first argument, and ties in Max pick the second. AbsDecompose
// rewrites Min and Max in terms of Abs so that every switching op on a
// decomposed tape shares one structural shape, which the abs-normal
// driver in internal/drivers relies on.
package tape
