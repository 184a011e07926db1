package drivers

import (
	"github.com/born-ml/adv/internal/tape"
	"github.com/born-ml/adv/internal/tape/ops"
)

// AbsNormalForm is the abs-normal decomposition of an abs-factorable
// function at a point x: the function is rewritten as a smooth system
//
//	z = a + Z*dx + L*|z|   (implicit, L strictly lower triangular)
//	y = b + J*dx + Y*|z|
//
// where z collects the value of every switching-op argument and dx is
// the displacement from the point x the decomposition was taken around;
// at x itself (dx = 0) the system gives the tape's actual values.
type AbsNormalForm struct {
	N, M, S int

	// A is the length-S constant offset of the switching-argument system.
	A []float64
	// B is the length-M constant offset of the dependent system.
	B []float64
	// Z is the S-by-N Jacobian of switching arguments with respect to x.
	Z []float64
	// L is the S-by-S Jacobian of switching arguments with respect to the
	// switching variables |z|; strictly lower triangular.
	L []float64
	// J is the M-by-N Jacobian of dependents with respect to x.
	J []float64
	// Y is the M-by-S Jacobian of dependents with respect to the
	// switching variables |z|.
	Y []float64
}

// AbsNormal computes the abs-normal form of t at x.
//
// t is first decomposed with AbsDecompose so that Min and Max, as well
// as any pre-existing Abs, are all expressed as explicit switching
// variables. An extended, fully smooth tape is then built by replacing
// each switching op's output with a free variable standing in for |z|;
// Z, L, J, and Y fall out of that extended tape's ordinary Jacobian,
// and a, b are chosen so the system reproduces t's actual value at x.
func AbsNormal(t *tape.Tape, x []float64) (*AbsNormalForm, error) {
	n := t.NumIndeps()
	if len(x) != n {
		return nil, tape.ErrLengthMismatch
	}

	decomposed := t.AbsDecompose()
	ext, argSlot, absSlot, s, m := buildExtended(decomposed)

	vals, err := decomposed.Values(x)
	if err != nil {
		return nil, err
	}
	y, err := decomposed.ZeroOrder(x)
	if err != nil {
		return nil, err
	}

	cVal := make([]float64, s)
	zAbs := make([]float64, s)
	for i := 0; i < s; i++ {
		cVal[i] = vals[argSlot[i]]
		zAbs[i] = vals[absSlot[i]]
	}

	xz := make([]float64, n+s)
	copy(xz, x)
	copy(xz[n:], zAbs)

	full, err := JacobianReverse(ext, xz)
	if err != nil {
		return nil, err
	}
	width := n + s

	z := full[:s*width]
	rest := full[s*width:]

	Z := make([]float64, s*n)
	L := make([]float64, s*s)
	for i := 0; i < s; i++ {
		copy(Z[i*n:(i+1)*n], z[i*width:i*width+n])
		copy(L[i*s:(i+1)*s], z[i*width+n:i*width+width])
	}

	J := make([]float64, m*n)
	Y := make([]float64, m*s)
	for i := 0; i < m; i++ {
		copy(J[i*n:(i+1)*n], rest[i*width:i*width+n])
		copy(Y[i*s:(i+1)*s], rest[i*width+n:i*width+width])
	}

	a := make([]float64, s)
	for i := 0; i < s; i++ {
		dot := 0.0
		for j := 0; j < s; j++ {
			dot += L[i*s+j] * zAbs[j]
		}
		a[i] = cVal[i] - dot
	}

	b := make([]float64, m)
	for i := 0; i < m; i++ {
		dot := 0.0
		for j := 0; j < s; j++ {
			dot += Y[i*s+j] * zAbs[j]
		}
		b[i] = y[i] - dot
	}

	return &AbsNormalForm{
		N: n, M: m, S: s,
		A: a, B: b,
		Z: Z, L: L, J: J, Y: Y,
	}, nil
}

// buildExtended replays a decomposed (switching-op-free-of-Min/Max)
// tape into a new, fully smooth tape in which every Abs op's output is
// replaced by a fresh independent variable. The original tape's n
// independents occupy the first n slots of the extended tape's
// independent vector, in their original order; the s switching
// variables occupy the remaining s slots, in switching-op encounter
// order. The extended tape's dependents are, in order, the s switching
// arguments followed by the original m dependents.
//
// argSlot and absSlot index into decomposed (not ext): argSlot[i] is the
// slot holding the i'th switching op's raw argument value, and
// absSlot[i] is the slot holding that op's own (absolute) value.
func buildExtended(decomposed *tape.Tape) (ext *tape.Tape, argSlot, absSlot []int, s, m int) {
	n := decomposed.NumIndeps()
	c := tape.NewContext()

	xSlots := make([]int, n)
	for i := range xSlots {
		xSlots[i] = c.NewIndependent()
	}

	remap := make([]int, decomposed.NumOps())
	var cSlots []int
	indepPos := 0

	zeroIdx := -1
	zero := func() int {
		if zeroIdx < 0 {
			zeroIdx = c.RecordConst(0)
		}
		return zeroIdx
	}

	for i := 0; i < decomposed.NumOps(); i++ {
		kind := decomposed.OpKind(i)
		arg1, arg2 := decomposed.OpArgs(i)
		switch kind {
		case ops.Const:
			remap[i] = c.RecordConst(decomposed.OpConst(i))
		case ops.Indep:
			remap[i] = xSlots[indepPos]
			indepPos++
		case ops.Abs:
			argSlot = append(argSlot, arg1)
			absSlot = append(absSlot, i)
			// A fresh pass-through slot, not remap[arg1] directly: two
			// switching ops can share the same argument slot, and
			// SetDependent below is idempotent, so reusing remap[arg1]
			// as the dependent slot could silently collapse two rows
			// into one.
			cSlots = append(cSlots, c.RecordBinary(ops.Add, remap[arg1], zero()))
			remap[i] = c.NewIndependent()
		case ops.Add, ops.Sub, ops.Mul, ops.Div:
			remap[i] = c.RecordBinary(kind, remap[arg1], remap[arg2])
		default:
			remap[i] = c.RecordUnary(kind, remap[arg1])
		}
	}

	for _, slot := range cSlots {
		c.SetDependent(slot)
	}
	for _, slot := range decomposed.Deps() {
		c.SetDependent(remap[slot])
	}

	out, err := c.Finish()
	if err != nil {
		panic(err)
	}
	return out, argSlot, absSlot, len(cSlots), decomposed.NumDeps()
}
