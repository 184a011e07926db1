package tape

import "github.com/born-ml/adv/internal/tape/ops"

// Tape is a finished, immutable recording of an abs-factorable scalar
// function: a sequence of elementary ops, each occupying one slot,
// together with the slots marked independent (free inputs) and
// dependent (reported outputs).
//
// A Tape can be swept any number of times, from any number of
// goroutines, since sweeping never mutates the recording.
type Tape struct {
	ops    []op
	indeps []int
	deps   []int
}

// NumIndeps returns the number of independent input variables.
func (t *Tape) NumIndeps() int {
	return len(t.indeps)
}

// NumDeps returns the number of reported dependent outputs.
func (t *Tape) NumDeps() int {
	return len(t.deps)
}

// NumOps returns the total number of recorded slots.
func (t *Tape) NumOps() int {
	return len(t.ops)
}

// NumAbs returns the number of switching ops (Abs, Min, Max) recorded on
// the tape. After AbsDecompose, Min and Max have been rewritten in terms
// of Abs, so this equals the number of explicit switching variables in
// the abs-normal form.
func (t *Tape) NumAbs() int {
	n := 0
	for _, o := range t.ops {
		if o.Kind.IsSwitching() {
			n++
		}
	}
	return n
}

// Indeps returns the slot indices of the independent variables, in
// recording order.
func (t *Tape) Indeps() []int {
	out := make([]int, len(t.indeps))
	copy(out, t.indeps)
	return out
}

// Deps returns the slot indices of the dependent outputs, in the order
// they were first marked dependent. Each slot appears at most once.
func (t *Tape) Deps() []int {
	out := make([]int, len(t.deps))
	copy(out, t.deps)
	return out
}

// OpKind returns the elementary operation kind recorded at slot i.
func (t *Tape) OpKind(i int) ops.Kind {
	return t.ops[i].Kind
}

// OpArgs returns the operand slot indices recorded at slot i. For unary
// ops arg2 is always 0 and must be ignored; for Const and Indep both are
// always 0 and must be ignored.
func (t *Tape) OpArgs(i int) (arg1, arg2 int) {
	return t.ops[i].Arg1, t.ops[i].Arg2
}

// OpConst returns the literal value recorded at slot i. It is only
// meaningful when OpKind(i) == ops.Const.
func (t *Tape) OpConst(i int) float64 {
	return t.ops[i].Value
}

// AbsDecompose returns a new tape in which every Min and Max op has been
// structurally rewritten in terms of Abs, using the identities
//
//	max(a, b) = 0.5*(a+b) + 0.5*|a-b|
//	min(a, b) = 0.5*(a+b) - 0.5*|a-b|
//
// Every switching op on the resulting tape is therefore an Abs applied
// to a smooth (affine-in-its-inputs) argument, which is the explicit
// switching-variable shape the abs-normal driver requires. Values,
// tangents, and adjoints computed on the decomposed tape agree with the
// original everywhere the original is differentiable.
func (t *Tape) AbsDecompose() *Tape {
	c := NewContext()
	remap := make([]int, len(t.ops))
	halfIdx := -1
	half := func() int {
		if halfIdx < 0 {
			halfIdx = c.RecordConst(0.5)
		}
		return halfIdx
	}

	for i, o := range t.ops {
		switch o.Kind {
		case ops.Const:
			remap[i] = c.RecordConst(o.Value)
		case ops.Indep:
			remap[i] = c.NewIndependent()
		case ops.Min, ops.Max:
			a, b := remap[o.Arg1], remap[o.Arg2]
			sum := c.RecordBinary(ops.Add, a, b)
			diff := c.RecordBinary(ops.Sub, a, b)
			absDiff := c.RecordUnary(ops.Abs, diff)
			sumHalf := c.RecordBinary(ops.Mul, sum, half())
			diffHalf := c.RecordBinary(ops.Mul, absDiff, half())
			if o.Kind == ops.Max {
				remap[i] = c.RecordBinary(ops.Add, sumHalf, diffHalf)
			} else {
				remap[i] = c.RecordBinary(ops.Sub, sumHalf, diffHalf)
			}
		case ops.Add, ops.Sub, ops.Mul, ops.Div:
			remap[i] = c.RecordBinary(o.Kind, remap[o.Arg1], remap[o.Arg2])
		default:
			remap[i] = c.RecordUnary(o.Kind, remap[o.Arg1])
		}
	}

	for _, d := range t.deps {
		c.SetDependent(remap[d])
	}

	out, err := c.Finish()
	if err != nil {
		// t already had at least one dependent, so the replay does too;
		// this would indicate a bug in the rewrite above, not bad input.
		panic(err)
	}
	return out
}
