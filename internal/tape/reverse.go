package tape

import "github.com/born-ml/adv/internal/tape/ops"

// Reverse runs a first-order reverse sweep at x, weighting the dependent
// outputs by bary (one weight per entry of t.Deps, in order), and
// returns both the dependent outputs' value y and the gradient xbar of
// the weighted sum of outputs with respect to every independent
// variable:
//
//	xbar = bary^T * J(x)
//
// where J is the tape's (generalized, for switching ops) Jacobian. A row
// of the full Jacobian is obtained by seeding bary with a unit vector.
//
// Returns ErrLengthMismatch if x does not have length t.NumIndeps or
// bary does not have length t.NumDeps.
func (t *Tape) Reverse(x, bary []float64) (y, xbar []float64, err error) {
	if len(x) != len(t.indeps) {
		return nil, nil, ErrLengthMismatch
	}
	if len(bary) != len(t.deps) {
		return nil, nil, ErrLengthMismatch
	}
	vals, err := t.evalValues(x)
	if err != nil {
		return nil, nil, err
	}
	bars, err := t.evalAdjoints(vals, bary)
	if err != nil {
		return nil, nil, err
	}
	xbar = make([]float64, len(t.indeps))
	for i, slot := range t.indeps {
		xbar[i] = bars[slot]
	}
	return gather(vals, t.deps), xbar, nil
}

func (t *Tape) evalAdjoints(vals, bary []float64) ([]float64, error) {
	bars := make([]float64, len(t.ops))
	for i, slot := range t.deps {
		bars[slot] += bary[i]
	}

	for i := len(t.ops) - 1; i >= 0; i-- {
		o := t.ops[i]
		a1, a2 := o.Arg1, o.Arg2
		bar := bars[i]
		switch o.Kind {
		case ops.Const, ops.Indep:
			// leaves: nothing to propagate further
		case ops.Add:
			b1, b2 := ops.AdjointAdd(bar)
			bars[a1] += b1
			bars[a2] += b2
		case ops.Sub:
			b1, b2 := ops.AdjointSub(bar)
			bars[a1] += b1
			bars[a2] += b2
		case ops.Mul:
			b1, b2 := ops.AdjointMul(vals[a1], vals[a2], bar)
			bars[a1] += b1
			bars[a2] += b2
		case ops.Div:
			b1, b2 := ops.AdjointDiv(vals[a1], vals[a2], bar)
			bars[a1] += b1
			bars[a2] += b2
		case ops.Sin:
			bars[a1] += ops.AdjointSin(vals[a1], bar)
		case ops.Cos:
			bars[a1] += ops.AdjointCos(vals[a1], bar)
		case ops.Tan:
			b1, err := ops.AdjointTan(vals[a1], bar)
			if err != nil {
				return nil, &DomainError{Pos: i, Kind: o.Kind.String(), Err: err}
			}
			bars[a1] += b1
		case ops.Exp:
			bars[a1] += ops.AdjointExp(vals[i], bar)
		case ops.Ln:
			b1, err := ops.AdjointLn(vals[a1], bar)
			if err != nil {
				return nil, &DomainError{Pos: i, Kind: o.Kind.String(), Err: err}
			}
			bars[a1] += b1
		case ops.Abs:
			bars[a1] += ops.AdjointAbs(vals[a1], bar)
		case ops.Min:
			b1, b2 := ops.AdjointMin(vals[a1], vals[a2], bar)
			bars[a1] += b1
			bars[a2] += b2
		case ops.Max:
			b1, b2 := ops.AdjointMax(vals[a1], vals[a2], bar)
			bars[a1] += b1
			bars[a2] += b2
		case ops.Neg:
			bars[a1] += ops.AdjointNeg(bar)
		}
	}
	return bars, nil
}
