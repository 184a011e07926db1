package tape

import "github.com/born-ml/adv/internal/tape/ops"

// Forward runs a first-order forward sweep at x in the direction dx,
// returning both the dependent outputs' value y and their directional
// derivative dy:
//
//	dy = J(x) * dx
//
// where J is the tape's (generalized, for switching ops) Jacobian.
//
// Returns ErrLengthMismatch if x or dx does not have length t.NumIndeps.
func (t *Tape) Forward(x, dx []float64) (y, dy []float64, err error) {
	if len(x) != len(t.indeps) || len(dx) != len(t.indeps) {
		return nil, nil, ErrLengthMismatch
	}
	vals, err := t.evalValues(x)
	if err != nil {
		return nil, nil, err
	}
	tans, err := t.evalTangents(vals, dx)
	if err != nil {
		return nil, nil, err
	}
	return gather(vals, t.deps), gather(tans, t.deps), nil
}

func (t *Tape) evalTangents(vals, dx []float64) ([]float64, error) {
	tans := make([]float64, len(t.ops))
	indepPos := 0
	for i, o := range t.ops {
		a1, a2 := o.Arg1, o.Arg2
		switch o.Kind {
		case ops.Const:
			tans[i] = 0
		case ops.Indep:
			tans[i] = dx[indepPos]
			indepPos++
		case ops.Add:
			tans[i] = ops.TangentAdd(tans[a1], tans[a2])
		case ops.Sub:
			tans[i] = ops.TangentSub(tans[a1], tans[a2])
		case ops.Mul:
			tans[i] = ops.TangentMul(vals[a1], vals[a2], tans[a1], tans[a2])
		case ops.Div:
			tans[i] = ops.TangentDiv(vals[a1], vals[a2], tans[a1], tans[a2])
		case ops.Sin:
			tans[i] = ops.TangentSin(vals[a1], tans[a1])
		case ops.Cos:
			tans[i] = ops.TangentCos(vals[a1], tans[a1])
		case ops.Tan:
			v, err := ops.TangentTan(vals[a1], tans[a1])
			if err != nil {
				return nil, &DomainError{Pos: i, Kind: o.Kind.String(), Err: err}
			}
			tans[i] = v
		case ops.Exp:
			tans[i] = ops.TangentExp(vals[a1], tans[a1])
		case ops.Ln:
			v, err := ops.TangentLn(vals[a1], tans[a1])
			if err != nil {
				return nil, &DomainError{Pos: i, Kind: o.Kind.String(), Err: err}
			}
			tans[i] = v
		case ops.Abs:
			tans[i] = ops.TangentAbs(vals[a1], tans[a1])
		case ops.Min:
			tans[i] = ops.TangentMin(vals[a1], vals[a2], tans[a1], tans[a2])
		case ops.Max:
			tans[i] = ops.TangentMax(vals[a1], vals[a2], tans[a1], tans[a2])
		case ops.Neg:
			tans[i] = ops.TangentNeg(tans[a1])
		}
	}
	return tans, nil
}
