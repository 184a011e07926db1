package tape

import "github.com/born-ml/adv/internal/tape/ops"

// Values evaluates the tape at x and returns every slot's value, in
// recording order. This is a superset of ZeroOrder's result, exposed for
// drivers that need intermediate values — such as the abs-normal driver
// reading off a switching op's pre-abs argument — rather than just the
// tape's declared dependents.
//
// Returns ErrLengthMismatch if len(x) does not match t.NumIndeps.
func (t *Tape) Values(x []float64) ([]float64, error) {
	if len(x) != len(t.indeps) {
		return nil, ErrLengthMismatch
	}
	return t.evalValues(x)
}

// ZeroOrder evaluates the tape at x, the values of its independent
// variables in recording order, and returns the tape's dependent outputs
// in recording order.
//
// Returns ErrLengthMismatch if len(x) does not match t.NumIndeps.
func (t *Tape) ZeroOrder(x []float64) ([]float64, error) {
	if len(x) != len(t.indeps) {
		return nil, ErrLengthMismatch
	}
	vals, err := t.evalValues(x)
	if err != nil {
		return nil, err
	}
	return gather(vals, t.deps), nil
}

// evalValues runs the zero-order sweep over the full tape and returns
// every slot's value, for reuse by the forward and reverse sweeps.
func (t *Tape) evalValues(x []float64) ([]float64, error) {
	vals := make([]float64, len(t.ops))
	indepPos := 0
	for i, o := range t.ops {
		switch o.Kind {
		case ops.Const:
			vals[i] = o.Value
		case ops.Indep:
			vals[i] = x[indepPos]
			indepPos++
		case ops.Add:
			vals[i] = ops.EvalAdd(vals[o.Arg1], vals[o.Arg2])
		case ops.Sub:
			vals[i] = ops.EvalSub(vals[o.Arg1], vals[o.Arg2])
		case ops.Mul:
			vals[i] = ops.EvalMul(vals[o.Arg1], vals[o.Arg2])
		case ops.Div:
			v, err := ops.EvalDiv(vals[o.Arg1], vals[o.Arg2])
			if err != nil {
				return nil, &DomainError{Pos: i, Kind: o.Kind.String(), Err: err}
			}
			vals[i] = v
		case ops.Sin:
			vals[i] = ops.EvalSin(vals[o.Arg1])
		case ops.Cos:
			vals[i] = ops.EvalCos(vals[o.Arg1])
		case ops.Tan:
			v, err := ops.EvalTan(vals[o.Arg1])
			if err != nil {
				return nil, &DomainError{Pos: i, Kind: o.Kind.String(), Err: err}
			}
			vals[i] = v
		case ops.Exp:
			vals[i] = ops.EvalExp(vals[o.Arg1])
		case ops.Ln:
			v, err := ops.EvalLn(vals[o.Arg1])
			if err != nil {
				return nil, &DomainError{Pos: i, Kind: o.Kind.String(), Err: err}
			}
			vals[i] = v
		case ops.Abs:
			vals[i] = ops.EvalAbs(vals[o.Arg1])
		case ops.Min:
			vals[i] = ops.EvalMin(vals[o.Arg1], vals[o.Arg2])
		case ops.Max:
			vals[i] = ops.EvalMax(vals[o.Arg1], vals[o.Arg2])
		case ops.Neg:
			vals[i] = ops.EvalNeg(vals[o.Arg1])
		}
	}
	return vals, nil
}

func gather(vals []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, s := range idx {
		out[i] = vals[s]
	}
	return out
}
