package commands

import "github.com/born-ml/adv/scalar"

// preset is a small named abs-factorable function, recorded fresh for
// every invocation so eval can run the full driver suite over it. The
// set mirrors the worked examples used to validate the engine. Between
// them the presets use Add, Sub, Mul, Div, Sin, Exp, Abs and Max; no
// preset uses Cos, Tan, Ln, Neg or Min.
type preset struct {
	n     int
	build func(c *scalar.Context, x []scalar.Value) []scalar.Value
}

var presets = map[string]preset{
	"square": {
		n: 1,
		build: func(c *scalar.Context, x []scalar.Value) []scalar.Value {
			return []scalar.Value{x[0].Mul(x[0])}
		},
	},
	"sincos": {
		n: 2,
		build: func(c *scalar.Context, x []scalar.Value) []scalar.Value {
			return []scalar.Value{x[0].Sin().Add(x[1])}
		},
	},
	"absline": {
		n: 1,
		build: func(c *scalar.Context, x []scalar.Value) []scalar.Value {
			return []scalar.Value{x[0].Abs().Add(x[0].ConstFrom(1))}
		},
	},
	"maxxy": {
		n: 2,
		build: func(c *scalar.Context, x []scalar.Value) []scalar.Value {
			return []scalar.Value{scalar.Max(x[0], x[1])}
		},
	},
	"sigmoid": {
		n: 1,
		build: func(c *scalar.Context, x []scalar.Value) []scalar.Value {
			e := x[0].Exp()
			return []scalar.Value{e.Div(e.ConstFrom(1).Add(e))}
		},
	},
	"absdiff": {
		n: 2,
		build: func(c *scalar.Context, x []scalar.Value) []scalar.Value {
			return []scalar.Value{x[0].Sub(x[1]).Abs()}
		},
	},
	"halfpipe": {
		n: 2,
		build: func(c *scalar.Context, x []scalar.Value) []scalar.Value {
			zero := x[0].ConstFrom(0)
			inner := scalar.Max(x[0], zero)
			shifted := x[1].Mul(x[1]).Sub(inner)
			return []scalar.Value{scalar.Max(shifted, zero)}
		},
	},
}
