package tape

import "github.com/born-ml/adv/internal/tape/ops"

// Context records a sequence of elementary operations into a tape. It is
// the only way to build a Tape: callers append independents, constants,
// and unary/binary ops in the order they should be evaluated, then call
// Finish to seal the recording and obtain a Tape ready for sweeps.
//
// A Context is not safe for concurrent use; each goroutine recording a
// function should own its own Context.
type Context struct {
	ops      []op
	indeps   []int
	deps     []int
	finished bool
}

// NewContext returns an empty recording context.
func NewContext() *Context {
	return &Context{}
}

// NewIndependent records a new free input variable and returns its slot
// index.
func (c *Context) NewIndependent() int {
	c.mustRecording()
	idx := len(c.ops)
	c.ops = append(c.ops, op{Kind: ops.Indep})
	c.indeps = append(c.indeps, idx)
	return idx
}

// RecordConst records a literal constant and returns its slot index.
func (c *Context) RecordConst(value float64) int {
	c.mustRecording()
	idx := len(c.ops)
	c.ops = append(c.ops, op{Kind: ops.Const, Value: value})
	return idx
}

// RecordUnary records a unary op over arg and returns its slot index.
//
// Panics if kind is not a unary op kind, or if arg is not an earlier slot
// on this context.
func (c *Context) RecordUnary(kind ops.Kind, arg int) int {
	c.mustRecording()
	if kind.IsLeaf() || kind.IsBinary() {
		panic("tape: RecordUnary called with non-unary kind " + kind.String())
	}
	c.mustValidOperand(arg)
	idx := len(c.ops)
	c.ops = append(c.ops, op{Kind: kind, Arg1: arg})
	return idx
}

// RecordBinary records a binary op over arg1 and arg2 and returns its
// slot index.
//
// Panics if kind is not a binary op kind, or if either operand is not an
// earlier slot on this context.
func (c *Context) RecordBinary(kind ops.Kind, arg1, arg2 int) int {
	c.mustRecording()
	if !kind.IsBinary() {
		panic("tape: RecordBinary called with non-binary kind " + kind.String())
	}
	c.mustValidOperand(arg1)
	c.mustValidOperand(arg2)
	idx := len(c.ops)
	c.ops = append(c.ops, op{Kind: kind, Arg1: arg1, Arg2: arg2})
	return idx
}

// SetDependent marks slot as one of the tape's dependent outputs, in the
// order outputs should be reported by the sweeps. If slot is already
// marked dependent, this is a no-op.
func (c *Context) SetDependent(slot int) {
	c.mustRecording()
	c.mustValidOperand(slot)
	for _, d := range c.deps {
		if d == slot {
			return
		}
	}
	c.deps = append(c.deps, slot)
}

// Finish seals the recording and returns the resulting Tape. The Context
// must not be used to record further operations afterward.
func (c *Context) Finish() (*Tape, error) {
	c.mustRecording()
	if len(c.deps) == 0 {
		return nil, ErrNoDependents
	}
	c.finished = true
	return &Tape{
		ops:    c.ops,
		indeps: c.indeps,
		deps:   c.deps,
	}, nil
}

func (c *Context) mustRecording() {
	if c.finished {
		panic(ErrTapeFinished)
	}
}

func (c *Context) mustValidOperand(idx int) {
	if idx < 0 || idx >= len(c.ops) {
		panic(ErrOperandOutOfRange)
	}
}
