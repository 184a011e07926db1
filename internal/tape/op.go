package tape

import "github.com/born-ml/adv/internal/tape/ops"

// op is a single recorded elementary operation. It occupies exactly one
// slot in a tape's value buffer, identified by its own index; Arg1/Arg2
// are indices into that same buffer and are always strictly less than
// the op's own index, which keeps a tape acyclic and its operand graph
// trivially topologically ordered by construction.
type op struct {
	Kind ops.Kind
	Arg1 int
	Arg2 int

	// Value carries a literal payload for Const ops (the constant's value)
	// and is otherwise unused; everything else is recomputed by the sweeps
	// from operand slots.
	Value float64
}
