// Package autogradzero propagates autograd-zero information through a
// gradient graph and removes zero-handling machinery the propagation
// proves redundant.
//
// Gradient graphs produced by symbolic autodiff thread "no contribution"
// placeholders (zero sentinels) alongside real tensors. Three constructs
// cope with that at runtime: the zero-tolerant AutogradAdd, the
// AutogradAnyNonZero test, and the If block guarding a conditionally
// computed gradient term. This pass classifies every value as Zero,
// Nonzero or Unknown in a single forward sweep and rewrites those
// constructs wherever the classification is decisive: additions with a
// known-zero operand collapse to the other operand, additions with two
// known-real operands become plain Adds, and guarded blocks are deleted
// or inlined when the guard's outcome is already known.
//
// This is a deliberately limited pass. It only understands the operations
// autodiff emits; outputs of every other node kind are conservatively
// marked Unknown and left alone, and it never recurses into nested blocks
// other than the recognized guard pattern.
package autogradzero

import (
	"go.uber.org/zap"

	"github.com/gradir/autogradzero/internal/debug"
	"github.com/gradir/autogradzero/ir"
)

// Specialize classifies every value in g and rewrites redundant
// zero-handling in place. It mutates g and must own it exclusively for
// the duration of the call; it is not reentrant on the same graph.
func Specialize(g *ir.Graph) {
	states := make(lattice)
	for _, in := range g.Inputs() {
		states.set(in, seedState(in.Type()))
	}

	// Single forward sweep. The next node is captured before dispatch so
	// rewrites may delete the current node or insert around it without
	// disturbing the cursor; nodes a rewrite inserts are never revisited.
	for n := g.Block().First(); n != nil; {
		next := n.Next()
		dispatch(n, states)
		n = next
	}
}

func dispatch(n *ir.Node, states lattice) {
	switch n.Kind() {
	case ir.AutogradAdd:
		rewriteAccumulate(n, states)
	case ir.AutogradZero:
		states.set(n.Output(), Zero)
	case ir.Profile:
		// An input-less profile node is a bare invocation counter with
		// no tracked data flowing through it.
		if len(n.Inputs()) > 0 {
			states.set(n.Output(), Unknown)
		}
	case ir.BailOut, ir.Guard:
		states.set(n.Output(), guardState(n.Output().Type()))
	case ir.If:
		specializeGradOf(n, states)
	default:
		for _, o := range n.Outputs() {
			states.set(o, Unknown)
		}
	}
}

// cleanupDeadTest destroys a guard's test node once nothing consumes its
// outputs anymore. Called after the guarded If has been removed; a test
// shared by another guard keeps its uses and survives.
func cleanupDeadTest(test *ir.Node) {
	for _, o := range test.Outputs() {
		if len(o.Uses()) > 0 {
			return
		}
	}
	debug.Trace("removing dead test", zap.String("kind", string(test.Kind())))
	test.Destroy()
}
