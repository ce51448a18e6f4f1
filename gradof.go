package autogradzero

import (
	"go.uber.org/zap"

	"github.com/gradir/autogradzero/internal/debug"
	"github.com/gradir/autogradzero/ir"
)

// specializeGradOf resolves an If node guarding a conditionally computed
// gradient term. The pattern is an If whose condition comes from an
// AutogradAnyNonZero test: branch into the real computation only if at
// least one tested operand is possibly nonzero.
//
// If every tested operand is Zero the branch never runs, so each If
// output is a zero sentinel. If every tested operand is Nonzero the
// branch always runs, so the body is hoisted into the enclosing block and
// the block boundary disappears. Anything else stays a runtime decision.
// An If guarded by anything other than the test is left untouched with
// Unknown outputs; so are loops and other block-bearing kinds, which hit
// the dispatcher's default arm instead.
func specializeGradOf(n *ir.Node, states lattice) {
	test := n.Input(0).Node()
	if test.Kind() != ir.AutogradAnyNonZero {
		markUnknown(n, states)
		return
	}

	allZero, allNonzero := true, true
	for _, v := range test.Inputs() {
		switch states.state(v) {
		case Zero:
			allNonzero = false
		case Nonzero:
			allZero = false
		default:
			allZero, allNonzero = false, false
		}
	}

	switch {
	case allZero:
		// Every contribution is absent, so every output is the sentinel.
		zero := n.Graph().NewAutogradZero()
		zero.InsertAfter(n)
		states.set(zero.Output(), Zero)
		debug.Trace("collapsing guarded block to zero",
			zap.Int("zero", zero.Output().ID()), zap.Int("outputs", len(n.Outputs())))
		for _, o := range n.Outputs() {
			o.ReplaceAllUsesWith(zero.Output())
		}
		n.Destroy()
		cleanupDeadTest(test)

	case allNonzero:
		// The branch is unconditional: hoist the body before the If,
		// preserving order, and thread its outputs past the boundary.
		body := n.Blocks()[0]
		for bn := body.First(); bn != nil; {
			next := bn.Next()
			bn.MoveBefore(n)
			bn = next
		}
		debug.Trace("inlining guarded block",
			zap.Int("outputs", len(n.Outputs())))
		for i, o := range n.Outputs() {
			bodyOut := body.Outputs()[i]
			o.ReplaceAllUsesWith(bodyOut)
			states.set(bodyOut, Nonzero)
		}
		n.Destroy()
		cleanupDeadTest(test)

	default:
		markUnknown(n, states)
	}
}

func markUnknown(n *ir.Node, states lattice) {
	for _, o := range n.Outputs() {
		states.set(o, Unknown)
	}
}
