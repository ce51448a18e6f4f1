package autogradzero

import (
	"go.uber.org/zap"

	"github.com/gradir/autogradzero/internal/debug"
	"github.com/gradir/autogradzero/ir"
)

// rewriteAccumulate resolves a zero-tolerant AutogradAdd against the
// current classification of its operands. First match wins:
//
//  1. a is Zero:            the sum is b; drop the node.
//  2. b is Zero:            the sum is a; drop the node.
//  3. both are Nonzero:     the tolerance is dead weight; replace with a
//     plain Add(a, b, 1) that downstream numeric passes can optimize.
//  4. otherwise either operand may still be the zero sentinel at runtime,
//     so the node stays and its output is Unknown.
func rewriteAccumulate(n *ir.Node, states lattice) {
	a, b := n.Input(0), n.Input(1)

	switch {
	case states.state(a) == Zero:
		// Zero + b == b
		debug.Trace("eliding AutogradAdd",
			zap.Int("output", n.Output().ID()), zap.Int("kept", b.ID()))
		n.Output().ReplaceAllUsesWith(b)
		n.Destroy()

	case states.state(b) == Zero:
		// a + Zero == a
		debug.Trace("eliding AutogradAdd",
			zap.Int("output", n.Output().ID()), zap.Int("kept", a.ID()))
		n.Output().ReplaceAllUsesWith(a)
		n.Destroy()

	case states.state(a) == Nonzero && states.state(b) == Nonzero:
		g := n.Graph()
		one := g.NewConstant(1)
		one.InsertBefore(n)
		add := g.NewNode(ir.Add, 1)
		add.AddInput(a)
		add.AddInput(b)
		add.AddInput(one.Output())
		add.Output().SetType(n.Output().Type())
		add.InsertBefore(n)
		states.set(add.Output(), Nonzero)
		debug.Trace("promoting AutogradAdd to Add",
			zap.Int("output", n.Output().ID()), zap.Int("promoted", add.Output().ID()))
		n.Output().ReplaceAllUsesWith(add.Output())
		n.Destroy()

	default:
		states.set(n.Output(), Unknown)
	}
}
