// Package ir implements a small SSA-style graph for gradient
// computations: typed values, kinded nodes, block-structured control
// flow, and the mutation primitives optimization passes need (use
// replacement, O(1) node unlinking, cross-block moves).
//
// Structural invariants are fatal: destroying a node whose outputs still
// have uses, or detaching a use that was never recorded, panics. Such
// violations are defects in the calling pass, not runtime conditions.
package ir

// Graph owns a top-level block of nodes and hands out graph-unique value
// ids. A graph is not safe for concurrent mutation.
type Graph struct {
	block  *Block
	nextID int
}

// New returns an empty graph.
func New() *Graph {
	g := &Graph{}
	g.block = newBlock(g, nil)
	return g
}

// Block returns the top-level block.
func (g *Graph) Block() *Block { return g.block }

// Inputs returns the graph's input values.
func (g *Graph) Inputs() []*Value { return g.block.Inputs() }

// Outputs returns the graph's output values.
func (g *Graph) Outputs() []*Value { return g.block.Outputs() }

// AddInput declares a new graph input of the given type.
func (g *Graph) AddInput(t Type) *Value { return g.block.AddInput(t) }

// RegisterOutput threads v to the graph's exit.
func (g *Graph) RegisterOutput(v *Value) { g.block.RegisterOutput(v) }

// NewNode creates a detached node with the given kind and output count.
// Output types start unset and are assigned by the caller.
func (g *Graph) NewNode(kind Kind, outputs int) *Node {
	n := &Node{graph: g, kind: kind}
	for i := 0; i < outputs; i++ {
		n.AddOutput(nil)
	}
	return n
}

// NewAutogradZero creates a detached zero-sentinel node. Its output type
// is statically the zero sentinel.
func (g *Graph) NewAutogradZero() *Node {
	n := g.NewNode(AutogradZero, 1)
	n.Output().SetType(TensorUndefined(true))
	return n
}

// NewConstant creates a detached integer constant node.
func (g *Graph) NewConstant(v int64) *Node {
	n := g.NewNode(Constant, 1)
	n.ival = v
	n.Output().SetType(Int)
	return n
}

func (g *Graph) newValue(n *Node, t Type) *Value {
	v := &Value{node: n, id: g.nextID, typ: t}
	g.nextID++
	return v
}
