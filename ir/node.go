package ir

import "fmt"

// Node is a single operation: a kind tag, ordered borrowed inputs,
// ordered owned outputs, and optionally nested blocks. Nodes inside a
// block form an intrusive circular doubly-linked list, so unlinking is
// O(1) and never leaves a dangling back-reference.
type Node struct {
	graph   *Graph
	block   *Block
	kind    Kind
	inputs  []*Value
	outputs []*Value
	blocks  []*Block
	ival    int64

	prev, next *Node
}

// Graph returns the owning graph.
func (n *Node) Graph() *Graph { return n.graph }

// Kind returns the node's operation tag.
func (n *Node) Kind() Kind { return n.kind }

// Input returns the i-th operand.
func (n *Node) Input(i int) *Value { return n.inputs[i] }

// Inputs returns the ordered operands. Callers must not mutate the slice.
func (n *Node) Inputs() []*Value { return n.inputs }

// Output returns the node's first output.
func (n *Node) Output() *Value { return n.outputs[0] }

// Outputs returns the ordered outputs. Callers must not mutate the slice.
func (n *Node) Outputs() []*Value { return n.outputs }

// Blocks returns the nested blocks, if any.
func (n *Node) Blocks() []*Block { return n.blocks }

// Int returns the integer payload of a Constant node.
func (n *Node) Int() int64 { return n.ival }

// AddInput appends v as the last operand and records the use.
func (n *Node) AddInput(v *Value) *Node {
	n.inputs = append(n.inputs, v)
	v.addUse(Use{User: n, Offset: len(n.inputs) - 1})
	return n
}

// AddOutput appends a fresh output value of the given type.
func (n *Node) AddOutput(t Type) *Value {
	v := n.graph.newValue(n, t)
	n.outputs = append(n.outputs, v)
	return v
}

// AddBlock appends a fresh nested block owned by n.
func (n *Node) AddBlock() *Block {
	b := newBlock(n.graph, n)
	n.blocks = append(n.blocks, b)
	return b
}

// Next returns the following node in the owning block, or nil at the end.
func (n *Node) Next() *Node {
	if n.block == nil || n.next == n.block.ret {
		return nil
	}
	return n.next
}

// Prev returns the preceding node in the owning block, or nil at the
// start.
func (n *Node) Prev() *Node {
	if n.block == nil || n.prev == n.block.ret {
		return nil
	}
	return n.prev
}

// InsertBefore links the detached node n immediately before pos.
func (n *Node) InsertBefore(pos *Node) *Node {
	if n.block != nil {
		panic(fmt.Sprintf("ir: inserting %q node that is already linked", n.kind))
	}
	n.block = pos.block
	n.prev = pos.prev
	n.next = pos
	pos.prev.next = n
	pos.prev = n
	return n
}

// InsertAfter links the detached node n immediately after pos.
func (n *Node) InsertAfter(pos *Node) *Node {
	return n.InsertBefore(pos.next)
}

// MoveBefore unlinks n from its current block and relinks it immediately
// before pos, which may live in a different block.
func (n *Node) MoveBefore(pos *Node) {
	n.unlink()
	n.InsertBefore(pos)
}

// Destroy removes n from its block and detaches it from its operands' use
// lists. Nested blocks are torn down along with every node they contain.
// Destroying a node whose outputs still have uses is a structural defect
// and panics.
func (n *Node) Destroy() {
	for _, o := range n.outputs {
		if len(o.uses) > 0 {
			panic(fmt.Sprintf("ir: destroying %q node but output %s still has %d uses", n.kind, o, len(o.uses)))
		}
	}
	for _, b := range n.blocks {
		b.destroy()
	}
	n.blocks = nil
	n.removeAllInputs()
	if n.block != nil {
		n.unlink()
	}
}

func (n *Node) removeAllInputs() {
	for i, in := range n.inputs {
		in.dropUse(Use{User: n, Offset: i})
	}
	n.inputs = nil
}

func (n *Node) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next, n.block = nil, nil, nil
}
