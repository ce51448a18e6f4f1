package ir

// Block is an ordered sequence of nodes plus the values threaded to the
// block's exit. Inputs are produced by the Param sentinel and outputs are
// the operands of the Return sentinel; the Return sentinel doubles as the
// head of the circular node list.
type Block struct {
	graph *Graph
	owner *Node
	param *Node
	ret   *Node
}

func newBlock(g *Graph, owner *Node) *Block {
	b := &Block{graph: g, owner: owner}
	b.param = &Node{graph: g, kind: Param, block: b}
	b.ret = &Node{graph: g, kind: Return, block: b}
	b.ret.prev = b.ret
	b.ret.next = b.ret
	return b
}

// Owner returns the node owning this block, or nil for a graph's
// top-level block.
func (b *Block) Owner() *Node { return b.owner }

// First returns the first node, or nil if the block is empty.
func (b *Block) First() *Node {
	if b.ret.next == b.ret {
		return nil
	}
	return b.ret.next
}

// Last returns the last node, or nil if the block is empty.
func (b *Block) Last() *Node {
	if b.ret.prev == b.ret {
		return nil
	}
	return b.ret.prev
}

// Append links a detached node at the end of the block.
func (b *Block) Append(n *Node) *Node { return n.InsertBefore(b.ret) }

// AddInput declares a new block input of the given type.
func (b *Block) AddInput(t Type) *Value { return b.param.AddOutput(t) }

// Inputs returns the block's input values.
func (b *Block) Inputs() []*Value { return b.param.outputs }

// RegisterOutput threads v to the block's exit.
func (b *Block) RegisterOutput(v *Value) { b.ret.AddInput(v) }

// Outputs returns the values threaded to the block's exit.
func (b *Block) Outputs() []*Value { return b.ret.inputs }

// destroy tears the block down: exit uses first, then nodes in reverse
// order so no node still has users when it goes.
func (b *Block) destroy() {
	b.ret.removeAllInputs()
	for n := b.Last(); n != nil; {
		prev := n.Prev()
		n.Destroy()
		n = prev
	}
}
