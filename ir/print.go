package ir

import (
	"fmt"
	"strings"
)

// String renders the graph in its textual form:
//
//	graph(%0 : Tensor(nonzero), %1 : Tensor):
//	  %2 : Tensor = AutogradAdd(%0, %1)
//	  %3 : bool = AutogradAnyNonZero(%2)
//	  %4 : Tensor = If(%3) {
//	    %5 : Tensor = Mul(%2, %2)
//	    -> (%5)
//	  }
//	  return (%4)
//
// Output is deterministic: values print as %<id> with ids assigned at
// creation, so graphs can be compared textually.
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString("graph(")
	for i, in := range g.Inputs() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s : %s", in, typeString(in.Type()))
	}
	sb.WriteString("):\n")
	writeBlockBody(&sb, g.block, 1)
	return sb.String()
}

func writeBlockBody(sb *strings.Builder, b *Block, depth int) {
	for n := b.First(); n != nil; n = n.Next() {
		writeNode(sb, n, depth)
	}
	sb.WriteString(strings.Repeat("  ", depth))
	if b.owner == nil {
		sb.WriteString("return (")
	} else {
		sb.WriteString("-> (")
	}
	writeValueList(sb, b.Outputs())
	sb.WriteString(")\n")
}

func writeNode(sb *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)
	for i, o := range n.outputs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%s : %s", o, typeString(o.Type()))
	}
	if len(n.outputs) > 0 {
		sb.WriteString(" = ")
	}
	sb.WriteString(string(n.kind))
	if n.kind == Constant {
		fmt.Fprintf(sb, "[value=%d]", n.ival)
	}
	sb.WriteString("(")
	writeValueList(sb, n.inputs)
	sb.WriteString(")")
	for _, blk := range n.blocks {
		sb.WriteString(" {\n")
		writeBlockBody(sb, blk, depth+1)
		sb.WriteString(indent)
		sb.WriteString("}")
	}
	sb.WriteString("\n")
}

func writeValueList(sb *strings.Builder, vs []*Value) {
	for i, v := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
}

func typeString(t Type) string {
	if t == nil {
		return "?"
	}
	return t.String()
}
