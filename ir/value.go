package ir

import (
	"fmt"
	"strconv"
)

// Use records a single consumer of a value: the using node and the index
// of the operand slot it occupies.
type Use struct {
	User   *Node
	Offset int
}

// Value is an SSA-style entity: produced by exactly one node (block
// inputs are produced by their block's Param sentinel) and consumed
// through a tracked use list.
type Value struct {
	node *Node
	id   int
	typ  Type
	uses []Use
}

// Node returns the producing node. For graph and block inputs this is the
// owning block's Param sentinel.
func (v *Value) Node() *Node { return v.node }

// ID returns the value's graph-unique id, assigned at creation in
// ascending order.
func (v *Value) ID() int { return v.id }

// Type returns the value's static type.
func (v *Value) Type() Type { return v.typ }

// SetType sets the value's static type.
func (v *Value) SetType(t Type) { v.typ = t }

// Uses returns the live use list. Callers must not mutate it.
func (v *Value) Uses() []Use { return v.uses }

// ReplaceAllUsesWith redirects every use of v to r. After the call v has
// no uses and its producing node can be destroyed safely.
func (v *Value) ReplaceAllUsesWith(r *Value) {
	if v == r {
		return
	}
	for _, u := range v.uses {
		u.User.inputs[u.Offset] = r
		r.uses = append(r.uses, u)
	}
	v.uses = nil
}

func (v *Value) String() string { return "%" + strconv.Itoa(v.id) }

func (v *Value) addUse(u Use) { v.uses = append(v.uses, u) }

func (v *Value) dropUse(u Use) {
	for i := range v.uses {
		if v.uses[i] == u {
			v.uses = append(v.uses[:i], v.uses[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("ir: %s has no use by %q node at offset %d", v, u.User.kind, u.Offset))
}
