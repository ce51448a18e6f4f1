package autogradzero

import "github.com/gradir/autogradzero/ir"

// State classifies what is statically known about a value's gradient
// contribution.
type State int

// The three lattice states. Unknown is deliberately the zero value: a
// value that has not been classified yet reads back as Unknown, never as
// a spurious guarantee.
const (
	Unknown State = iota // statically indeterminate
	Zero                 // guaranteed to be the zero sentinel
	Nonzero              // guaranteed to hold a real tensor
)

func (s State) String() string {
	switch s {
	case Zero:
		return "Zero"
	case Nonzero:
		return "Nonzero"
	default:
		return "Unknown"
	}
}

// lattice maps each classified value to its state. It is built and
// consumed within a single Specialize call: seeded from the graph inputs,
// grown monotonically as nodes are visited, never persisted.
type lattice map[*ir.Value]State

func (l lattice) state(v *ir.Value) State { return l[v] }

func (l lattice) set(v *ir.Value, s State) { l[v] = s }

// seedState derives the initial state of a graph input from its declared
// type:
//
//  1. a tensor type with an explicit definedness flag is Zero or Nonzero
//     per the flag;
//  2. a tensor type without the flag is Unknown;
//  3. a list of tensors is structurally guaranteed to hold real values
//     and starts Nonzero;
//  4. anything else is Unknown.
func seedState(t ir.Type) State {
	switch tt := t.(type) {
	case *ir.TensorType:
		if u := tt.Undefined(); u != nil {
			if *u {
				return Zero
			}
			return Nonzero
		}
		return Unknown
	case *ir.ListType:
		if _, ok := tt.Elem().(*ir.TensorType); ok {
			return Nonzero
		}
		return Unknown
	default:
		return Unknown
	}
}

// guardState derives the state of a type-refinement guard's output. Only
// an explicit definedness flag on a tensor type yields a guarantee.
func guardState(t ir.Type) State {
	tt, ok := t.(*ir.TensorType)
	if !ok {
		return Unknown
	}
	u := tt.Undefined()
	if u == nil {
		return Unknown
	}
	if *u {
		return Zero
	}
	return Nonzero
}
