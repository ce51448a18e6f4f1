package ir

// Kind identifies a node's operation. The set is open: passes dispatch on
// the kinds they recognize and treat everything else conservatively.
type Kind string

// Kinds recognized by the autograd machinery.
const (
	// AutogradZero produces the canonical "no gradient contribution"
	// placeholder. It consumes no inputs and carries no payload.
	AutogradZero Kind = "AutogradZero"

	// AutogradAdd is a zero-tolerant addition: result = a + b where
	// either operand may be the zero sentinel at runtime.
	AutogradAdd Kind = "AutogradAdd"

	// AutogradAnyNonZero tests whether at least one of its inputs holds
	// a real tensor rather than the zero sentinel.
	AutogradAnyNonZero Kind = "AutogradAnyNonZero"

	// Profile is profiling instrumentation. With an input it is an
	// opaque pass-through of the observed value; without one it is a
	// bare invocation counter.
	Profile Kind = "Profile"

	// BailOut and Guard are type-refinement guards: their output type
	// may carry a definedness flag established at runtime. BailOut is
	// the dynamic variant, Guard the static one.
	BailOut Kind = "BailOut"
	Guard   Kind = "Guard"

	// If is a conditional node owning a single nested body block, the
	// lowered form of a conditionally computed gradient term.
	If Kind = "If"

	// Add is a plain elementwise addition (a, b, alpha) computing
	// a + alpha*b, with no tolerance for zero sentinels.
	Add Kind = "Add"

	// Constant produces a scalar constant.
	Constant Kind = "Constant"

	// Param and Return are block sentinels: Param produces a block's
	// inputs, Return consumes its outputs. Neither appears in node
	// iteration.
	Param  Kind = "Param"
	Return Kind = "Return"
)
