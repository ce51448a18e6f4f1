package ir

// Type is the static type of a Value. Gradient graphs use a small closed
// set: tensors (optionally refined with a definedness flag), lists of
// tensors, and the scalar types carried by constants and branch
// conditions.
type Type interface {
	String() string
	isType()
}

// TensorType is the type of a tensor-valued entity. It may carry a
// definedness refinement stating whether the value is statically known to
// be the zero sentinel (no gradient contribution) or a real tensor.
type TensorType struct {
	undefined *bool
}

// Tensor returns the unrefined tensor type: definedness is unknown at
// compile time.
func Tensor() *TensorType { return &TensorType{} }

// TensorUndefined returns a tensor type refined with a definedness flag.
// true means the value is statically the zero sentinel; false means it is
// statically a real tensor.
func TensorUndefined(undefined bool) *TensorType {
	return &TensorType{undefined: &undefined}
}

// Undefined reports the definedness refinement. nil means no refinement
// is present.
func (t *TensorType) Undefined() *bool { return t.undefined }

func (t *TensorType) String() string {
	switch {
	case t.undefined == nil:
		return "Tensor"
	case *t.undefined:
		return "Tensor(zero)"
	default:
		return "Tensor(nonzero)"
	}
}

func (t *TensorType) isType() {}

// ListType is a homogeneous list type. Gradient graphs use it as
// list-of-tensors.
type ListType struct {
	elem Type
}

// ListOf returns the list type with the given element type.
func ListOf(elem Type) *ListType { return &ListType{elem: elem} }

// Elem returns the element type.
func (t *ListType) Elem() Type { return t.elem }

func (t *ListType) String() string { return t.elem.String() + "[]" }

func (t *ListType) isType() {}

// ScalarType is a primitive scalar type.
type ScalarType string

// The scalar types used by gradient graphs.
const (
	Int   ScalarType = "int"
	Float ScalarType = "float"
	Bool  ScalarType = "bool"
)

func (t ScalarType) String() string { return string(t) }

func (t ScalarType) isType() {}
