package values

import (
	"fmt"

	"github.com/reeflective/argparse/internal/errors"
)

// Binding mirrors every value written to an option into storage owned by
// the caller. The storage must outlive the option and must not be written
// concurrently with a parse.
type Binding struct {
	kind  Kind
	multi bool
	write func(v Scalar)
}

// Bind returns a binding writing into ref, which must be one of
// *bool, *int, *string (single values) or *[]int, *[]string (sequences).
func Bind(ref any) (Binding, error) {
	switch ptr := ref.(type) {
	case *bool:
		if ptr == nil {
			break
		}

		return Binding{kind: Flag, write: func(v Scalar) { *ptr, _ = v.AsBool() }}, nil
	case *int:
		if ptr == nil {
			break
		}

		return Binding{kind: Integer, write: func(v Scalar) { *ptr, _ = v.AsInt() }}, nil
	case *string:
		if ptr == nil {
			break
		}

		return Binding{kind: String, write: func(v Scalar) { *ptr, _ = v.AsString() }}, nil
	case *[]int:
		if ptr == nil {
			break
		}

		return Binding{kind: Integer, multi: true, write: func(v Scalar) {
			n, _ := v.AsInt()
			*ptr = append(*ptr, n)
		}}, nil
	case *[]string:
		if ptr == nil {
			break
		}

		return Binding{kind: String, multi: true, write: func(v Scalar) {
			s, _ := v.AsString()
			*ptr = append(*ptr, s)
		}}, nil
	default:
		return Binding{}, fmt.Errorf("%w: cannot bind to %T", errors.ErrTypeMismatch, ref)
	}

	return Binding{}, errors.ErrNilObject
}

// IsSet returns false for the zero Binding.
func (b Binding) IsSet() bool { return b.write != nil }

// Accepts returns true if the binding can mirror an option of kind k
// (with the given cardinality). Flag bindings also accept Help options.
func (b Binding) Accepts(k Kind, multi bool) bool {
	if b.multi != multi {
		return false
	}

	if b.kind == Flag {
		return k.IsBool()
	}

	return b.kind == k
}

// IsMulti returns true if the binding appends to a slice.
func (b Binding) IsMulti() bool { return b.multi }

// Write mirrors v into the bound storage. It is a no-op on the zero Binding.
func (b Binding) Write(v Scalar) {
	if b.write != nil {
		b.write(v)
	}
}
