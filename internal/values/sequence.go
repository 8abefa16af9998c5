package values

import (
	"fmt"

	"github.com/reeflective/argparse/internal/errors"
)

// Sequence is the ordered storage of a multi-value option.
// Only one of its slices is ever used, depending on the option kind.
type Sequence struct {
	kind Kind
	ints []int
	strs []string
}

// NewSequence returns an empty sequence for options of kind k,
// which must be Integer or String.
func NewSequence(k Kind) (Sequence, error) {
	if !k.TakesValue() {
		return Sequence{}, fmt.Errorf("%w: %s option cannot hold a sequence", errors.ErrTypeMismatch, k)
	}

	return Sequence{kind: k}, nil
}

// Append adds a value at the end of the sequence.
func (q *Sequence) Append(v Scalar) error {
	switch q.kind {
	case Integer:
		n, ok := v.AsInt()
		if !ok {
			return fmt.Errorf("%w: cannot append %q to an int sequence", errors.ErrTypeMismatch, v)
		}
		q.ints = append(q.ints, n)
	case String:
		s, ok := v.AsString()
		if !ok {
			return fmt.Errorf("%w: cannot append %q to a string sequence", errors.ErrTypeMismatch, v)
		}
		q.strs = append(q.strs, s)
	default:
		return fmt.Errorf("%w: %s sequence", errors.ErrTypeMismatch, q.kind)
	}

	return nil
}

// Len returns the number of values stored.
func (q *Sequence) Len() int {
	if q.kind == Integer {
		return len(q.ints)
	}

	return len(q.strs)
}

// At returns the value at index i.
func (q *Sequence) At(i int) (Scalar, error) {
	if i < 0 || i >= q.Len() {
		return Scalar{}, fmt.Errorf("%w: index %d with %d values", errors.ErrOutOfRange, i, q.Len())
	}

	if q.kind == Integer {
		return Int(q.ints[i]), nil
	}

	return Str(q.strs[i]), nil
}

// Ints returns a copy of the integers stored.
func (q *Sequence) Ints() []int {
	return append([]int(nil), q.ints...)
}

// Strings returns a copy of the strings stored.
func (q *Sequence) Strings() []string {
	return append([]string(nil), q.strs...)
}
