package values

import (
	"fmt"
	"strconv"

	"github.com/reeflective/argparse/internal/errors"
)

// tag discriminates the content of a Scalar.
type tag uint8

const (
	absent tag = iota
	boolTag
	intTag
	stringTag
)

// Scalar holds exactly one of: nothing, a bool, an int or a string.
// The zero Scalar is absent.
type Scalar struct {
	tag tag
	b   bool
	i   int
	s   string
}

// Bool returns a Scalar holding a boolean.
func Bool(b bool) Scalar { return Scalar{tag: boolTag, b: b} }

// Int returns a Scalar holding an integer.
func Int(i int) Scalar { return Scalar{tag: intTag, i: i} }

// Str returns a Scalar holding a string.
func Str(s string) Scalar { return Scalar{tag: stringTag, s: s} }

// Of converts a bool, int or string into a Scalar.
func Of(v any) (Scalar, error) {
	switch val := v.(type) {
	case bool:
		return Bool(val), nil
	case int:
		return Int(val), nil
	case string:
		return Str(val), nil
	case Scalar:
		return val, nil
	default:
		return Scalar{}, fmt.Errorf("%w: unsupported value type %T", errors.ErrTypeMismatch, v)
	}
}

// IsSet returns false for the absent Scalar.
func (s Scalar) IsSet() bool { return s.tag != absent }

// Fits returns true if the Scalar holds the type stored by options of kind k.
func (s Scalar) Fits(k Kind) bool {
	switch s.tag {
	case boolTag:
		return k.IsBool()
	case intTag:
		return k == Integer
	case stringTag:
		return k == String
	default:
		return false
	}
}

// Kind returns the option kind able to store this Scalar.
// Booleans report Flag; absent Scalars report false.
func (s Scalar) Kind() (Kind, bool) {
	switch s.tag {
	case boolTag:
		return Flag, true
	case intTag:
		return Integer, true
	case stringTag:
		return String, true
	default:
		return 0, false
	}
}

// AsBool returns the boolean held, or false if the Scalar is not a boolean.
func (s Scalar) AsBool() (bool, bool) { return s.b, s.tag == boolTag }

// AsInt returns the integer held, or false if the Scalar is not an integer.
func (s Scalar) AsInt() (int, bool) { return s.i, s.tag == intTag }

// AsString returns the string held, or false if the Scalar is not a string.
func (s Scalar) AsString() (string, bool) { return s.s, s.tag == stringTag }

// Interface returns the held value as a bool, int or string, or nil.
func (s Scalar) Interface() any {
	switch s.tag {
	case boolTag:
		return s.b
	case intTag:
		return s.i
	case stringTag:
		return s.s
	default:
		return nil
	}
}

// String formats the held value the way it is printed in help texts.
func (s Scalar) String() string {
	switch s.tag {
	case boolTag:
		return strconv.FormatBool(s.b)
	case intTag:
		return strconv.Itoa(s.i)
	case stringTag:
		return s.s
	default:
		return ""
	}
}

// Parse converts a command-line word into a Scalar for options of kind k.
// Integers must be entirely numeric. Flag and Help options take no value.
func Parse(k Kind, word string) (Scalar, error) {
	switch k {
	case Integer:
		n, err := strconv.Atoi(word)
		if err != nil {
			return Scalar{}, fmt.Errorf("invalid integer %q: %w", word, err)
		}

		return Int(n), nil
	case String:
		return Str(word), nil
	default:
		return Scalar{}, fmt.Errorf("%w: %s option takes no value", errors.ErrTypeMismatch, k)
	}
}
