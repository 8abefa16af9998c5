package option

import (
	"fmt"

	"github.com/reeflective/argparse/internal/errors"
	"github.com/reeflective/argparse/internal/values"
)

// Set writes a value to the option: booleans and single values are
// overwritten, multi-value options append. The value is mirrored to the
// storage given to Store/StoreValues, if any.
func (o *Option) Set(v values.Scalar) error {
	if !v.Fits(o.kind) {
		return fmt.Errorf("%w: cannot set %q on %s option --%s", errors.ErrTypeMismatch, v, o.kind, o.long)
	}

	if o.multi {
		if err := o.seq.Append(v); err != nil {
			return err
		}
	} else {
		o.value = v
	}

	o.extern.Write(v)

	return nil
}

// Activate sets a flag or help option to true.
func (o *Option) Activate() error {
	if !o.kind.IsBool() {
		return fmt.Errorf("%w: %s option --%s requires a value", errors.ErrTypeMismatch, o.kind, o.long)
	}

	return o.Set(values.Bool(true))
}

// Value returns the value of a single-value option, or its default
// when it has not been set.
func (o *Option) Value() (values.Scalar, error) {
	if o.multi {
		return values.Scalar{}, fmt.Errorf("%w: option --%s is multi-value", errors.ErrTypeMismatch, o.long)
	}

	if o.value.IsSet() {
		return o.value, nil
	}

	if o.def.IsSet() {
		return o.def, nil
	}

	return values.Scalar{}, fmt.Errorf("%w: --%s", errors.ErrNoValue, o.long)
}

// ValueAt returns the value at index i of a multi-value option.
func (o *Option) ValueAt(i int) (values.Scalar, error) {
	if !o.multi {
		return values.Scalar{}, fmt.Errorf("%w: option --%s is not multi-value", errors.ErrTypeMismatch, o.long)
	}

	v, err := o.seq.At(i)
	if err != nil {
		return v, fmt.Errorf("option --%s: %w", o.long, err)
	}

	return v, nil
}

// Count returns the number of values held: the sequence length for
// multi-value options, otherwise 1 if the option has been set.
func (o *Option) Count() int {
	if o.multi {
		return o.seq.Len()
	}

	if o.value.IsSet() {
		return 1
	}

	return 0
}

// Valid returns true if a single-value option has a value or a default,
// or if a multi-value option holds at least its minimum number of values.
func (o *Option) Valid() bool {
	if o.multi {
		return o.seq.Len() >= o.minArgs
	}

	return o.value.IsSet() || o.def.IsSet()
}

// BoolValue returns the value of a flag or help option.
func (o *Option) BoolValue() (bool, error) {
	v, err := o.Value()
	if err != nil {
		return false, err
	}

	b, ok := v.AsBool()
	if !ok {
		return false, o.mismatch(values.Flag)
	}

	return b, nil
}

// IntValue returns the value of a single-value integer option.
func (o *Option) IntValue() (int, error) {
	v, err := o.Value()
	if err != nil {
		return 0, err
	}

	n, ok := v.AsInt()
	if !ok {
		return 0, o.mismatch(values.Integer)
	}

	return n, nil
}

// IntValueAt returns the value at index i of a multi-value integer option.
func (o *Option) IntValueAt(i int) (int, error) {
	if o.kind != values.Integer {
		return 0, o.mismatch(values.Integer)
	}

	v, err := o.ValueAt(i)
	if err != nil {
		return 0, err
	}

	n, _ := v.AsInt()

	return n, nil
}

// StringValue returns the value of a single-value string option.
func (o *Option) StringValue() (string, error) {
	v, err := o.Value()
	if err != nil {
		return "", err
	}

	s, ok := v.AsString()
	if !ok {
		return "", o.mismatch(values.String)
	}

	return s, nil
}

// StringValueAt returns the value at index i of a multi-value string option.
func (o *Option) StringValueAt(i int) (string, error) {
	if o.kind != values.String {
		return "", o.mismatch(values.String)
	}

	v, err := o.ValueAt(i)
	if err != nil {
		return "", err
	}

	s, _ := v.AsString()

	return s, nil
}

// Ints returns a copy of the values of a multi-value integer option.
func (o *Option) Ints() []int { return o.seq.Ints() }

// Strings returns a copy of the values of a multi-value string option.
func (o *Option) Strings() []string { return o.seq.Strings() }

func (o *Option) mismatch(want values.Kind) error {
	return fmt.Errorf("%w: option --%s is a %s option, not %s", errors.ErrTypeMismatch, o.long, o.kind, want)
}
