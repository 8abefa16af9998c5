// Package option implements a single declared command-line option:
// its identity, its configuration and its typed value storage.
package option

import (
	"fmt"
	"unicode"

	"github.com/rsteube/carapace"

	"github.com/reeflective/argparse/internal/errors"
	"github.com/reeflective/argparse/internal/values"
)

// Owner is notified of the configuration changes that must stay
// consistent across all options of a set. In practice, the registry.
type Owner interface {
	// ClaimPositional is called when opt is marked positional.
	// It returns an error if another option already is.
	ClaimPositional(opt *Option) error
}

// Option is a declared command-line option. Its kind, names and description
// are fixed at creation, the rest is set with the chainable configuration
// methods before parsing, which panic when misused.
//
// A non multi-value option stores at most one value, overwritten by each
// write, while a multi-value option appends every value written to it.
type Option struct {
	kind  values.Kind
	short rune
	long  string
	desc  string

	def        values.Scalar
	positional bool
	multi      bool
	minArgs    int

	value  values.Scalar   // non multi-value storage
	seq    values.Sequence // multi-value storage
	extern values.Binding  // caller storage mirroring writes

	validate   string           // go-playground/validator tag
	completion *carapace.Action // shell completion of the option values
	owner      Owner
}

// New creates an option. The long name is required, the short name is
// optional (zero rune), and may be neither a dash, an equal sign nor a space.
func New(owner Owner, kind values.Kind, short rune, long, desc string) (*Option, error) {
	if long == "" {
		return nil, fmt.Errorf("%w: an option requires a long name", errors.ErrConfig)
	}

	if kind > values.Help {
		return nil, fmt.Errorf("%w: invalid option kind %d", errors.ErrConfig, kind)
	}

	if short == '-' || short == '=' || unicode.IsSpace(short) || (short != 0 && !unicode.IsPrint(short)) {
		return nil, fmt.Errorf("%w: invalid short name %q for --%s", errors.ErrConfig, short, long)
	}

	opt := &Option{
		kind:  kind,
		short: short,
		long:  long,
		desc:  desc,
		owner: owner,
	}

	// Flags and help requests are off unless given.
	if kind.IsBool() {
		opt.def = values.Bool(false)
	}

	return opt, nil
}

//
// Configuration ------------------------------------------------------------------ //
//

// Default sets the value returned when the option is not given on the
// command line. It accepts a bool for flags, an int for integer options
// and a string for string options. Help options cannot have a default.
func (o *Option) Default(value any) *Option {
	def, err := values.Of(value)
	if err != nil {
		o.fail(err, "invalid default")
	}

	if o.kind == values.Help || !def.Fits(o.kind) {
		o.fail(errors.ErrTypeMismatch, "cannot use %T as default of a %s option", value, o.kind)
	}

	o.def = def

	return o
}

// MultiValue makes the option accumulate all of its values, and requires
// at least minArgs of them for the option to be valid.
// Only integer and string options can be multi-value.
func (o *Option) MultiValue(minArgs int) *Option {
	if !o.kind.TakesValue() {
		o.fail(errors.ErrTypeMismatch, "a %s option cannot be multi-value", o.kind)
	}

	if minArgs < 0 {
		o.fail(errors.ErrOutOfRange, "negative minimum number of values %d", minArgs)
	}

	if o.extern.IsSet() && !o.extern.IsMulti() {
		o.fail(errors.ErrTypeMismatch, "option is already bound to a single value")
	}

	if !o.multi {
		o.seq, _ = values.NewSequence(o.kind)
		o.multi = true
	}

	o.minArgs = minArgs

	return o
}

// Positional makes the option receive all words not starting with a dash.
// Only integer and string options can be positional, and only one of a set.
func (o *Option) Positional() *Option {
	if !o.kind.TakesValue() {
		o.fail(errors.ErrTypeMismatch, "a %s option cannot be positional", o.kind)
	}

	if o.positional {
		return o
	}

	if o.owner != nil {
		if err := o.owner.ClaimPositional(o); err != nil {
			o.fail(err, "cannot be positional")
		}
	}

	o.positional = true

	return o
}

// Store binds the option to a variable owned by the caller: every value
// written to the option is also written to ref, which must be a *bool,
// *int or *string matching the option kind. The variable must outlive the
// option and must not be written to concurrently with a parse.
func (o *Option) Store(ref any) *Option {
	return o.bind(ref, false)
}

// StoreValues binds a multi-value option to a slice owned by the caller,
// either *[]int or *[]string: each value is appended to it. MultiValue must
// have been called first. The same lifetime rules as Store apply.
func (o *Option) StoreValues(ref any) *Option {
	return o.bind(ref, true)
}

func (o *Option) bind(ref any, multi bool) *Option {
	binding, err := values.Bind(ref)
	if err != nil {
		o.fail(err, "invalid storage")
	}

	if binding.IsMulti() != multi || !binding.Accepts(o.kind, o.multi) {
		o.fail(errors.ErrTypeMismatch, "cannot store a %s option (multi-value: %t) into %T", o.kind, o.multi, ref)
	}

	o.extern = binding

	return o
}

// Validate sets a go-playground/validator tag (eg. "min=1,max=10") checked
// against each value given to the option on the command line.
func (o *Option) Validate(tag string) *Option {
	if !o.kind.TakesValue() {
		o.fail(errors.ErrTypeMismatch, "a %s option takes no value to validate", o.kind)
	}

	o.validate = tag

	return o
}

// Complete sets the shell completion action for the option values.
func (o *Option) Complete(action carapace.Action) *Option {
	if !o.kind.TakesValue() {
		o.fail(errors.ErrTypeMismatch, "a %s option takes no value to complete", o.kind)
	}

	o.completion = &action

	return o
}

// fail panics with a configuration error.
func (o *Option) fail(cause error, format string, args ...any) {
	panic(errors.Config(cause, "option --%s: %s", o.long, fmt.Sprintf(format, args...)))
}

//
// Properties --------------------------------------------------------------------- //
//

// Kind returns the option type.
func (o *Option) Kind() values.Kind { return o.kind }

// Short returns the short name, or zero.
func (o *Option) Short() rune { return o.short }

// Long returns the long name.
func (o *Option) Long() string { return o.long }

// Description returns the option description.
func (o *Option) Description() string { return o.desc }

// HasDefault returns true if the option has a default value.
func (o *Option) HasDefault() bool { return o.def.IsSet() }

// DefaultValue returns the default value, which may be absent.
func (o *Option) DefaultValue() values.Scalar { return o.def }

// IsPositional returns true if the option receives positional words.
func (o *Option) IsPositional() bool { return o.positional }

// IsMultiValue returns true if the option accumulates its values.
func (o *Option) IsMultiValue() bool { return o.multi }

// MinArgs returns the minimum number of values of a multi-value option.
func (o *Option) MinArgs() int { return o.minArgs }

// ValidationTag returns the validator tag of the option, if any.
func (o *Option) ValidationTag() string { return o.validate }

// Completion returns the completion action of the option, if any.
func (o *Option) Completion() (carapace.Action, bool) {
	if o.completion == nil {
		return carapace.Action{}, false
	}

	return *o.completion, true
}
