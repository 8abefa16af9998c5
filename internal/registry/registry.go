// Package registry holds the ordered set of options declared for a command line,
// and ensures their names stay unique and at most one of them is positional.
package registry

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/reeflective/argparse/internal/errors"
	"github.com/reeflective/argparse/internal/option"
	"github.com/reeflective/argparse/internal/values"
)

// Registry owns all declared options, in declaration order.
type Registry struct {
	options    []*option.Option
	positional *option.Option
	help       *option.Option
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Add declares a new option and returns it for further configuration.
// The short name is optional (zero), the long name is not. Both must be
// unused, and only one help option may be declared.
func (r *Registry) Add(kind values.Kind, short rune, long, desc string) (*option.Option, error) {
	if slices.ContainsFunc(r.options, func(o *option.Option) bool { return o.Long() == long }) {
		return nil, fmt.Errorf("%w: %w: --%s", errors.ErrConfig, errors.ErrDuplicatedFlag, long)
	}

	if short != 0 && slices.ContainsFunc(r.options, func(o *option.Option) bool { return o.Short() == short }) {
		return nil, fmt.Errorf("%w: %w: -%c", errors.ErrConfig, errors.ErrDuplicatedFlag, short)
	}

	if kind == values.Help && r.help != nil {
		return nil, fmt.Errorf("%w: %w: help option already declared as --%s",
			errors.ErrConfig, errors.ErrDuplicatedFlag, r.help.Long())
	}

	opt, err := option.New(r, kind, short, long, desc)
	if err != nil {
		return nil, err
	}

	r.options = append(r.options, opt)

	if kind == values.Help {
		r.help = opt
	}

	return opt, nil
}

// ClaimPositional implements option.Owner.
func (r *Registry) ClaimPositional(opt *option.Option) error {
	if r.positional != nil && r.positional != opt {
		return fmt.Errorf("%w: --%s is already positional", errors.ErrDuplicatedFlag, r.positional.Long())
	}

	r.positional = opt

	return nil
}

// FindShort returns the option with the given short name.
func (r *Registry) FindShort(short rune) (*option.Option, error) {
	idx := slices.IndexFunc(r.options, func(o *option.Option) bool { return o.Short() == short })
	if short == 0 || idx == -1 {
		return nil, fmt.Errorf("%w: -%c", errors.ErrUnknownFlag, short)
	}

	return r.options[idx], nil
}

// FindLong returns the option with the given long name.
func (r *Registry) FindLong(long string) (*option.Option, error) {
	idx := slices.IndexFunc(r.options, func(o *option.Option) bool { return o.Long() == long })
	if idx == -1 {
		return nil, fmt.Errorf("%w: --%s", errors.ErrUnknownFlag, long)
	}

	return r.options[idx], nil
}

// Positional returns the option receiving positional words.
func (r *Registry) Positional() (*option.Option, error) {
	if r.positional == nil {
		return nil, errors.ErrNoPositional
	}

	return r.positional, nil
}

// Help returns the help option.
func (r *Registry) Help() (*option.Option, error) {
	if r.help == nil {
		return nil, errors.ErrNoHelp
	}

	return r.help, nil
}

// Options returns all options in declaration order.
func (r *Registry) Options() []*option.Option {
	return r.options
}

// Invalid returns the options that are not valid, in declaration order.
func (r *Registry) Invalid() []*option.Option {
	var invalid []*option.Option

	for _, opt := range r.options {
		if !opt.Valid() {
			invalid = append(invalid, opt)
		}
	}

	return invalid
}
