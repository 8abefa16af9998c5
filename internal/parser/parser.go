// Package parser walks a list of command-line words and applies them
// onto the options of a registry.
package parser

import (
	"fmt"
	"strings"

	"github.com/reeflective/argparse/internal/errors"
	"github.com/reeflective/argparse/internal/option"
	"github.com/reeflective/argparse/internal/registry"
	"github.com/reeflective/argparse/internal/values"
)

// Parser applies command-line words onto the options of a registry.
type Parser struct {
	reg  *registry.Registry
	opts *Opts
}

// New returns a parser for the options declared in reg.
func New(reg *registry.Registry, opts ...OptFunc) *Parser {
	return &Parser{
		reg:  reg,
		opts: DefOpts().Apply(opts...),
	}
}

// Parse walks the command-line words in a single pass. The first word is
// the program name and is skipped. It returns true if the help option was
// given, in which case parsing stops there and options are not checked.
//
// Words are handled as follows:
//   - `--name` activates a flag, `--name=value` assigns a value.
//   - `-abc` activates the flags a, b and c, and `-abx=5` also assigns 5 to x.
//   - the first word not starting with a dash, and all words after it,
//     are values of the positional option.
//
// Parse is not transactional: when it fails, the options set before the
// failing word keep their values. Once all words are consumed, every option
// must be valid (have a value or default, or enough values if multi-value).
func (p *Parser) Parse(words []string) (help bool, err error) {
	if len(words) == 0 {
		return false, errors.New(errors.ErrNoArgs, "", "no arguments: expected at least the program name")
	}

	log := p.opts.Logger.With("program", words[0])

	for i := 1; i < len(words); i++ {
		word := words[i]

		if word == "" {
			return false, p.failed(errors.Newf(errors.ErrEmptyToken, word, "empty argument at position %d", i))
		}

		// All remaining words are positional.
		if word[0] != '-' {
			log.Debug("positional arguments", "count", len(words)-i)

			if err := p.positionals(words[i:]); err != nil {
				return false, p.failed(err)
			}

			break
		}

		help, err := p.option(word)
		if err != nil {
			return false, p.failed(err)
		}

		if help {
			log.Debug("help requested", "word", word)

			return true, nil
		}
	}

	return false, p.failed(p.check())
}

// option parses a word starting with a dash.
func (p *Parser) option(word string) (help bool, err error) {
	if len(word) < 2 {
		return false, errors.New(errors.ErrSyntax, word, "missing option name after '-'")
	}

	equal := strings.IndexByte(word, '=')
	if equal == len(word)-1 {
		return false, errors.Newf(errors.ErrSyntax, word, "missing value after '=' in %q", word)
	}

	if word[1] == '-' {
		return p.long(word, equal)
	}

	return p.short(word, equal)
}

// long parses `--name` and `--name=value`.
func (p *Parser) long(word string, equal int) (help bool, err error) {
	if len(word) < 3 {
		return false, errors.New(errors.ErrSyntax, word, "missing option name after '--'")
	}

	name := word[2:]
	if equal != -1 {
		name = word[2:equal]
	}

	opt, err := p.reg.FindLong(name)
	if err != nil {
		if closest, found := p.reg.Closest(name); found {
			err = fmt.Errorf("%w (did you mean --%s?)", err, closest)
		}

		return false, errors.Wrap(errors.ErrUnknownOption, word, err)
	}

	if equal == -1 {
		return p.activate(opt, word)
	}

	return false, p.assign(opt, word[equal+1:], word)
}

// short parses a cluster of short flags, `-abc`,
// where the last one may be assigned a value: `-abx=5`.
func (p *Parser) short(word string, equal int) (help bool, err error) {
	cluster := []rune(word[1:])
	if equal != -1 {
		cluster = []rune(word[1:equal])
	}

	if equal != -1 && len(cluster) == 0 {
		return false, errors.Newf(errors.ErrSyntax, word, "missing option name before '=' in %q", word)
	}

	flags := cluster
	if equal != -1 {
		flags = cluster[:len(cluster)-1]
	}

	for _, name := range flags {
		opt, err := p.reg.FindShort(name)
		if err != nil {
			return false, errors.Wrap(errors.ErrUnknownOption, word, err)
		}

		if help, err := p.activate(opt, word); help || err != nil {
			return help, err
		}
	}

	if equal == -1 {
		return false, nil
	}

	opt, err := p.reg.FindShort(cluster[len(cluster)-1])
	if err != nil {
		return false, errors.Wrap(errors.ErrUnknownOption, word, err)
	}

	return false, p.assign(opt, word[equal+1:], word)
}

// positionals assigns all words to the positional option, one by one.
func (p *Parser) positionals(words []string) error {
	opt, err := p.reg.Positional()
	if err != nil {
		return errors.Newf(errors.ErrUnexpectedPositional, words[0],
			"unexpected argument %q: no positional argument expected", words[0])
	}

	for _, word := range words {
		if err := p.assign(opt, word, word); err != nil {
			return err
		}
	}

	return nil
}

// activate sets a flag, and reports if it was the help one.
func (p *Parser) activate(opt *option.Option, word string) (help bool, err error) {
	if err := opt.Activate(); err != nil {
		return false, errors.Wrap(errors.ErrExpectedArgument, word, err)
	}

	p.opts.Logger.Debug("flag activated", "option", opt.Long(), "word", word)

	return opt.Kind() == values.Help, nil
}

// Assign converts, validates and sets a value on a valued option,
// as if given with `--name=value`.
func (p *Parser) Assign(opt *option.Option, value string) error {
	return p.assign(opt, value, "--"+opt.Long()+"="+value)
}

// assign converts, validates and sets a value on an option.
func (p *Parser) assign(opt *option.Option, value, word string) error {
	if opt.Kind().IsBool() {
		return errors.Newf(errors.ErrNoArgumentForBool, word, "option --%s does not take a value", opt.Long())
	}

	val, err := values.Parse(opt.Kind(), value)
	if err != nil {
		return errors.Wrap(errors.ErrMarshal, word, fmt.Errorf("option --%s: %w", opt.Long(), err))
	}

	if tag := opt.ValidationTag(); tag != "" && p.opts.Validator != nil {
		if err := p.opts.Validator(val.Interface(), tag, opt.Long()); err != nil {
			return errors.Wrap(errors.ErrValidation, word, err)
		}
	}

	if err := opt.Set(val); err != nil {
		return errors.Wrap(errors.ErrUnknown, word, err)
	}

	p.opts.Logger.Debug("value assigned", "option", opt.Long(), "value", value)

	return nil
}

// check returns an error listing all options that are not valid.
func (p *Parser) check() error {
	invalid := p.reg.Invalid()
	if len(invalid) == 0 {
		return nil
	}

	reasons := make([]string, 0, len(invalid))

	for _, opt := range invalid {
		if opt.IsMultiValue() {
			reasons = append(reasons, fmt.Sprintf("--%s requires at least %d value(s), got %d",
				opt.Long(), opt.MinArgs(), opt.Count()))
		} else {
			reasons = append(reasons, fmt.Sprintf("--%s requires a value", opt.Long()))
		}
	}

	return errors.New(errors.ErrRequired, "", strings.Join(reasons, "; "))
}

// failed logs a non-nil error and returns it.
func (p *Parser) failed(err error) error {
	if err != nil {
		p.opts.Logger.Debug("parsing failed", "error", err)
	}

	return err
}
