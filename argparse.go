// Package argparse declares typed command-line options and parses
// command lines against them.
//
// Options are declared on a Parser, and configured through the returned
// handle, whose methods can be chained:
//
//	parser := argparse.NewParser("accumulate")
//	parser.AddIntP("number", 'n', "numbers to add").MultiValue(1).Positional()
//	parser.AddFlag("sum", "add the numbers")
//	parser.AddHelp("help", 'h', "Accumulate numbers")
//
//	if !parser.Parse(os.Args) {
//	    log.Fatal(parser.Err())
//	}
//
// Declaration mistakes (duplicate names, a default of the wrong type, a
// second positional option...) are programming errors: they panic with an
// error wrapping ErrConfig. Malformed command lines never panic, they make
// Parse return false.
//
// The parser can also be turned into a *cobra.Command, complete with
// pflag declarations and carapace shell completions: see Parser.Command.
package argparse

import (
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/reeflective/argparse/internal/option"
	"github.com/reeflective/argparse/internal/parser"
	"github.com/reeflective/argparse/internal/registry"
	"github.com/reeflective/argparse/internal/validation"
	"github.com/reeflective/argparse/internal/values"
)

// Option is the handle of a declared option, used to configure it
// (Default, MultiValue, Positional, Store...) and to read its values.
type Option = option.Option

// Kind is the type of an option.
type Kind = values.Kind

// Option kinds.
const (
	Flag    = values.Flag
	Integer = values.Integer
	String  = values.String
	Help    = values.Help
)

// Parser holds the options declared for a program, and parses command lines.
//
// A Parser is not safe for concurrent use. Parsing several times with the
// same parser accumulates values into multi-value options: use a new parser
// for a clean parse.
type Parser struct {
	name string
	reg  *registry.Registry
	opts *parser.Opts
	err  error
}

// NewParser returns a parser for the program with the given name,
// which is used in the help text.
func NewParser(name string, opts ...OptFunc) *Parser {
	internalOpts := make([]parser.OptFunc, len(opts))
	for i, opt := range opts {
		internalOpts[i] = parser.OptFunc(opt)
	}

	return &Parser{
		name: name,
		reg:  registry.New(),
		opts: parser.DefOpts().Apply(internalOpts...),
	}
}

// Name returns the program name.
func (p *Parser) Name() string { return p.name }

// === Configuration (Functional Options) ===

// OptFunc is a functional option for configuring a parser.
type OptFunc func(o *parser.Opts)

// WithLogger sets a logger receiving a debug trace of each parse.
func WithLogger(logger *slog.Logger) OptFunc {
	return OptFunc(parser.Logger(logger))
}

// WithValidation enables value validation for options declaring a tag with
// Option.Validate, using go-playground/validator. Validation is enabled
// automatically as soon as a tag is declared, this option only creates the
// validator ahead of time.
func WithValidation() OptFunc {
	return OptFunc(parser.Validator(validation.NewDefault()))
}

// WithValidator uses the given validator for options declaring a tag,
// so that custom validations can be registered on it.
func WithValidator(v *validator.Validate) OptFunc {
	return OptFunc(parser.Validator(validation.NewWith(v)))
}

// WithOutput sets the writer of the command returned by Parser.Command.
func WithOutput(out io.Writer) OptFunc {
	return OptFunc(parser.Output(out))
}

// === Declarations ===

// AddInt declares an integer option.
func (p *Parser) AddInt(long, desc string) *Option {
	return p.add(Integer, 0, long, desc)
}

// AddIntP is like AddInt, but also declares a short name.
func (p *Parser) AddIntP(long string, short rune, desc string) *Option {
	return p.add(Integer, short, long, desc)
}

// AddString declares a string option.
func (p *Parser) AddString(long, desc string) *Option {
	return p.add(String, 0, long, desc)
}

// AddStringP is like AddString, but also declares a short name.
func (p *Parser) AddStringP(long string, short rune, desc string) *Option {
	return p.add(String, short, long, desc)
}

// AddFlag declares a boolean flag, false unless given or defaulted otherwise.
func (p *Parser) AddFlag(long, desc string) *Option {
	return p.add(Flag, 0, long, desc)
}

// AddFlagP is like AddFlag, but also declares a short name.
func (p *Parser) AddFlagP(long string, short rune, desc string) *Option {
	return p.add(Flag, short, long, desc)
}

// AddHelp declares the help flag. When given on the command line, parsing
// stops and succeeds, regardless of other options. Its description is the
// program description shown in the help text.
func (p *Parser) AddHelp(long string, short rune, desc string) *Option {
	return p.add(Help, short, long, desc)
}

func (p *Parser) add(kind Kind, short rune, long, desc string) *Option {
	opt, err := p.reg.Add(kind, short, long, desc)
	if err != nil {
		panic(err)
	}

	return opt
}

// Options returns all declared options, in declaration order.
func (p *Parser) Options() []*Option {
	return p.reg.Options()
}
