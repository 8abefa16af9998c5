package argparse

import (
	"os"

	"github.com/reeflective/argparse/internal/parser"
	"github.com/reeflective/argparse/internal/validation"
)

// Parse parses the command-line words, the first of which is the program
// name, and returns true if they are valid and all options are satisfied,
// or if the help option was given. The reason of a failure is kept in Err.
//
// Parsing is not transactional: options set before a malformed word keep
// their values after a failure.
func (p *Parser) Parse(words []string) bool {
	return p.ParseErr(words) == nil
}

// ParseOS parses the arguments of the current process.
func (p *Parser) ParseOS() bool {
	return p.Parse(os.Args)
}

// ParseErr is like Parse, but returns the reason of the failure.
// The returned error is an *Error, matching ErrParse.
func (p *Parser) ParseErr(words []string) error {
	_, err := p.engine().Parse(words)
	p.err = err

	return err
}

// Err returns the error of the last parse, if it failed.
func (p *Parser) Err() error {
	return p.err
}

// engine returns a parser engine for the declared options, with a
// default validator if some options need one and none was given.
func (p *Parser) engine() *parser.Parser {
	if p.opts.Validator == nil && p.needsValidation() {
		p.opts.Validator = validation.NewDefault()
	}

	return parser.New(p.reg, parser.CopyOpts(p.opts))
}

func (p *Parser) needsValidation() bool {
	for _, opt := range p.reg.Options() {
		if opt.ValidationTag() != "" {
			return true
		}
	}

	return false
}
