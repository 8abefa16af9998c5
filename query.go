package argparse

import (
	"github.com/reeflective/argparse/internal/errors"
)

// The getters below panic when the option is not declared, is of another
// kind, has no value nor default, or when the index is out of range: use
// the handle returned by Option for error values instead.

// Option returns the option declared with the given long name.
func (p *Parser) Option(long string) *Option {
	opt, err := p.reg.FindLong(long)
	if err != nil {
		panic(errors.Config(err, "no such option"))
	}

	return opt
}

// GetFlag returns the value of a flag.
func (p *Parser) GetFlag(long string) bool {
	return must(p.Option(long).BoolValue())
}

// GetInt returns the value of an integer option, or its default.
func (p *Parser) GetInt(long string) int {
	return must(p.Option(long).IntValue())
}

// GetIntAt returns the value at index i of a multi-value integer option.
func (p *Parser) GetIntAt(long string, i int) int {
	return must(p.Option(long).IntValueAt(i))
}

// GetString returns the value of a string option, or its default.
func (p *Parser) GetString(long string) string {
	return must(p.Option(long).StringValue())
}

// GetStringAt returns the value at index i of a multi-value string option.
func (p *Parser) GetStringAt(long string, i int) string {
	return must(p.Option(long).StringValueAt(i))
}

// Help returns true if the help option was given.
// It panics if no help option has been declared.
func (p *Parser) Help() bool {
	help, err := p.reg.Help()
	if err != nil {
		panic(errors.Config(err, "help queried"))
	}

	return must(help.BoolValue())
}

func must[T any](val T, err error) T {
	if err != nil {
		panic(errors.Config(err, "invalid query"))
	}

	return val
}
