package argparse

import (
	"strings"
)

// HelpText returns the help message of the program:
//
//	accumulate [OPTIONS] <number...>
//	Accumulate numbers
//	Positional argument:
//	number,  numbers to add[repeated, min args = 1]
//	Options:
//	     --sum,  add the numbers[default = false]
//	-h,  --help,  Display this help and exit
//
// The description is the one of the help option, which is printed last.
func (p *Parser) HelpText() string {
	var buf strings.Builder

	help, _ := p.reg.Help()
	positional, _ := p.reg.Positional()

	buf.WriteString(p.usage())
	buf.WriteByte('\n')

	if help != nil {
		buf.WriteString(help.Description())
		buf.WriteByte('\n')
	}

	if positional != nil {
		buf.WriteString("Positional argument:\n")
		buf.WriteString(positional.Format())
		buf.WriteByte('\n')
	}

	buf.WriteString("Options:\n")

	for _, opt := range p.reg.Options() {
		if opt == help || opt == positional {
			continue
		}

		buf.WriteString(opt.Format())
		buf.WriteByte('\n')
	}

	if help != nil {
		buf.WriteString(help.Format())
		buf.WriteByte('\n')
	}

	return buf.String()
}

// usage returns the usage line, eg. `name [OPTIONS] <positional...>`.
func (p *Parser) usage() string {
	usage := p.name + " [OPTIONS]"

	positional, err := p.reg.Positional()
	if err != nil {
		return usage
	}

	usage += " <" + positional.Long()
	if positional.IsMultiValue() {
		usage += "..."
	}

	return usage + ">"
}
