package option

import (
	"fmt"
	"strings"

	"github.com/reeflective/argparse/internal/values"
)

// helpUsage replaces the description of help options, which is used
// as the program description instead.
const helpUsage = "Display this help and exit"

// Format returns the help line of the option:
//
//	-s,  --long,  description[default = value]
//	     --long,  description[repeated, min args = 1]
//
// Positional options are printed without dashes nor short name.
func (o *Option) Format() string {
	var line strings.Builder

	if !o.positional {
		if o.short != 0 {
			fmt.Fprintf(&line, "-%c,  ", o.short)
		} else {
			line.WriteString("     ")
		}

		line.WriteString("--")
	}

	line.WriteString(o.long)
	line.WriteString(",  ")

	if o.kind == values.Help {
		line.WriteString(helpUsage)

		return line.String()
	}

	line.WriteString(o.desc)

	switch {
	case o.multi:
		fmt.Fprintf(&line, "[repeated, min args = %d]", o.minArgs)
	case o.def.IsSet():
		fmt.Fprintf(&line, "[default = %s]", o.def)
	}

	return line.String()
}
