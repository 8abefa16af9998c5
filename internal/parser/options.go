package parser

import (
	"io"
	"log/slog"

	"github.com/reeflective/argparse/internal/validation"
)

// OptFunc sets values in Opts structure.
type OptFunc func(opt *Opts)

// Opts specifies different parsing options.
type Opts struct {
	// Logger receives a debug trace of the parsing.
	Logger *slog.Logger

	// Validator checks values of options declaring a validation tag.
	Validator validation.Func

	// Output is where the help and usage of wrapping commands is written.
	Output io.Writer
}

// DefOpts returns the default parsing options.
// Logs are discarded and no validator is set.
func DefOpts() *Opts {
	return &Opts{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Apply applies the given options to the current options.
func (o *Opts) Apply(optFuncs ...OptFunc) *Opts {
	for _, f := range optFuncs {
		(f)(o)
	}

	return o
}

// CopyOpts returns a copy of the given options.
func CopyOpts(opts *Opts) OptFunc {
	return func(opt *Opts) {
		*opt = *opts
	}
}

// Logger sets the logger of the parser. A nil logger is ignored.
func Logger(val *slog.Logger) OptFunc {
	return func(opt *Opts) {
		if val != nil {
			opt.Logger = val
		}
	}
}

// Validator sets validator function for option values.
func Validator(val validation.Func) OptFunc {
	return func(opt *Opts) { opt.Validator = val }
}

// Output sets the writer used for help and usage messages.
func Output(val io.Writer) OptFunc {
	return func(opt *Opts) { opt.Output = val }
}
