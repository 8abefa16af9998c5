package argparse

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/reeflective/argparse/internal/parser"
	"github.com/reeflective/argparse/internal/values"
)

// FlagSet returns a pflag set declaring all options, so that they can be
// listed, completed or parsed by pflag-based tools. The flags write into
// the options of the parser. Short names which are not a single byte are
// not declared as pflag shorthands.
func (p *Parser) FlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet(p.name, pflag.ContinueOnError)
	engine := p.engine()

	for _, opt := range p.reg.Options() {
		var short string
		if opt.Short() != 0 && utf8.RuneLen(opt.Short()) == 1 {
			short = string(opt.Short())
		}

		flag := flags.VarPF(&flagValue{opt: opt, engine: engine}, opt.Long(), short, opt.Description())

		if opt.Kind().IsBool() {
			flag.NoOptDefVal = "true"
		}

		if opt.HasDefault() {
			flag.DefValue = opt.DefaultValue().String()
		}
	}

	return flags
}

// flagValue is a pflag.Value writing into an option.
type flagValue struct {
	opt    *Option
	engine *parser.Parser
}

func (v *flagValue) Set(val string) error {
	if !v.opt.Kind().IsBool() {
		return v.engine.Assign(v.opt, val)
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		return err
	}

	return v.opt.Set(values.Bool(b))
}

func (v *flagValue) String() string {
	if v.opt.IsMultiValue() {
		var items []string
		for i := 0; i < v.opt.Count(); i++ {
			val, _ := v.opt.ValueAt(i)
			items = append(items, val.String())
		}

		return "[" + strings.Join(items, ",") + "]"
	}

	val, err := v.opt.Value()
	if err != nil {
		return ""
	}

	return val.String()
}

func (v *flagValue) Type() string {
	switch {
	case v.opt.Kind().IsBool():
		return "bool"
	case v.opt.IsMultiValue():
		return v.opt.Kind().String() + "Slice"
	default:
		return v.opt.Kind().String()
	}
}

// IsBoolFlag makes flags and help options usable without a value.
func (v *flagValue) IsBoolFlag() bool {
	return v.opt.Kind().IsBool()
}
