package values

// Kind is the type of an option, fixed when the option is declared.
type Kind uint8

const (
	// Flag is a boolean option, present or absent, which takes no value.
	Flag Kind = iota
	// Integer is an option holding one or more integers.
	Integer
	// String is an option holding one or more strings.
	String
	// Help is the flag requesting the help text. It short-circuits parsing.
	Help
)

func (k Kind) String() string {
	switch k {
	case Flag:
		return "flag"
	case Integer:
		return "int"
	case String:
		return "string"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// IsBool returns true for the kinds that store a boolean (Flag and Help).
func (k Kind) IsBool() bool {
	return k == Flag || k == Help
}

// TakesValue returns true for the kinds that are assigned a value
// on the command line, and which can be multi-value or positional.
func (k Kind) TakesValue() bool {
	return k == Integer || k == String
}
