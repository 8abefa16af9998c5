package argparse

import (
	"github.com/reeflective/argparse/internal/errors"
)

// Error is the error returned by ParseErr and Err for malformed command
// lines. Its Type tells what went wrong, and Token on which word.
type Error = errors.Error

// ErrorType identifies the kind of malformed input.
type ErrorType = errors.ErrorType

// Parse error types.
const (
	ErrUnknown              = errors.ErrUnknown
	ErrNoArgs               = errors.ErrNoArgs
	ErrEmptyToken           = errors.ErrEmptyToken
	ErrSyntax               = errors.ErrSyntax
	ErrUnknownOption        = errors.ErrUnknownOption
	ErrNoArgumentForBool    = errors.ErrNoArgumentForBool
	ErrExpectedArgument     = errors.ErrExpectedArgument
	ErrMarshal              = errors.ErrMarshal
	ErrValidation           = errors.ErrValidation
	ErrUnexpectedPositional = errors.ErrUnexpectedPositional
	ErrRequired             = errors.ErrRequired
)

// === Public Errors ===

var (
	// ErrParse is matched by all errors caused by a malformed command line.
	ErrParse = errors.ErrParse

	// ErrConfig is wrapped by the panics caused by invalid declarations or queries.
	ErrConfig = errors.ErrConfig

	// ErrTypeMismatch indicates a value or default not matching the option kind.
	ErrTypeMismatch = errors.ErrTypeMismatch

	// ErrOutOfRange indicates an index past the values of a multi-value option.
	ErrOutOfRange = errors.ErrOutOfRange

	// ErrNoValue indicates an option queried with neither a value nor a default.
	ErrNoValue = errors.ErrNoValue

	// ErrDuplicatedFlag indicates a short or long name declared twice,
	// or a second positional or help option.
	ErrDuplicatedFlag = errors.ErrDuplicatedFlag

	// ErrUnknownFlag indicates that no option has the given name.
	ErrUnknownFlag = errors.ErrUnknownFlag

	// ErrNoPositional indicates that no option is positional.
	ErrNoPositional = errors.ErrNoPositional

	// ErrNoHelp indicates that no help option was declared.
	ErrNoHelp = errors.ErrNoHelp
)
