package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is a general error used to wrap more specific parsing errors.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates a misuse of the declaration API: an option
	// configured in a way incompatible with its kind, a duplicated name,
	// or a query for an option that was never declared.
	ErrConfig = errors.New("configuration error")

	// ErrTypeMismatch indicates a value whose type does not match the kind of the option.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrOutOfRange indicates an index past the number of stored values.
	ErrOutOfRange = errors.New("index out of range")

	// ErrNoValue indicates an option that has neither a value nor a default.
	ErrNoValue = errors.New("option has no value")

	// ErrNilObject indicates that an object is nil although it should not.
	ErrNilObject = errors.New("object cannot be nil")

	// ErrDuplicatedFlag indicates that a short or long name has been declared more than once.
	ErrDuplicatedFlag = errors.New("duplicated flag")

	// ErrUnknownFlag indicates that no option has the requested name.
	ErrUnknownFlag = errors.New("unknown flag")

	// ErrNoPositional indicates that no option is marked positional.
	ErrNoPositional = errors.New("no positional option")

	// ErrNoHelp indicates that no help option has been declared.
	ErrNoHelp = errors.New("no help option")
)

// ErrorType identifies the kind of malformed input that made a parse fail.
type ErrorType uint

// ORDER IN WHICH THE ERROR CONSTANTS APPEAR MATTERS.
const (
	// ErrUnknown indicates a generic error.
	ErrUnknown ErrorType = iota

	// ErrNoArgs indicates an empty token list (not even a program name).
	ErrNoArgs

	// ErrEmptyToken indicates an empty word on the command line.
	ErrEmptyToken

	// ErrSyntax indicates a malformed option token, like a bare dash
	// or a dangling '='.
	ErrSyntax

	// ErrUnknownOption indicates an unknown short or long name.
	ErrUnknownOption

	// ErrNoArgumentForBool indicates that a value was given to a flag.
	ErrNoArgumentForBool

	// ErrExpectedArgument indicates that a valued option was used as a flag.
	ErrExpectedArgument

	// ErrMarshal indicates a value that could not be converted to the option type.
	ErrMarshal

	// ErrValidation indicates a value rejected by the option validator.
	ErrValidation

	// ErrUnexpectedPositional indicates a positional word with no positional option declared.
	ErrUnexpectedPositional

	// ErrRequired indicates an option left without enough values.
	ErrRequired
)

func (e ErrorType) String() string {
	errs := [...]string{
		"unknown",               // ErrUnknown
		"no arguments",          // ErrNoArgs
		"empty argument",        // ErrEmptyToken
		"syntax",                // ErrSyntax
		"unknown option",        // ErrUnknownOption
		"no argument for bool",  // ErrNoArgumentForBool
		"expected argument",     // ErrExpectedArgument
		"marshal",               // ErrMarshal
		"validation",            // ErrValidation
		"unexpected positional", // ErrUnexpectedPositional
		"required",              // ErrRequired
	}
	if int(e) >= len(errs) {
		return "unrecognized error type"
	}

	return errs[e]
}

// Error represents a parse failure caused by user input.
// It always matches ErrParse with errors.Is.
type Error struct {
	Type    ErrorType // The kind of failure
	Token   string    // The offending command-line word, if any
	Message string    // The error message
	err     error     // The underlying cause, if any
}

// Error returns the error's message.
func (e *Error) Error() string {
	return e.Message
}

// Is makes every *Error match ErrParse.
func (e *Error) Is(target error) bool {
	return target == ErrParse
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.err
}

// New returns a parse error of the given type.
func New(tp ErrorType, token, message string) *Error {
	return &Error{
		Type:    tp,
		Token:   token,
		Message: message,
	}
}

// Newf returns a parse error of the given type with a formatted message.
func Newf(tp ErrorType, token, format string, args ...any) *Error {
	return New(tp, token, fmt.Sprintf(format, args...))
}

// Wrap returns a parse error of the given type caused by err.
// The message is prefixed with the type name.
func Wrap(tp ErrorType, token string, err error) *Error {
	return &Error{
		Type:    tp,
		Token:   token,
		Message: fmt.Sprintf("%s: %s", tp, err),
		err:     err,
	}
}

// Config returns a configuration error wrapping both ErrConfig and cause.
func Config(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrConfig, cause, fmt.Sprintf(format, args...))
}
