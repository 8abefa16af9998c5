package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var retag = regexp.MustCompile(`the '.*' tag`)

// invalidVarError wraps an error raised by validator on an option value,
// and automatically modifies the error string for more efficient ones.
type invalidVarError struct {
	fieldName    string
	fieldValue   any
	validatorErr error
}

// Error implements the Error interface, but replacing some identifiable
// validation errors with more efficient messages, more adapted to CLI.
func (err *invalidVarError) Error() string {
	var tagname string

	// Match the part containing the tag name
	matched := retag.FindString(err.validatorErr.Error())
	if matched != "" {
		parts := strings.Split(matched, " ")
		if len(parts) > 1 {
			tagname = strings.Trim(parts[1], "'")
		}

		return fmt.Sprintf("`%v` is not a valid %s for --%s", err.fieldValue, tagname, err.fieldName)
	}

	// Or simply replace the empty key with the option name.
	return strings.ReplaceAll(err.validatorErr.Error(), "''", fmt.Sprintf("'%s'", err.fieldName))
}

// Unwrap returns the validator error.
func (err *invalidVarError) Unwrap() error {
	return err.validatorErr
}
