package param

import (
	"fmt"
	"strings"
)

// ValidationError reports a value that could not be coerced to its field's kind.
type ValidationError struct {
	Field string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("param %s: invalid value %#v: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ArityError reports too many positional arguments, or required positional
// fields left unset after construction.
type ArityError struct {
	Got     int
	Max     int
	Missing []string
}

func (e *ArityError) Error() string {
	if len(e.Missing) > 0 {
		return "param: missing positional arguments: " + strings.Join(e.Missing, ", ")
	}
	return fmt.Sprintf("param: too many positional arguments: got %d, want at most %d", e.Got, e.Max)
}

// UnknownParameterError reports a keyword that the element kind does not declare.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("param: unknown parameter %q", e.Name)
}
