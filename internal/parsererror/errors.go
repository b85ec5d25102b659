// Package parsererror defines the typed errors returned for file-level
// parsing failures. Row- and line-level faults are not represented here; those
// are stringified into ParseResult.Errors and never propagate as errors.
package parsererror

import "fmt"

// ParseError represents a failure while parsing a specific field or stage.
type ParseError struct {
	Pipeline string
	Field    string
	Value    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Pipeline, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents input that does not conform to the format a
// pipeline expects.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

