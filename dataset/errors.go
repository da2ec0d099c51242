package dataset

import "fmt"

// ParseError means the input could not be decoded into the data model.
type ParseError struct {
	Format string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Format, e.Reason)
}

// MissingFieldError means a referenced field is absent from every record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field %q is not present in any record", e.Field)
}

// ValidationError covers malformed arguments and values that do not fit
// the semantic type an operation requires.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
