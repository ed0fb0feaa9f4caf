package flatfile

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordLength is returned when a line does not match the declared record width.
	ErrRecordLength = errors.New("flatfile: wrong record length")
	// ErrDuplicateField is returned when a schema declares the same field name twice.
	ErrDuplicateField = errors.New("flatfile: duplicate field")
	// ErrUnknownField is returned when a record is accessed with a name the schema does not declare.
	ErrUnknownField = errors.New("flatfile: unknown field")
	// ErrInvalidWidth is returned when a field is declared with a width below one.
	ErrInvalidWidth = errors.New("flatfile: field width must be positive")
	// ErrEmptyFieldName is returned when a non-padding field is declared without a name.
	ErrEmptyFieldName = errors.New("flatfile: field name cannot be empty")
	// ErrSchemaSealed is returned when a field is declared after a record was parsed, built, or created.
	ErrSchemaSealed = errors.New("flatfile: schema is sealed")
	// ErrUnresolvedTransform is returned in strict mode when a transform cannot be applied.
	ErrUnresolvedTransform = errors.New("flatfile: unresolved transform")
	// ErrModelField is returned when a value cannot be stored on a model attribute.
	ErrModelField = errors.New("flatfile: cannot assign model field")
)

// RecordLengthError reports a line whose length differs from the schema width.
type RecordLengthError struct {
	Line     int
	Actual   int
	Expected int
}

// Error formats the length mismatch, including the line number when it is known.
func (e *RecordLengthError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line < 0 {
		return fmt.Sprintf("flatfile: length is %d but should be %d", e.Actual, e.Expected)
	}
	return fmt.Sprintf("flatfile: line %d: length is %d but should be %d", e.Line, e.Actual, e.Expected)
}

// Unwrap returns ErrRecordLength.
func (e *RecordLengthError) Unwrap() error {
	return ErrRecordLength
}

// DuplicateFieldError reports a second declaration of Name.
type DuplicateFieldError struct {
	Name string
}

func (e *DuplicateFieldError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("flatfile: field %q already declared", e.Name)
}

func (e *DuplicateFieldError) Unwrap() error {
	return ErrDuplicateField
}

// UnknownFieldError reports access to a name that is not part of the bound schema.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("flatfile: unknown field %q", e.Name)
}

func (e *UnknownFieldError) Unwrap() error {
	return ErrUnknownField
}

// Stage identifies which pipeline a TransformError came from.
type Stage string

const (
	StageFilter    Stage = "filter"
	StageFormatter Stage = "formatter"
)

// TransformError wraps a failure raised by a filter or formatter.
type TransformError struct {
	Field string
	Line  int
	Stage Stage
	Err   error
}

// Error formats the failing field, pipeline stage, and the underlying Err.
func (e *TransformError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line < 0 {
		return fmt.Sprintf("flatfile: %s on field %q: %v", e.Stage, e.Field, e.Err)
	}
	return fmt.Sprintf("flatfile: line %d: %s on field %q: %v", e.Line, e.Stage, e.Field, e.Err)
}

// Unwrap returns the underlying Err so TransformError participates in errors.Unwrap.
func (e *TransformError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
