package config

import "errors"

// Error kinds reported by Load. Callers distinguish a value that fails to
// parse from one that parses but violates a range constraint by matching
// with errors.Is.
var (
	// ErrMissingCredential is returned when a required credential variable is
	// absent, empty, or whitespace-only.
	ErrMissingCredential = errors.New("missing credential")
	// ErrInvalidType is returned when a numeric variable does not parse as the
	// expected numeric type.
	ErrInvalidType = errors.New("invalid type")
	// ErrInvalidValue is returned when a numeric variable parses but is not
	// strictly positive.
	ErrInvalidValue = errors.New("invalid value")
)

// FieldError describes a single invalid environment variable. Its message
// text is part of the loader's contract and is matched verbatim by callers.
type FieldError struct {
	Field string

	kind    error
	message string
}

func (e *FieldError) Error() string { return e.message }

func (e *FieldError) Unwrap() error { return e.kind }

func missingCredential(field string) error {
	return &FieldError{
		Field:   field,
		kind:    ErrMissingCredential,
		message: field + " environment variable is required",
	}
}

func invalidType(field, want string) error {
	return &FieldError{
		Field:   field,
		kind:    ErrInvalidType,
		message: field + " must be a valid " + want,
	}
}

func invalidValue(field, want string) error {
	return &FieldError{
		Field:   field,
		kind:    ErrInvalidValue,
		message: field + " must be a positive " + want,
	}
}
