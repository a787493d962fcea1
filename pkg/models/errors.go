package models

import (
	"errors"
	"fmt"
)

// Standard errors returned by model decoding.
var (
	ErrMissingField     = errors.New("missing required field")
	ErrFieldType        = errors.New("unexpected field type")
	ErrInvalidEnumValue = errors.New("invalid enum value")
	ErrNotObject        = errors.New("JSON value is not an object")
)

// MissingFieldError reports a required key absent from a decoded object.
type MissingFieldError struct {
	Model string
	Key   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Model, ErrMissingField, e.Key)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// FieldTypeError reports a key whose JSON value has the wrong shape.
type FieldTypeError struct {
	Model string
	Key   string
	Want  string
	Got   string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s: %s for %q: want %s, got %s", e.Model, ErrFieldType, e.Key, e.Want, e.Got)
}

func (e *FieldTypeError) Unwrap() error { return ErrFieldType }

// InvalidEnumError reports a string outside an enum's closed set.
type InvalidEnumError struct {
	Enum  string
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("%s %q for %s", ErrInvalidEnumValue, e.Value, e.Enum)
}

func (e *InvalidEnumError) Unwrap() error { return ErrInvalidEnumValue }
