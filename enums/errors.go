package enums

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrOutOfRange is returned when an index or variant lies outside [0, Size).
	ErrOutOfRange = errors.New("enum index out of range")

	// ErrNotFound is returned when a search or label lookup has no match.
	ErrNotFound = errors.New("enum value not found")

	// ErrSizeMismatch is returned when a value list or another container does
	// not have exactly one slot per variant.
	ErrSizeMismatch = errors.New("enum size mismatch")

	// ErrInvalidDeclaration is returned by Declare for malformed enums.
	ErrInvalidDeclaration = errors.New("invalid enum declaration")

	// ErrUndeclared is raised when a type's EnumType method returns nil.
	ErrUndeclared = errors.New("enum type has no declaration")
)

// RangeError reports an index that does not name a variant of Enum.
type RangeError struct {
	Enum  string
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("enum conversion out of range, enum: %s, value: %d, size: %d", e.Enum, e.Index, e.Size)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// NotFoundError reports a failed search. Value holds the quoted query when
// the searched type is string-like and is empty otherwise.
type NotFoundError struct {
	Enum  string
	Value string
}

func (e *NotFoundError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("value not found for enum %s", e.Enum)
	}
	return fmt.Sprintf("value %s not found for enum %s", e.Value, e.Enum)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// SizeMismatchError reports a container or argument list of the wrong length.
type SizeMismatchError struct {
	Enum string
	Want int
	Got  int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("wrong number of values for enum %s: want %d, got %d", e.Enum, e.Want, e.Got)
}

func (e *SizeMismatchError) Unwrap() error {
	return ErrSizeMismatch
}

// describe renders v for error messages. Only string-like values are
// described; anything else yields "".
func describe(v any) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case []byte:
		return fmt.Sprintf("%q", v)
	case fmt.Stringer:
		// fmt renders a nil pointer receiver as <nil> instead of panicking.
		return fmt.Sprintf("%q", v)
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return fmt.Sprintf("%q", rv.String())
	}
	return ""
}
