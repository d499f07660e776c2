package temporal

import "errors"

var (
	// ErrInvalidLiteral is returned when a date/time literal cannot be parsed.
	ErrInvalidLiteral = errors.New("invalid temporal literal")

	// ErrOutOfRange is returned when a field value is outside its calendar range.
	ErrOutOfRange = errors.New("field value out of range")

	// ErrUnknownField is returned for an unknown field, part or type name.
	ErrUnknownField = errors.New("unknown temporal field")

	// ErrInvalidDuration is returned when a duration literal cannot be parsed.
	ErrInvalidDuration = errors.New("invalid duration")
)
