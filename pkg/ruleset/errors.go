package ruleset

import "errors"

var (
	ErrUnknownFormat    = errors.New("unknown document format")
	ErrFailedToRead     = errors.New("failed to read document")
	ErrFailedToParse    = errors.New("failed to parse document")
	ErrUnknownFieldType = errors.New("unknown field type")
	ErrNoFields         = errors.New("rule document declares no fields")
	ErrInvalidValue     = errors.New("invalid field value")
)
