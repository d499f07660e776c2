package playground

import "errors"

var (
	// ErrInvalidParam is returned for a tag parameter that cannot be parsed.
	ErrInvalidParam = errors.New("invalid tag parameter")
)
