package main

import "errors"

var (
	// ErrViolations is returned by check when the record breaks a rule.
	ErrViolations = errors.New("record violates rules")

	// ErrRejected is returned by zones when the policy does not fit the type.
	ErrRejected = errors.New("zone policy rejected")

	ErrUnknownFormat = errors.New("unknown output format")
	ErrUnknownType   = errors.New("unknown field type")
	ErrInvalidLogger = errors.New("invalid logger configuration")

	ErrUnknownCatalogue = errors.New("unsupported message catalogue format")
)
