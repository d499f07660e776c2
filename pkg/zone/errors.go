package zone

import "errors"

var (
	// ErrUnknownZone is returned when an explicit zone id cannot be loaded.
	ErrUnknownZone = errors.New("unknown zone id")

	// ErrPolicyNotSupported is returned when a policy is not applicable to a type.
	ErrPolicyNotSupported = errors.New("zone policy not supported by type")
)
