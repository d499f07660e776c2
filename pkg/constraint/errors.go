package constraint

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/timeguard/pkg/zone"
)

var (
	// ErrUnknownConstraint is returned for a name missing from the catalog.
	ErrUnknownConstraint = errors.New("unknown constraint")

	// ErrUnsupportedType is returned when the target type has no temporal adapter.
	ErrUnsupportedType = errors.New("unsupported temporal type")

	// ErrFieldNotSupported is returned when the type lacks the field, part or
	// ordering a constraint extracts.
	ErrFieldNotSupported = errors.New("field not supported by type")

	// ErrInvalidValues is returned for missing, malformed or out of range values.
	ErrInvalidValues = errors.New("invalid constraint values")

	// ErrInvalidMoment is returned when the reference moment cannot be parsed.
	ErrInvalidMoment = errors.New("invalid moment")

	// ErrInvalidDuration is returned when the duration cannot be parsed.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrDurationNotApplicable is returned when a duration is set on a
	// constraint that does not compare with a moment.
	ErrDurationNotApplicable = errors.New("duration not applicable")

	// ErrMomentNotApplicable is returned when a moment is set on a constraint
	// that does not accept one.
	ErrMomentNotApplicable = errors.New("moment not applicable")

	// ErrUnknownZone is returned when an explicit zone id cannot be loaded.
	ErrUnknownZone = zone.ErrUnknownZone

	// ErrPolicyNotSupported is returned when the zone policy does not apply to
	// the target type.
	ErrPolicyNotSupported = zone.ErrPolicyNotSupported
)

// ConfigError reports a constraint that cannot be initialized for a type.
// It is raised once, at initialization, and never during validation.
type ConfigError struct {
	Constraint string
	Type       string
	Err        error
}

func (e *ConfigError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("constraint %q: %v", e.Constraint, e.Err)
	}
	return fmt.Sprintf("constraint %q on %s: %v", e.Constraint, e.Type, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
