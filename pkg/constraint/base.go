package constraint

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/timeguard/pkg/temporal"
	"github.com/dmitrymomot/timeguard/pkg/zone"
)

// zoned is embedded by every built-in validator. It resolves the target
// adapter and the zone policy once and normalizes values on each call.
type zoned struct {
	settings Settings
	target   reflect.Type
	adapter  *temporal.Adapter
	policy   zone.Policy
}

func (z *zoned) init(c Constraint, target reflect.Type) error {
	a, ok := temporal.Lookup(target)
	if !ok {
		return configError(c, target, ErrUnsupportedType)
	}

	p, err := zone.Parse(c.ZoneID)
	if err != nil {
		return configError(c, target, err)
	}
	if err := p.Check(a.Zones); err != nil {
		return configError(c, target, err)
	}

	z.target = target
	z.adapter = a
	z.policy = p
	return nil
}

// normalize returns the normalized value. skip is true for nil values, which
// are always valid; ok is false for values of another type.
func (z *zoned) normalize(v any) (val temporal.Value, skip, ok bool) {
	if v == nil {
		return temporal.Value{}, true, true
	}
	rv := reflect.ValueOf(v)
	if rv.Type() != z.target {
		return temporal.Value{}, false, false
	}
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return temporal.Value{}, true, true
	}
	val, ok = z.adapter.Normalize(v, z.policy, z.settings.System)
	return val, false, ok
}

// rejectMoment fails when the constraint carries a moment or duration it
// cannot use.
func rejectMoment(c Constraint, target reflect.Type) error {
	if c.Duration != "" {
		return configError(c, target, fmt.Errorf("%w: %q", ErrDurationNotApplicable, c.Duration))
	}
	if c.Moment != "" {
		return configError(c, target, fmt.Errorf("%w: %q", ErrMomentNotApplicable, c.Moment))
	}
	return nil
}
