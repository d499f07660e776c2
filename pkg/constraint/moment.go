package constraint

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"cloud.google.com/go/civil"

	"github.com/dmitrymomot/timeguard/pkg/temporal"
	"github.com/dmitrymomot/timeguard/pkg/zone"
)

// momentValidator compares the whole value with a reference moment shifted by
// a duration. Instants compare as instants. Local values compare with the
// wall clock of the reference in the system zone, on the finest part the type
// carries.
type momentValidator struct {
	zoned
	op        Op
	fixedNow  bool
	moment    temporal.Moment
	shift     temporal.Duration
	momentLoc *time.Location
}

func (v *momentValidator) Initialize(c Constraint, target reflect.Type) error {
	if err := v.init(c, target); err != nil {
		return err
	}
	if !v.adapter.CanOrder() {
		return configError(c, target, fmt.Errorf("%w: %s has no chronological order", ErrFieldNotSupported, v.adapter.Name))
	}
	if len(c.Values) > 0 {
		return configError(c, target, fmt.Errorf("%w: %s takes a moment, not values", ErrInvalidValues, c.Name))
	}
	if v.fixedNow && c.Moment != "" {
		return configError(c, target, fmt.Errorf("%w: %s always compares with now", ErrMomentNotApplicable, c.Name))
	}

	m, err := temporal.ParseMoment(c.Moment)
	if err != nil {
		return configError(c, target, errors.Join(ErrInvalidMoment, err))
	}
	d, err := temporal.ParseDuration(c.Duration)
	if err != nil {
		return configError(c, target, errors.Join(ErrInvalidDuration, err))
	}
	v.moment = m
	v.shift = d

	// Zoneless literals belong to the explicit zone when there is one.
	v.momentLoc = v.settings.System
	if v.policy.Kind() == zone.Explicit {
		v.momentLoc = v.policy.Explicit()
	}
	return nil
}

func (v *momentValidator) reference() time.Time {
	return v.shift.AddTo(v.moment.Resolve(v.settings.Now(), v.momentLoc))
}

func (v *momentValidator) IsValid(value any) bool {
	val, skip, ok := v.normalize(value)
	if skip {
		return true
	}
	if !ok {
		return false
	}

	ref := v.reference()
	if instant, zoned := val.Instant(); zoned {
		return v.op.holds(instant.Compare(ref))
	}

	order := v.adapter.Order
	wall := civil.DateTimeOf(ref.In(v.settings.System))
	return v.op.holds(val.Key(order).Compare(temporal.KeyOf(order, wall)))
}
