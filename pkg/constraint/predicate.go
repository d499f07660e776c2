package constraint

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/timeguard/pkg/temporal"
)

// predicateValidator tests a boolean property such as "leap year".
type predicateValidator struct {
	zoned
	predicate temporal.Predicate
	negate    bool
}

func (v *predicateValidator) Initialize(c Constraint, target reflect.Type) error {
	if err := v.init(c, target); err != nil {
		return err
	}
	if !v.predicate.Supported(v.adapter.Fields) {
		return configError(c, target, fmt.Errorf("%w: %s", ErrFieldNotSupported, v.predicate.Name))
	}
	if err := rejectMoment(c, target); err != nil {
		return err
	}
	if len(c.Values) > 0 {
		return configError(c, target, fmt.Errorf("%w: %s takes no values", ErrInvalidValues, c.Name))
	}
	return nil
}

func (v *predicateValidator) IsValid(value any) bool {
	val, skip, ok := v.normalize(value)
	if skip {
		return true
	}
	if !ok {
		return false
	}
	return v.predicate.Test(val) != v.negate
}
