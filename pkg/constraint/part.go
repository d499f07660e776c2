package constraint

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/timeguard/pkg/temporal"
)

// partValidator projects the value onto a part (date, time, ...) and compares
// it with a literal of the same part.
type partValidator struct {
	zoned
	part temporal.Part
	op   Op
	ref  temporal.Key
}

func (v *partValidator) Initialize(c Constraint, target reflect.Type) error {
	if err := v.init(c, target); err != nil {
		return err
	}
	if !v.adapter.Parts.Has(v.part) {
		return configError(c, target, fmt.Errorf("%w: %s", ErrFieldNotSupported, v.part))
	}
	if err := rejectMoment(c, target); err != nil {
		return err
	}
	if err := v.op.checkArity(c.Values); err != nil {
		return configError(c, target, err)
	}

	ref, err := temporal.ParsePart(v.part, c.Values[0])
	if err != nil {
		return configError(c, target, errors.Join(ErrInvalidValues, err))
	}
	v.ref = ref
	return nil
}

func (v *partValidator) IsValid(value any) bool {
	val, skip, ok := v.normalize(value)
	if skip {
		return true
	}
	if !ok {
		return false
	}
	return v.op.holds(val.Key(v.part).Compare(v.ref))
}
