package constraint

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/dmitrymomot/timeguard/pkg/temporal"
)

// fieldValidator extracts one calendar field and compares it with the
// configured values.
type fieldValidator struct {
	zoned
	field  temporal.Field
	op     Op
	values []int
}

func (v *fieldValidator) Initialize(c Constraint, target reflect.Type) error {
	if err := v.init(c, target); err != nil {
		return err
	}
	if !v.adapter.Fields.Has(v.field) {
		return configError(c, target, fmt.Errorf("%w: %s", ErrFieldNotSupported, v.field))
	}
	if err := rejectMoment(c, target); err != nil {
		return err
	}
	if err := v.op.checkArity(c.Values); err != nil {
		return configError(c, target, err)
	}

	v.values = make([]int, 0, len(c.Values))
	for _, raw := range c.Values {
		n, err := temporal.ParseFieldValue(v.field, raw)
		if err != nil {
			return configError(c, target, errors.Join(ErrInvalidValues, err))
		}
		v.values = append(v.values, n)
	}
	return nil
}

func (v *fieldValidator) IsValid(value any) bool {
	val, skip, ok := v.normalize(value)
	if skip {
		return true
	}
	if !ok {
		return false
	}

	n := val.Field(v.field)
	switch v.op {
	case OpIn:
		return slices.Contains(v.values, n)
	case OpNotIn:
		return !slices.Contains(v.values, n)
	default:
		return v.op.holds(cmp.Compare(n, v.values[0]))
	}
}
