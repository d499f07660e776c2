package constraint_test

import (
	"reflect"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrymomot/timeguard/pkg/constraint"
)

func TestNew_ConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		c      constraint.Constraint
		sample any
		err    error
	}{
		{"unknown constraint", constraint.Constraint{Name: "hour_between"}, time.Time{}, constraint.ErrUnknownConstraint},
		{"unsupported type", constraint.Constraint{Name: "hour_in", Values: []string{"1"}}, "10:00", constraint.ErrUnsupportedType},
		{"nil target", constraint.Constraint{Name: "past"}, nil, constraint.ErrUnsupportedType},
		{"hour on a date", constraint.Constraint{Name: "hour_in", Values: []string{"9"}}, civil.Date{}, constraint.ErrFieldNotSupported},
		{"time part on date", constraint.Constraint{Name: "time_before", Values: []string{"10:00"}}, civil.Date{}, constraint.ErrFieldNotSupported},
		{"leap year on time of day", constraint.Constraint{Name: "leap_year"}, civil.Time{}, constraint.ErrFieldNotSupported},
		{"past on weekday", constraint.Constraint{Name: "past"}, time.Monday, constraint.ErrFieldNotSupported},
		{"empty in", constraint.Constraint{Name: "hour_in"}, time.Time{}, constraint.ErrInvalidValues},
		{"two values for equal", constraint.Constraint{Name: "minute_equal", Values: []string{"1", "2"}}, time.Time{}, constraint.ErrInvalidValues},
		{"hour out of range", constraint.Constraint{Name: "hour_in", Values: []string{"24"}}, time.Time{}, constraint.ErrInvalidValues},
		{"bad weekday name", constraint.Constraint{Name: "day_of_week_before", Values: []string{"FUNDAY"}}, time.Time{}, constraint.ErrInvalidValues},
		{"bad time literal", constraint.Constraint{Name: "time_after", Values: []string{"25:00"}}, time.Time{}, constraint.ErrInvalidValues},
		{"values on predicate", constraint.Constraint{Name: "weekend", Values: []string{"6"}}, time.Time{}, constraint.ErrInvalidValues},
		{"values on moment", constraint.Constraint{Name: "before", Values: []string{"now"}}, time.Time{}, constraint.ErrInvalidValues},
		{"duration on field constraint", constraint.Constraint{Name: "hour_in", Values: []string{"9"}, Duration: "PT1H"}, time.Time{}, constraint.ErrDurationNotApplicable},
		{"moment on part constraint", constraint.Constraint{Name: "date_before", Values: []string{"2024-01-01"}, Moment: "now"}, time.Time{}, constraint.ErrMomentNotApplicable},
		{"moment on past", constraint.Constraint{Name: "past", Moment: "2024-01-01"}, time.Time{}, constraint.ErrMomentNotApplicable},
		{"bad moment", constraint.Constraint{Name: "before", Moment: "yesterday"}, time.Time{}, constraint.ErrInvalidMoment},
		{"bad duration", constraint.Constraint{Name: "after", Duration: "P1H"}, time.Time{}, constraint.ErrInvalidDuration},
		{"clock duration overflows", constraint.Constraint{Name: "before", Duration: "PT3000000H"}, time.Time{}, constraint.ErrInvalidDuration},
		{"calendar duration too large", constraint.Constraint{Name: "past", Duration: "P1000000000000Y"}, time.Time{}, constraint.ErrInvalidDuration},
		{"unknown zone", constraint.Constraint{Name: "hour_in", Values: []string{"9"}, ZoneID: "Mars/Olympus"}, time.Time{}, constraint.ErrUnknownZone},
		{"provided on local type", constraint.Constraint{Name: "hour_in", Values: []string{"9"}, ZoneID: "provided"}, civil.DateTime{}, constraint.ErrPolicyNotSupported},
		{"provided on timestamp", constraint.Constraint{Name: "hour_in", Values: []string{"9"}, ZoneID: "provided"}, &timestamppb.Timestamp{}, constraint.ErrPolicyNotSupported},
		{"explicit zone on local type", constraint.Constraint{Name: "past", ZoneID: "UTC"}, civil.Date{}, constraint.ErrPolicyNotSupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc, err := constraint.For(tt.c, tt.sample)
			require.Error(t, err)
			assert.Nil(t, cc)
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, constraint.IsConfigError(err))

			var ce *constraint.ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.c.Name, ce.Constraint)
		})
	}
}

func TestMustNew(t *testing.T) {
	t.Run("panics on config error", func(t *testing.T) {
		assert.Panics(t, func() {
			constraint.MustNew(constraint.Constraint{Name: "hour_in"}, reflect.TypeFor[time.Time]())
		})
	})

	t.Run("returns compiled validator", func(t *testing.T) {
		cc := constraint.MustNew(constraint.Constraint{Name: "weekend"}, reflect.TypeFor[*civil.Date]())
		assert.Equal(t, "weekend", cc.Definition().Name)
		assert.True(t, cc.IsValid((*civil.Date)(nil)))
		assert.True(t, cc.IsValid(&civil.Date{Year: 2024, Month: time.June, Day: 9}))
	})
}

func TestConstraint_String(t *testing.T) {
	c := constraint.Constraint{Name: "before", Moment: "2024-01-01", Duration: "-P1D", ZoneID: "UTC"}
	assert.Equal(t, "before;moment=2024-01-01;duration=-P1D;zone=UTC", c.String())

	c = constraint.Constraint{Name: "hour_in", Values: []string{"9", "10"}}
	assert.Equal(t, "hour_in=9 10", c.String())
}

func TestViolation(t *testing.T) {
	t.Run("field params", func(t *testing.T) {
		cc := compile(t, constraint.Constraint{Name: "day_of_week_in", Values: []string{"1", "SAT"}, ZoneID: "UTC"}, time.Time{})
		v := cc.Violation("starts_at")

		assert.Equal(t, "starts_at", v.Field)
		assert.Equal(t, "day_of_week_in", v.Constraint)
		assert.Equal(t, "validation.day_of_week_in", v.Key)
		assert.Equal(t, "Monday, Saturday", v.Params["values"])
		assert.Equal(t, "UTC", v.Params["zone"])
	})

	t.Run("moment params", func(t *testing.T) {
		cc := compile(t, constraint.Constraint{Name: "after", Duration: "PT1H"}, time.Time{})
		v := cc.Violation("due")

		assert.Equal(t, "now", v.Params["moment"])
		assert.Equal(t, "PT1H", v.Params["duration"])
		assert.Equal(t, "now+PT1H", v.Params["reference"])
		assert.Equal(t, "system", v.Params["zone"])
	})

	t.Run("message override", func(t *testing.T) {
		cc := compile(t, constraint.Constraint{Name: "weekend", Message: "booking.weekend_only"}, civil.Date{})
		v := cc.Violation("day")

		assert.Equal(t, "booking.weekend_only", v.Key)
		assert.Equal(t, "weekend", v.Constraint)
	})
}
