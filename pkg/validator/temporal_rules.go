package validator

import (
	"reflect"
	"strconv"
	"time"

	"cloud.google.com/go/civil"

	"github.com/dmitrymomot/timeguard/pkg/constraint"
	"github.com/dmitrymomot/timeguard/pkg/i18n"
	"github.com/dmitrymomot/timeguard/pkg/temporal"
)

// TemporalOption adjusts the constraint built by the temporal helpers.
type TemporalOption func(*temporalConfig)

type temporalConfig struct {
	c    constraint.Constraint
	opts []constraint.Option
}

// InZone sets the zone-id policy: "system", "provided" or a zone id.
func InZone(id string) TemporalOption {
	return func(tc *temporalConfig) { tc.c.ZoneID = id }
}

// Shifted adds a duration to the reference moment, e.g. "-P1D".
func Shifted(duration string) TemporalOption {
	return func(tc *temporalConfig) { tc.c.Duration = duration }
}

// WithMessage overrides the translation key of the violation.
func WithMessage(key string) TemporalOption {
	return func(tc *temporalConfig) { tc.c.Message = key }
}

// WithSettings passes settings such as a fixed clock or system zone.
func WithSettings(opts ...constraint.Option) TemporalOption {
	return func(tc *temporalConfig) { tc.opts = append(tc.opts, opts...) }
}

// Temporal builds a rule checking value against c. The constraint is
// compiled for the static type T, so typed nil pointers are valid and T must
// not be an interface type.
func Temporal[T any](field string, value T, c constraint.Constraint, opts ...constraint.Option) Rule {
	cc, err := constraint.New(c, reflect.TypeFor[T](), opts...)
	if err != nil {
		return Rule{Err: err, Error: ValidationError{Field: field}}
	}
	return Compiled(field, value, cc)
}

// Compiled builds a rule from a validator compiled ahead of time. The
// message is rendered in the default language of the built-in catalogue.
func Compiled(field string, value any, cc *constraint.Compiled) Rule {
	v := cc.Violation(field)
	return Rule{
		Check: func() bool {
			return cc.IsValid(value)
		},
		Error: ValidationError{
			Field:             field,
			Message:           i18n.Builtin().Tp(i18n.DefaultLanguage, v.Key, v.Params),
			TranslationKey:    v.Key,
			TranslationValues: v.Params,
		},
	}
}

func build[T any](field string, value T, name string, values []string, opts []TemporalOption) Rule {
	tc := temporalConfig{c: constraint.Constraint{Name: name, Values: values}}
	for _, opt := range opts {
		opt(&tc)
	}
	return Temporal(field, value, tc.c, tc.opts...)
}

func ints(ns []int) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = strconv.Itoa(n)
	}
	return out
}

// Field rules. Day-of-week values use ISO numbering, Monday is 1.

func FieldIn[T any](field string, value T, f temporal.Field, values []int, opts ...TemporalOption) Rule {
	return build(field, value, f.String()+"_in", ints(values), opts)
}

func FieldNotIn[T any](field string, value T, f temporal.Field, values []int, opts ...TemporalOption) Rule {
	return build(field, value, f.String()+"_not_in", ints(values), opts)
}

func FieldEqual[T any](field string, value T, f temporal.Field, want int, opts ...TemporalOption) Rule {
	return build(field, value, f.String()+"_equal", ints([]int{want}), opts)
}

func FieldNotEqual[T any](field string, value T, f temporal.Field, want int, opts ...TemporalOption) Rule {
	return build(field, value, f.String()+"_not_equal", ints([]int{want}), opts)
}

func FieldBefore[T any](field string, value T, f temporal.Field, limit int, opts ...TemporalOption) Rule {
	return build(field, value, f.String()+"_before", ints([]int{limit}), opts)
}

func FieldNotBefore[T any](field string, value T, f temporal.Field, limit int, opts ...TemporalOption) Rule {
	return build(field, value, f.String()+"_not_before", ints([]int{limit}), opts)
}

func FieldAfter[T any](field string, value T, f temporal.Field, limit int, opts ...TemporalOption) Rule {
	return build(field, value, f.String()+"_after", ints([]int{limit}), opts)
}

func FieldNotAfter[T any](field string, value T, f temporal.Field, limit int, opts ...TemporalOption) Rule {
	return build(field, value, f.String()+"_not_after", ints([]int{limit}), opts)
}

// HourIn requires the hour of day to be one of hours.
func HourIn[T any](field string, value T, hours []int, opts ...TemporalOption) Rule {
	return FieldIn(field, value, temporal.Hour, hours, opts...)
}

// MinuteEqual requires the minute of hour to equal minute.
func MinuteEqual[T any](field string, value T, minute int, opts ...TemporalOption) Rule {
	return FieldEqual(field, value, temporal.Minute, minute, opts...)
}

func weekdays(days []time.Weekday) []int {
	out := make([]int, len(days))
	for i, d := range days {
		out[i] = temporal.ISOWeekday(d)
	}
	return out
}

func DayOfWeekIn[T any](field string, value T, days []time.Weekday, opts ...TemporalOption) Rule {
	return FieldIn(field, value, temporal.DayOfWeek, weekdays(days), opts...)
}

// DayOfWeekBefore requires an earlier day of the ISO week (Monday first).
func DayOfWeekBefore[T any](field string, value T, day time.Weekday, opts ...TemporalOption) Rule {
	return FieldBefore(field, value, temporal.DayOfWeek, temporal.ISOWeekday(day), opts...)
}

func MonthIn[T any](field string, value T, months []time.Month, opts ...TemporalOption) Rule {
	ns := make([]int, len(months))
	for i, m := range months {
		ns[i] = int(m)
	}
	return FieldIn(field, value, temporal.Month, ns, opts...)
}

func MonthNotAfter[T any](field string, value T, month time.Month, opts ...TemporalOption) Rule {
	return FieldNotAfter(field, value, temporal.Month, int(month), opts...)
}

// Part rules.

func DateBefore[T any](field string, value T, d civil.Date, opts ...TemporalOption) Rule {
	return build(field, value, "date_before", []string{d.String()}, opts)
}

func DateAfter[T any](field string, value T, d civil.Date, opts ...TemporalOption) Rule {
	return build(field, value, "date_after", []string{d.String()}, opts)
}

func TimeOfDayBefore[T any](field string, value T, t civil.Time, opts ...TemporalOption) Rule {
	return build(field, value, "time_before", []string{t.String()}, opts)
}

func TimeOfDayAfter[T any](field string, value T, t civil.Time, opts ...TemporalOption) Rule {
	return build(field, value, "time_after", []string{t.String()}, opts)
}

// Moment rules. moment is "now", an RFC 3339 timestamp or a local date or
// date-time literal.

func moment[T any](field string, value T, name, m string, opts []TemporalOption) Rule {
	return build(field, value, name, nil, append([]TemporalOption{func(tc *temporalConfig) { tc.c.Moment = m }}, opts...))
}

func Before[T any](field string, value T, m string, opts ...TemporalOption) Rule {
	return moment(field, value, "before", m, opts)
}

func NotBefore[T any](field string, value T, m string, opts ...TemporalOption) Rule {
	return moment(field, value, "not_before", m, opts)
}

func After[T any](field string, value T, m string, opts ...TemporalOption) Rule {
	return moment(field, value, "after", m, opts)
}

func NotAfter[T any](field string, value T, m string, opts ...TemporalOption) Rule {
	return moment(field, value, "not_after", m, opts)
}

func Past[T any](field string, value T, opts ...TemporalOption) Rule {
	return build(field, value, "past", nil, opts)
}

func PastOrPresent[T any](field string, value T, opts ...TemporalOption) Rule {
	return build(field, value, "past_or_present", nil, opts)
}

func Future[T any](field string, value T, opts ...TemporalOption) Rule {
	return build(field, value, "future", nil, opts)
}

func FutureOrPresent[T any](field string, value T, opts ...TemporalOption) Rule {
	return build(field, value, "future_or_present", nil, opts)
}

// Predicate rules.

func LeapYear[T any](field string, value T, opts ...TemporalOption) Rule {
	return build(field, value, "leap_year", nil, opts)
}

func Weekend[T any](field string, value T, opts ...TemporalOption) Rule {
	return build(field, value, "weekend", nil, opts)
}

func WorkingDay[T any](field string, value T, opts ...TemporalOption) Rule {
	return build(field, value, "working_day", nil, opts)
}

func FirstDayOfMonth[T any](field string, value T, opts ...TemporalOption) Rule {
	return build(field, value, "first_day_of_month", nil, opts)
}

func LastDayOfMonth[T any](field string, value T, opts ...TemporalOption) Rule {
	return build(field, value, "last_day_of_month", nil, opts)
}
