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
	"github.com/dmitrymomot/timeguard/pkg/temporal"
)

func compile(t *testing.T, c constraint.Constraint, sample any, opts ...constraint.Option) *constraint.Compiled {
	t.Helper()
	cc, err := constraint.For(c, sample, opts...)
	require.NoError(t, err)
	return cc
}

func TestHourIn_AcrossRepresentations(t *testing.T) {
	hours := constraint.Constraint{Name: "hour_in", Values: []string{"9", "10", "11"}, ZoneID: "UTC"}
	at := func(h int) time.Time { return time.Date(2024, time.May, 6, h, 15, 0, 0, time.UTC) }

	tests := []struct {
		name    string
		zone    string
		valid   any
		invalid any
	}{
		{"time.Time", "UTC", at(10), at(8)},
		{"*time.Time", "UTC", ptr(at(10)), ptr(at(8))},
		{"timestamp", "UTC", timestamppb.New(at(10)), timestamppb.New(at(8))},
		{"civil.DateTime", "", civil.DateTimeOf(at(10)), civil.DateTimeOf(at(8))},
		{"civil.Time", "", civil.TimeOf(at(10)), civil.TimeOf(at(8))},
		{"*civil.Time", "", ptr(civil.TimeOf(at(10))), ptr(civil.TimeOf(at(8)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := hours
			c.ZoneID = tt.zone
			cc := compile(t, c, tt.valid, constraint.WithSystemZone(time.UTC))
			assert.True(t, cc.IsValid(tt.valid))
			assert.False(t, cc.IsValid(tt.invalid))
		})
	}
}

func TestFieldConstraints_ZoneResolution(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 01:00 UTC is 10:00 in Tokyo.
	value := time.Date(2024, time.May, 6, 1, 0, 0, 0, time.UTC)

	tests := []struct {
		zone   string
		system *time.Location
		want   bool
	}{
		{"Asia/Tokyo", time.UTC, true},
		{"UTC", tokyo, false},
		{"system", tokyo, true},
		{"", time.UTC, false},
		{"provided", tokyo, false},
	}

	for _, tt := range tests {
		t.Run(tt.zone+" system="+tt.system.String(), func(t *testing.T) {
			cc := compile(t, constraint.Constraint{Name: "hour_equal", Values: []string{"10"}, ZoneID: tt.zone},
				value, constraint.WithSystemZone(tt.system))
			assert.Equal(t, tt.want, cc.IsValid(value))
		})
	}

	t.Run("provided keeps the value zone", func(t *testing.T) {
		cc := compile(t, constraint.Constraint{Name: "hour_equal", Values: []string{"10"}, ZoneID: "provided"},
			value, constraint.WithSystemZone(time.UTC))
		assert.True(t, cc.IsValid(value.In(tokyo)))
		assert.False(t, cc.IsValid(value))
	})
}

func TestFieldConstraints_Operators(t *testing.T) {
	// 2024-06-06 is a Thursday.
	thursday := civil.Date{Year: 2024, Month: time.June, Day: 6}
	friday := thursday.AddDays(1)
	sunday := thursday.AddDays(3)
	monday := thursday.AddDays(4)

	tests := []struct {
		name   string
		c      constraint.Constraint
		value  any
		expect bool
	}{
		{"dow before friday on thursday", constraint.Constraint{Name: "day_of_week_before", Values: []string{"FRIDAY"}}, thursday, true},
		{"dow before friday on friday", constraint.Constraint{Name: "day_of_week_before", Values: []string{"FRIDAY"}}, friday, false},
		{"dow before friday on sunday", constraint.Constraint{Name: "day_of_week_before", Values: []string{"FRIDAY"}}, sunday, false},
		{"dow before friday on monday", constraint.Constraint{Name: "day_of_week_before", Values: []string{"FRIDAY"}}, monday, true},
		{"dow not before friday on friday", constraint.Constraint{Name: "day_of_week_not_before", Values: []string{"fri"}}, friday, true},
		{"dow after friday on sunday", constraint.Constraint{Name: "day_of_week_after", Values: []string{"5"}}, sunday, true},
		{"month not after june on june", constraint.Constraint{Name: "month_not_after", Values: []string{"JUNE"}}, thursday, true},
		{"month not after may on june", constraint.Constraint{Name: "month_not_after", Values: []string{"MAY"}}, thursday, false},
		{"month in summer", constraint.Constraint{Name: "month_in", Values: []string{"6", "7", "8"}}, time.July, true},
		{"month not in summer", constraint.Constraint{Name: "month_not_in", Values: []string{"6", "7", "8"}}, time.July, false},
		{"quarter equal", constraint.Constraint{Name: "quarter_equal", Values: []string{"2"}}, thursday, true},
		{"day of month after 5", constraint.Constraint{Name: "day_of_month_after", Values: []string{"5"}}, thursday, true},
		{"day of year not equal", constraint.Constraint{Name: "day_of_year_not_equal", Values: []string{"158"}}, thursday, false},
		{"year before", constraint.Constraint{Name: "year_before", Values: []string{"2025"}}, temporal.CalendarYear(2024), true},
		{"year in", constraint.Constraint{Name: "year_in", Values: []string{"2020", "2028"}}, temporal.YearMonth{Year: 2024, Month: time.May}, false},
		{"weekday value in", constraint.Constraint{Name: "day_of_week_in", Values: []string{"SATURDAY", "SUNDAY"}}, time.Sunday, true},
		{"minute equal", constraint.Constraint{Name: "minute_equal", Values: []string{"30"}}, civil.Time{Hour: 7, Minute: 30}, true},
		{"second not after", constraint.Constraint{Name: "second_not_after", Values: []string{"29"}}, civil.Time{Second: 30}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := compile(t, tt.c, tt.value)
			assert.Equal(t, tt.expect, cc.IsValid(tt.value))
		})
	}
}

func TestMembershipIsRepresentationIndependent(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	c := constraint.Constraint{Name: "day_of_week_in", Values: []string{"MONDAY", "WEDNESDAY"}, ZoneID: "Europe/Berlin"}
	instant := time.Date(2024, time.June, 4, 23, 30, 0, 0, time.UTC) // Wednesday 01:30 in Berlin

	fromTime := compile(t, c, instant)
	fromTS := compile(t, c, timestamppb.New(instant))
	local := compile(t, constraint.Constraint{Name: c.Name, Values: c.Values}, civil.DateTime{})

	assert.True(t, fromTime.IsValid(instant))
	assert.True(t, fromTS.IsValid(timestamppb.New(instant)))
	assert.True(t, local.IsValid(civil.DateTimeOf(instant.In(berlin))))
}

func TestWrongTypeIsInvalid(t *testing.T) {
	cc := compile(t, constraint.Constraint{Name: "hour_in", Values: []string{"10"}}, time.Time{})
	assert.False(t, cc.IsValid("10:00"))
	assert.False(t, cc.IsValid(civil.Time{Hour: 10}))
	assert.Equal(t, reflect.TypeFor[time.Time](), cc.Type())
}

func ptr[T any](v T) *T { return &v }
