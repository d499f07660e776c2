package temporal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field is a calendar or clock field that can be extracted from a Value.
type Field uint8

const (
	Year Field = iota
	Quarter
	Month
	DayOfMonth
	DayOfWeek
	DayOfYear
	Hour
	Minute
	Second
)

var fieldNames = [...]string{
	Year:       "year",
	Quarter:    "quarter",
	Month:      "month",
	DayOfMonth: "day_of_month",
	DayOfWeek:  "day_of_week",
	DayOfYear:  "day_of_year",
	Hour:       "hour",
	Minute:     "minute",
	Second:     "second",
}

// fieldRanges holds inclusive bounds; Year is unbounded.
var fieldRanges = [...][2]int{
	Quarter:    {1, 4},
	Month:      {1, 12},
	DayOfMonth: {1, 31},
	DayOfWeek:  {1, 7},
	DayOfYear:  {1, 366},
	Hour:       {0, 23},
	Minute:     {0, 59},
	Second:     {0, 59},
}

// Fields lists every field in declaration order.
func Fields() []Field {
	return []Field{Year, Quarter, Month, DayOfMonth, DayOfWeek, DayOfYear, Hour, Minute, Second}
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "field(" + strconv.Itoa(int(f)) + ")"
}

// Title returns a human readable name, e.g. "Day Of Week".
func (f Field) Title() string {
	return cases.Title(language.English).String(strings.ReplaceAll(f.String(), "_", " "))
}

// ParseField returns the field with the given snake_case name.
func ParseField(name string) (Field, error) {
	for _, f := range Fields() {
		if fieldNames[f] == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// ParseFieldValue parses a literal for field f and checks its range. Month
// and day-of-week also accept English names and three-letter abbreviations.
func ParseFieldValue(f Field, s string) (int, error) {
	s = strings.TrimSpace(s)
	switch f {
	case Month:
		m, err := ParseMonth(s)
		return int(m), err
	case DayOfWeek:
		return ParseWeekday(s)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidLiteral, f, s)
	}
	if f == Year {
		return n, nil
	}
	bounds := fieldRanges[f]
	if n < bounds[0] || n > bounds[1] {
		return 0, fmt.Errorf("%w: %s must be within [%d, %d], got %d", ErrOutOfRange, f, bounds[0], bounds[1], n)
	}
	return n, nil
}

// FormatFieldValue renders n for messages: months and weekdays by name,
// everything else as a number.
func FormatFieldValue(f Field, n int) string {
	switch f {
	case Month:
		if n >= 1 && n <= 12 {
			return time.Month(n).String()
		}
	case DayOfWeek:
		if n >= 1 && n <= 7 {
			return FromISOWeekday(n).String()
		}
	}
	return strconv.Itoa(n)
}

// ParseMonth parses "1".."12" or an English month name.
func ParseMonth(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("%w: month must be within [1, 12], got %d", ErrOutOfRange, n)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		if matchName(m.String(), s) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: month %q", ErrInvalidLiteral, s)
}

// ParseWeekday parses an ISO day number ("1" is Monday) or an English day
// name and returns the ISO number.
func ParseWeekday(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 7 {
			return 0, fmt.Errorf("%w: day_of_week must be within [1, 7], got %d", ErrOutOfRange, n)
		}
		return n, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if matchName(d.String(), s) {
			return ISOWeekday(d), nil
		}
	}
	return 0, fmt.Errorf("%w: day_of_week %q", ErrInvalidLiteral, s)
}

// ISOWeekday converts a time.Weekday to ISO numbering.
func ISOWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// FromISOWeekday converts an ISO day number back to time.Weekday.
func FromISOWeekday(n int) time.Weekday {
	return time.Weekday(n % 7)
}

func matchName(full, s string) bool {
	return strings.EqualFold(full, s) || (len(s) == 3 && strings.EqualFold(full[:3], s))
}

// FieldSet is a set of fields.
type FieldSet uint16

// FieldsOf builds a set.
func FieldsOf(fs ...Field) FieldSet {
	var s FieldSet
	for _, f := range fs {
		s |= 1 << f
	}
	return s
}

// Has reports whether f is in the set.
func (s FieldSet) Has(f Field) bool { return s&(1<<f) != 0 }

// List returns the fields of the set in declaration order.
func (s FieldSet) List() []Field {
	var out []Field
	for _, f := range Fields() {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

var (
	dateFields     = FieldsOf(Year, Quarter, Month, DayOfMonth, DayOfWeek, DayOfYear)
	clockFields    = FieldsOf(Hour, Minute, Second)
	allFields      = dateFields | clockFields
	yearMonthField = FieldsOf(Year, Quarter, Month)
	monthDayFields = FieldsOf(Quarter, Month, DayOfMonth)
)
