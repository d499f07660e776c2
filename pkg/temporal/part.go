package temporal

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Part is a group of fields compared as a whole, e.g. the date of a datetime.
type Part uint8

const (
	PartDate Part = iota
	PartTime
	PartYearMonth
	PartMonthDay
	PartDateTime
	// PartYear orders values that only carry a year. It has no literal
	// constraints of its own; year_* field constraints cover it.
	PartYear
)

var partNames = [...]string{
	PartDate:      "date",
	PartTime:      "time",
	PartYearMonth: "year_month",
	PartMonthDay:  "month_day",
	PartDateTime:  "date_time",
	PartYear:      "year",
}

// Parts lists the parts that accept literal comparisons.
func Parts() []Part {
	return []Part{PartDate, PartTime, PartYearMonth, PartMonthDay, PartDateTime}
}

func (p Part) String() string {
	if int(p) < len(partNames) {
		return partNames[p]
	}
	return "part(" + strconv.Itoa(int(p)) + ")"
}

// ParsePartName returns the part with the given name.
func ParsePartName(name string) (Part, error) {
	for p, n := range partNames {
		if n == name {
			return Part(p), nil
		}
	}
	return 0, fmt.Errorf("%w: part %q", ErrUnknownField, name)
}

// PartSet is a set of parts.
type PartSet uint8

// PartsOf builds a set.
func PartsOf(ps ...Part) PartSet {
	var s PartSet
	for _, p := range ps {
		s |= 1 << p
	}
	return s
}

// Has reports whether p is in the set.
func (s PartSet) Has(p Part) bool { return s&(1<<p) != 0 }

// Key is an ordered projection of a value onto a part.
type Key struct {
	hi, lo int64
}

// Compare returns -1, 0 or +1.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.hi, o.hi); c != 0 {
		return c
	}
	return cmp.Compare(k.lo, o.lo)
}

func dateKey(d civil.Date) int64 {
	return int64(d.Year)*10000 + int64(d.Month)*100 + int64(d.Day)
}

func clockKey(t civil.Time) int64 {
	return ((int64(t.Hour)*60+int64(t.Minute))*60+int64(t.Second))*int64(time.Second) + int64(t.Nanosecond)
}

// KeyOf projects a wall clock onto p.
func KeyOf(p Part, dt civil.DateTime) Key {
	switch p {
	case PartDate:
		return Key{hi: dateKey(dt.Date)}
	case PartTime:
		return Key{lo: clockKey(dt.Time)}
	case PartYearMonth:
		return Key{hi: int64(dt.Date.Year)*100 + int64(dt.Date.Month)}
	case PartMonthDay:
		return Key{hi: int64(dt.Date.Month)*100 + int64(dt.Date.Day)}
	case PartYear:
		return Key{hi: int64(dt.Date.Year)}
	default:
		return Key{hi: dateKey(dt.Date), lo: clockKey(dt.Time)}
	}
}

// ParsePart parses a literal for part p:
//
//	date       2006-01-02
//	time       15:04, 15:04:05 or 15:04:05.999999999
//	year_month 2006-01
//	month_day  --01-02 or 01-02
//	date_time  2006-01-02T15:04:05 (fractional seconds allowed)
//	year       2006
func ParsePart(p Part, s string) (Key, error) {
	s = strings.TrimSpace(s)
	switch p {
	case PartDate:
		d, err := civil.ParseDate(s)
		if err != nil {
			return Key{}, fmt.Errorf("%w: date %q", ErrInvalidLiteral, s)
		}
		return KeyOf(p, civil.DateTime{Date: d}), nil
	case PartTime:
		t, err := ParseClock(s)
		if err != nil {
			return Key{}, err
		}
		return KeyOf(p, civil.DateTime{Time: t}), nil
	case PartYearMonth:
		ym, err := ParseYearMonth(s)
		if err != nil {
			return Key{}, err
		}
		return KeyOf(p, civil.DateTime{Date: civil.Date{Year: ym.Year, Month: ym.Month}}), nil
	case PartMonthDay:
		md, err := ParseMonthDay(s)
		if err != nil {
			return Key{}, err
		}
		return KeyOf(p, civil.DateTime{Date: civil.Date{Month: md.Month, Day: md.Day}}), nil
	case PartDateTime:
		dt, err := civil.ParseDateTime(s)
		if err != nil {
			return Key{}, fmt.Errorf("%w: date_time %q", ErrInvalidLiteral, s)
		}
		return KeyOf(p, dt), nil
	case PartYear:
		n, err := strconv.Atoi(s)
		if err != nil {
			return Key{}, fmt.Errorf("%w: year %q", ErrInvalidLiteral, s)
		}
		return Key{hi: int64(n)}, nil
	}
	return Key{}, fmt.Errorf("%w: %s", ErrUnknownField, p)
}

// ParseClock parses a time of day with optional seconds.
func ParseClock(s string) (civil.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := civil.ParseTime(s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return civil.TimeOf(t), nil
	}
	return civil.Time{}, fmt.Errorf("%w: time %q", ErrInvalidLiteral, s)
}
