package temporal

import (
	"time"

	"cloud.google.com/go/civil"
)

// Value is a normalized temporal value: the wall clock in the resolved zone
// plus, for instant types, the absolute instant.
type Value struct {
	wall    civil.DateTime
	instant time.Time
	zoned   bool
	weekday int
	noYear  bool
}

// ValueOf normalizes t, converted to loc, into a zoned Value.
func ValueOf(t time.Time, loc *time.Location) Value {
	if loc != nil {
		t = t.In(loc)
	}
	return Value{
		wall:    civil.DateTimeOf(t),
		instant: t,
		zoned:   true,
		weekday: ISOWeekday(t.Weekday()),
	}
}

// LocalValue builds a Value from a wall clock without any zone.
func LocalValue(dt civil.DateTime) Value {
	v := Value{wall: dt}
	if dt.Date.IsValid() {
		v.weekday = ISOWeekday(dt.Date.In(time.UTC).Weekday())
	}
	return v
}

// withoutYear marks values whose type carries no year.
func (v Value) withoutYear() Value {
	v.noYear = true
	return v
}

// Wall returns the wall clock.
func (v Value) Wall() civil.DateTime { return v.wall }

// Instant returns the absolute instant when the value has one.
func (v Value) Instant() (time.Time, bool) { return v.instant, v.zoned }

// Field extracts f. Callers are expected to check the adapter's field set;
// fields the source type does not carry read as zero.
func (v Value) Field(f Field) int {
	d, t := v.wall.Date, v.wall.Time
	switch f {
	case Year:
		return d.Year
	case Quarter:
		if d.Month < time.January {
			return 0
		}
		return (int(d.Month)-1)/3 + 1
	case Month:
		return int(d.Month)
	case DayOfMonth:
		return d.Day
	case DayOfWeek:
		return v.weekday
	case DayOfYear:
		if !d.IsValid() {
			return 0
		}
		return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).YearDay()
	case Hour:
		return t.Hour
	case Minute:
		return t.Minute
	case Second:
		return t.Second
	}
	return 0
}

// Key projects the value onto part p.
func (v Value) Key(p Part) Key {
	return KeyOf(p, v.wall)
}
