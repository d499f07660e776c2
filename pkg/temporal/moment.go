package temporal

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sosodev/duration"
)

// MomentNow is the literal for the current instant.
const MomentNow = "now"

// Moment is the reference point of before/after constraints. It is either the
// current instant, an absolute instant or a wall clock without zone.
type Moment struct {
	raw     string
	now     bool
	isLocal bool
	instant time.Time
	wall    civil.DateTime
}

// ParseMoment parses "now" (or empty), an RFC 3339 timestamp, a local date
// time "2006-01-02T15:04:05" or a date "2006-01-02".
func ParseMoment(s string) (Moment, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, MomentNow) {
		return Moment{raw: MomentNow, now: true}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Moment{raw: s, instant: t}, nil
	}
	if dt, err := civil.ParseDateTime(s); err == nil {
		return Moment{raw: s, isLocal: true, wall: dt}, nil
	}
	if d, err := civil.ParseDate(s); err == nil {
		return Moment{raw: s, isLocal: true, wall: civil.DateTime{Date: d}}, nil
	}
	return Moment{}, fmt.Errorf("%w: moment %q", ErrInvalidLiteral, s)
}

// IsNow reports whether the moment is evaluated per call.
func (m Moment) IsNow() bool { return m.now }

// IsLocal reports whether the moment is a wall clock without zone.
func (m Moment) IsLocal() bool { return m.isLocal }

func (m Moment) String() string {
	if m.raw == "" {
		return MomentNow
	}
	return m.raw
}

// Resolve returns the instant the moment denotes. now is used for "now";
// local literals are placed in loc.
func (m Moment) Resolve(now time.Time, loc *time.Location) time.Time {
	switch {
	case m.now || m.raw == "":
		return now
	case m.IsLocal():
		if loc == nil {
			loc = time.Local
		}
		return m.wall.In(loc)
	default:
		return m.instant
	}
}

var isoDuration = regexp.MustCompile(`^P(\d+(\.\d+)?[YMWD])*(T(\d+(\.\d+)?[HMS])+)?$`)

// maxCalendarYears bounds the calendar components of a duration so that
// shifted dates stay representable.
const maxCalendarYears = 10000

// Fractional calendar components are converted with fixed lengths.
const (
	nominalDay   = 24 * time.Hour
	nominalWeek  = 7 * nominalDay
	nominalMonth = 30 * nominalDay
	nominalYear  = 365 * nominalDay
)

// Duration is a signed calendar-aware offset. Years and months are added on
// the calendar and clamp to the last day of the month, then days are added,
// then hours and smaller units as elapsed time.
type Duration struct {
	raw    string
	years  int
	months int
	days   int
	clock  time.Duration
	neg    bool
}

// ParseDuration accepts ISO-8601 durations ("P1DT2H", "-PT30M") and Go
// duration strings ("90m", "-1h").
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Duration{}, nil
	}

	body, neg := s, false
	switch {
	case strings.HasPrefix(body, "-"):
		body, neg = body[1:], true
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}

	if upper := strings.ToUpper(body); strings.HasPrefix(upper, "P") {
		if upper == "P" || !isoDuration.MatchString(upper) {
			return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		iso, err := duration.Parse(upper)
		if err != nil {
			return Duration{}, errors.Join(fmt.Errorf("%w: %q", ErrInvalidDuration, s), err)
		}
		d, ok := fromISO(iso)
		if !ok {
			return Duration{}, fmt.Errorf("%w: %q is out of range", ErrInvalidDuration, s)
		}
		d.raw, d.neg = s, neg
		return d, nil
	}

	gd, err := time.ParseDuration(s)
	if err != nil {
		return Duration{}, errors.Join(fmt.Errorf("%w: %q", ErrInvalidDuration, s), err)
	}
	if gd < 0 {
		return Duration{raw: s, clock: -gd, neg: true}, nil
	}
	return Duration{raw: s, clock: gd}, nil
}

// fromISO splits iso into calendar and clock parts. Whole calendar
// components stay on the calendar; a fractional one moves every component to
// elapsed time. ok is false when a component does not fit.
func fromISO(iso *duration.Duration) (Duration, bool) {
	whole := func(f float64) bool { return f == math.Trunc(f) }
	calendar := whole(iso.Years) && whole(iso.Months) && whole(iso.Weeks) && whole(iso.Days)

	if calendar {
		days := iso.Weeks*7 + iso.Days
		if iso.Years > maxCalendarYears || iso.Months > 12*maxCalendarYears || days > 366*maxCalendarYears {
			return Duration{}, false
		}
		clock, ok := nanos(iso.Hours*float64(time.Hour), iso.Minutes*float64(time.Minute), iso.Seconds*float64(time.Second))
		if !ok {
			return Duration{}, false
		}
		return Duration{years: int(iso.Years), months: int(iso.Months), days: int(days), clock: clock}, true
	}

	clock, ok := nanos(
		iso.Years*float64(nominalYear),
		iso.Months*float64(nominalMonth),
		iso.Weeks*float64(nominalWeek),
		iso.Days*float64(nominalDay),
		iso.Hours*float64(time.Hour),
		iso.Minutes*float64(time.Minute),
		iso.Seconds*float64(time.Second),
	)
	return Duration{clock: clock}, ok
}

// nanos sums parts without overflowing time.Duration.
func nanos(parts ...float64) (time.Duration, bool) {
	var total float64
	for _, p := range parts {
		total += p
	}
	if math.IsNaN(total) || math.IsInf(total, 0) || total >= float64(math.MaxInt64) {
		return 0, false
	}
	return time.Duration(total), true
}

// IsZero reports whether the duration shifts nothing.
func (d Duration) IsZero() bool {
	return d.years == 0 && d.months == 0 && d.days == 0 && d.clock == 0
}

func (d Duration) String() string {
	if d.raw == "" {
		return "PT0S"
	}
	return d.raw
}

// AddTo shifts t by the duration. Jan 31 plus a month is the last day of
// February.
func (d Duration) AddTo(t time.Time) time.Time {
	sign := 1
	if d.neg {
		sign = -1
	}

	if d.years != 0 || d.months != 0 {
		year, month, day := t.Date()
		total := year*12 + int(month) - 1 + sign*(d.years*12+d.months)
		year, month = floorDiv(total, 12), time.Month(total-floorDiv(total, 12)*12+1)
		day = min(day, daysIn(month, year))
		hh, mm, ss := t.Clock()
		t = time.Date(year, month, day, hh, mm, ss, t.Nanosecond(), t.Location())
	}
	return t.AddDate(0, 0, sign*d.days).Add(time.Duration(sign) * d.clock)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
