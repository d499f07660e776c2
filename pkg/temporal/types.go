package temporal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalendarYear is a calendar year without any other component.
type CalendarYear int

// IsLeap reports whether the year has 366 days.
func (y CalendarYear) IsLeap() bool {
	n := int(y)
	return n%4 == 0 && (n%100 != 0 || n%400 == 0)
}

func (y CalendarYear) String() string { return strconv.Itoa(int(y)) }

// YearMonth is a month of a specific year, e.g. 2024-05.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth parses "2006-01".
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: year_month %q", ErrInvalidLiteral, s)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// IsValid reports whether the month is within range.
func (ym YearMonth) IsValid() bool {
	return ym.Month >= time.January && ym.Month <= time.December
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// MarshalText implements encoding.TextMarshaler.
func (ym YearMonth) MarshalText() ([]byte, error) {
	return []byte(ym.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ym *YearMonth) UnmarshalText(data []byte) error {
	v, err := ParseYearMonth(string(data))
	if err != nil {
		return err
	}
	*ym = v
	return nil
}

// MonthDay is a day of a month without a year, e.g. --12-25.
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay parses "--01-02" or "01-02". February 29 is accepted.
func ParseMonthDay(s string) (MonthDay, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "--")
	// 2000 is a leap year, so --02-29 parses.
	t, err := time.Parse("2006-01-02", "2000-"+s)
	if err != nil {
		return MonthDay{}, fmt.Errorf("%w: month_day %q", ErrInvalidLiteral, s)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

// IsValid reports whether the month/day combination exists in a leap year.
func (md MonthDay) IsValid() bool {
	if md.Month < time.January || md.Month > time.December || md.Day < 1 {
		return false
	}
	return md.Day <= daysIn(md.Month, 2000)
}

func (md MonthDay) String() string {
	return fmt.Sprintf("--%02d-%02d", int(md.Month), md.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (md MonthDay) MarshalText() ([]byte, error) {
	return []byte(md.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (md *MonthDay) UnmarshalText(data []byte) error {
	v, err := ParseMonthDay(string(data))
	if err != nil {
		return err
	}
	*md = v
	return nil
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
