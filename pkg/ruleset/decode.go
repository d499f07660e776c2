package ruleset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrymomot/timeguard/pkg/temporal"
)

// decode converts a record value into the Go type of adapter.
func decode(adapter *temporal.Adapter, raw any) (any, error) {
	switch adapter.Name {
	case "datetime":
		return decodeInstant(raw)
	case "timestamp":
		if n, ok := number(raw); ok {
			sec, frac := math.Modf(n)
			return timestamppb.New(time.Unix(int64(sec), int64(frac*1e9)).UTC()), nil
		}
		t, err := decodeInstant(raw)
		if err != nil {
			return nil, err
		}
		return timestamppb.New(t), nil
	case "local_datetime":
		return withText(raw, civil.ParseDateTime)
	case "date":
		if t, ok := raw.(time.Time); ok {
			return civil.DateOf(t), nil
		}
		return withText(raw, civil.ParseDate)
	case "time":
		return withText(raw, temporal.ParseClock)
	case "year_month":
		return withText(raw, temporal.ParseYearMonth)
	case "month_day":
		return withText(raw, temporal.ParseMonthDay)
	case "year":
		if n, ok := integer(raw); ok {
			return temporal.CalendarYear(n), nil
		}
		return withText(raw, func(s string) (temporal.CalendarYear, error) {
			n, err := strconv.Atoi(s)
			return temporal.CalendarYear(n), err
		})
	case "month":
		if n, ok := integer(raw); ok {
			return temporal.ParseMonth(strconv.Itoa(n))
		}
		return withText(raw, temporal.ParseMonth)
	case "weekday":
		if n, ok := integer(raw); ok {
			raw = strconv.Itoa(n)
		}
		return withText(raw, func(s string) (time.Weekday, error) {
			n, err := temporal.ParseWeekday(s)
			return temporal.FromISOWeekday(n), err
		})
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFieldType, adapter.Name)
}

func decodeInstant(raw any) (time.Time, error) {
	if t, ok := raw.(time.Time); ok {
		return t, nil
	}
	return withText(raw, func(s string) (time.Time, error) {
		return time.Parse(time.RFC3339Nano, s)
	})
}

func withText[T any](raw any, parse func(string) (T, error)) (T, error) {
	var zero T
	s, ok := raw.(string)
	if !ok {
		return zero, fmt.Errorf("%w: expected string, got %T", ErrInvalidValue, raw)
	}
	v, err := parse(strings.TrimSpace(s))
	if err != nil {
		return zero, fmt.Errorf("%w: %q: %v", ErrInvalidValue, s, err)
	}
	return v, nil
}

func number(raw any) (float64, bool) {
	switch n := raw.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func integer(raw any) (int, bool) {
	n, ok := number(raw)
	if !ok || n != math.Trunc(n) {
		return 0, false
	}
	return int(n), true
}
