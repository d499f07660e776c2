// Package temporal normalizes the date/time representations supported by
// timeguard into a single comparable Value.
//
// Supported inputs are time.Time, *timestamppb.Timestamp, the zoneless
// civil.Date, civil.Time and civil.DateTime types, plus YearMonth, MonthDay,
// CalendarYear, time.Month and time.Weekday. Pointers to each type are accepted as
// well; a nil pointer normalizes to "no value".
//
// Each supported type is described by an Adapter that declares which calendar
// fields and parts the type carries and which zone policies it accepts.
// Lookup returns the adapter for a reflect.Type. Normalize converts a value to
// the wall clock of the resolved zone:
//
//	a, ok := temporal.Lookup(reflect.TypeOf(t))
//	v, ok := a.Normalize(t, zone.MustParse("Europe/Berlin"), time.Local)
//	hour := v.Field(temporal.Hour)
//
// Day-of-week values follow ISO numbering: Monday is 1 and Sunday is 7.
package temporal
