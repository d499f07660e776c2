package temporal

import (
	"reflect"
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrymomot/timeguard/pkg/zone"
)

// Adapter describes how a supported Go type is normalized.
type Adapter struct {
	// Name is the short type name used in rule documents and messages.
	Name string
	// Type is the Go type handled by the adapter.
	Type reflect.Type
	// Fields are the fields the type carries.
	Fields FieldSet
	// Parts are the parts the type carries.
	Parts PartSet
	// Zones are the zone policies the type accepts.
	Zones zone.Support
	// Order is the finest part used for moment comparisons of local values.
	Order Part

	normalize func(v any, p zone.Policy, system *time.Location) (Value, bool)
}

// IsInstant reports whether values of the type denote an absolute instant.
func (a *Adapter) IsInstant() bool {
	return a.Zones.Has(zone.Explicit)
}

// Normalize converts v into a Value. It returns false for nil pointers and
// for values of another type.
func (a *Adapter) Normalize(v any, p zone.Policy, system *time.Location) (Value, bool) {
	if v == nil {
		return Value{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Type() != a.Type {
		return Value{}, false
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Value{}, false
		}
	}
	return a.normalize(v, p, system)
}

var (
	adapters     = map[reflect.Type]*Adapter{}
	adapterNames = map[string]*Adapter{}
	adapterOrder []*Adapter
)

// register adds a value adapter and, when withPtr is set, its pointer variant.
func register[T any](name string, fields FieldSet, parts PartSet, zones zone.Support, order Part, fn func(T, zone.Policy, *time.Location) Value, withPtr bool) {
	a := &Adapter{
		Name:   name,
		Type:   reflect.TypeFor[T](),
		Fields: fields,
		Parts:  parts,
		Zones:  zones,
		Order:  order,
		normalize: func(v any, p zone.Policy, sys *time.Location) (Value, bool) {
			return fn(v.(T), p, sys), true
		},
	}
	adapters[a.Type] = a
	adapterNames[name] = a
	adapterOrder = append(adapterOrder, a)

	if !withPtr {
		return
	}
	ptr := *a
	ptr.Type = reflect.TypeFor[*T]()
	ptr.normalize = func(v any, p zone.Policy, sys *time.Location) (Value, bool) {
		return fn(*v.(*T), p, sys), true
	}
	adapters[ptr.Type] = &ptr
}

func init() {
	every := PartsOf(PartDate, PartTime, PartYearMonth, PartMonthDay, PartDateTime, PartYear)

	register("datetime", allFields, every, zone.SupportAll, PartDateTime,
		func(t time.Time, p zone.Policy, sys *time.Location) Value {
			return ValueOf(t, p.Location(sys, t.Location()))
		}, true)

	adapters[reflect.TypeFor[*timestamppb.Timestamp]()] = &Adapter{
		Name:   "timestamp",
		Type:   reflect.TypeFor[*timestamppb.Timestamp](),
		Fields: allFields,
		Parts:  every,
		Zones:  zone.SupportInstant,
		Order:  PartDateTime,
		normalize: func(v any, p zone.Policy, sys *time.Location) (Value, bool) {
			ts := v.(*timestamppb.Timestamp)
			return ValueOf(ts.AsTime(), p.Location(sys, time.UTC)), true
		},
	}
	adapterNames["timestamp"] = adapters[reflect.TypeFor[*timestamppb.Timestamp]()]
	adapterOrder = append(adapterOrder, adapterNames["timestamp"])

	register("local_datetime", allFields, every, zone.SupportLocal, PartDateTime,
		func(dt civil.DateTime, _ zone.Policy, _ *time.Location) Value {
			return LocalValue(dt)
		}, true)

	register("date", dateFields, PartsOf(PartDate, PartYearMonth, PartMonthDay, PartYear), zone.SupportLocal, PartDate,
		func(d civil.Date, _ zone.Policy, _ *time.Location) Value {
			return LocalValue(civil.DateTime{Date: d})
		}, true)

	register("time", clockFields, PartsOf(PartTime), zone.SupportLocal, PartTime,
		func(t civil.Time, _ zone.Policy, _ *time.Location) Value {
			return LocalValue(civil.DateTime{Time: t})
		}, true)

	register("year_month", yearMonthField, PartsOf(PartYearMonth, PartYear), zone.SupportLocal, PartYearMonth,
		func(ym YearMonth, _ zone.Policy, _ *time.Location) Value {
			return LocalValue(civil.DateTime{Date: civil.Date{Year: ym.Year, Month: ym.Month}})
		}, true)

	register("month_day", monthDayFields, PartsOf(PartMonthDay), zone.SupportLocal, PartMonthDay,
		func(md MonthDay, _ zone.Policy, _ *time.Location) Value {
			return LocalValue(civil.DateTime{Date: civil.Date{Month: md.Month, Day: md.Day}}).withoutYear()
		}, true)

	register("year", FieldsOf(Year), PartsOf(PartYear), zone.SupportLocal, PartYear,
		func(y CalendarYear, _ zone.Policy, _ *time.Location) Value {
			return LocalValue(civil.DateTime{Date: civil.Date{Year: int(y)}})
		}, true)

	register("month", FieldsOf(Quarter, Month), 0, zone.SupportLocal, PartYearMonth,
		func(m time.Month, _ zone.Policy, _ *time.Location) Value {
			return LocalValue(civil.DateTime{Date: civil.Date{Month: m}}).withoutYear()
		}, true)

	register("weekday", FieldsOf(DayOfWeek), 0, zone.SupportLocal, PartDate,
		func(d time.Weekday, _ zone.Policy, _ *time.Location) Value {
			return Value{weekday: ISOWeekday(d)}
		}, true)
}

// Lookup returns the adapter for t.
func Lookup(t reflect.Type) (*Adapter, bool) {
	if t == nil {
		return nil, false
	}
	a, ok := adapters[t]
	return a, ok
}

// LookupName returns the adapter registered under a short type name.
func LookupName(name string) (*Adapter, bool) {
	a, ok := adapterNames[name]
	return a, ok
}

// Adapters returns the value adapters in registration order.
func Adapters() []*Adapter {
	return slices.Clone(adapterOrder)
}

// CanOrder reports whether values of the type can be compared with a moment.
func (a *Adapter) CanOrder() bool {
	return a.IsInstant() || a.Parts.Has(a.Order)
}
