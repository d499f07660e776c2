package temporal

import "time"

// Predicate is a boolean property of a value together with the fields it
// needs to be decidable.
type Predicate struct {
	Name     string
	Requires FieldSet
	Test     func(Value) bool
}

// Supported reports whether values carrying fields can be tested.
func (p Predicate) Supported(fields FieldSet) bool {
	return fields&p.Requires == p.Requires
}

var (
	// LeapYear holds for values in a leap year.
	LeapYear = Predicate{
		Name:     "leap_year",
		Requires: FieldsOf(Year),
		Test: func(v Value) bool {
			return CalendarYear(v.Field(Year)).IsLeap()
		},
	}

	// Weekend holds on Saturday and Sunday.
	Weekend = Predicate{
		Name:     "weekend",
		Requires: FieldsOf(DayOfWeek),
		Test: func(v Value) bool {
			return v.Field(DayOfWeek) >= ISOWeekday(time.Saturday)
		},
	}

	// WorkingDay holds Monday through Friday.
	WorkingDay = Predicate{
		Name:     "working_day",
		Requires: FieldsOf(DayOfWeek),
		Test: func(v Value) bool {
			dow := v.Field(DayOfWeek)
			return dow >= 1 && dow <= 5
		},
	}

	// FirstDayOfMonth holds on the 1st.
	FirstDayOfMonth = Predicate{
		Name:     "first_day_of_month",
		Requires: FieldsOf(DayOfMonth),
		Test: func(v Value) bool {
			return v.Field(DayOfMonth) == 1
		},
	}

	// LastDayOfMonth holds on the last day of the month. Without a year,
	// February ends on the 29th.
	LastDayOfMonth = Predicate{
		Name:     "last_day_of_month",
		Requires: FieldsOf(Month, DayOfMonth),
		Test: func(v Value) bool {
			m := time.Month(v.Field(Month))
			if m < time.January {
				return false
			}
			year := v.Field(Year)
			if v.noYear {
				year = 2000
			}
			return v.Field(DayOfMonth) == daysIn(m, year)
		},
	}
)

// Predicates lists the built-in predicates.
func Predicates() []Predicate {
	return []Predicate{LeapYear, Weekend, WorkingDay, FirstDayOfMonth, LastDayOfMonth}
}
