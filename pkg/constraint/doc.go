// Package constraint implements the catalog of temporal constraints and the
// validators behind them.
//
// A Constraint is an immutable record naming a catalog entry together with its
// parameters: allowed values, a reference moment, a duration and a zone-id
// policy. New looks the entry up, creates its Validator and initializes it for
// a target Go type. Initialization is the only place configuration errors are
// raised; afterwards IsValid is a pure function of its input.
//
//	cc, err := constraint.New(constraint.Constraint{
//	    Name:   "hour_in",
//	    Values: []string{"9", "10", "11"},
//	    ZoneID: "provided",
//	}, reflect.TypeFor[time.Time]())
//	if err != nil {
//	    // *ConfigError: unknown name, unsupported type, bad zone policy, ...
//	}
//	ok := cc.IsValid(time.Now())
//
// # Catalog
//
// Constraint names are derived from what they extract and how they compare:
//
//   - field constraints: "<field>_<op>" for year, quarter, month,
//     day_of_month, day_of_week, day_of_year, hour, minute and second with
//     in, not_in, equal, not_equal, before, not_before, after and not_after;
//   - part constraints: "<part>_<op>" for date, time, year_month, month_day
//     and date_time with the single-value operators;
//   - moment constraints: before, after, not_before, not_after, past, future,
//     past_or_present and future_or_present;
//   - predicate constraints: leap_year, not_leap_year, weekend, working_day,
//     first_day_of_month and last_day_of_month.
//
// All built-in validators share one base that resolves the zone policy and
// normalizes input through package temporal, so each family only supplies
// its extractor and comparison.
//
// # Errors
//
// Configuration problems are reported as *ConfigError wrapping one of the
// sentinel errors (ErrUnknownConstraint, ErrUnsupportedType,
// ErrFieldNotSupported, ErrPolicyNotSupported, ...). Validation failures are
// not errors: IsValid returns false and Violation describes the failure for
// translation.
package constraint
