// Package validator provides declarative, translation-friendly validation
// rules for date and time values.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Rules are evaluated with Apply, which aggregates failures into
// a ValidationErrors slice that satisfies the error interface.
//
// Temporal rules are built from the constraint catalogue:
//
//	err := validator.Apply(
//	    validator.HourIn("opens_at", req.OpensAt, []int{9, 10, 11}, validator.InZone("Europe/Berlin")),
//	    validator.DayOfWeekBefore("opens_at", req.OpensAt, time.Saturday, validator.InZone("provided")),
//	    validator.Before("created_at", req.CreatedAt, "now", validator.Shifted("-P1D")),
//	)
//
// Any value type with a temporal adapter works: time.Time, civil dates and
// times, *timestamppb.Timestamp, YearMonth, MonthDay, Year, time.Month,
// time.Weekday and pointers to them. Nil pointers are always valid.
//
// # Error Handling
//
// A rule whose constraint cannot be initialized for the value type (an hour
// rule on a civil.Date, "provided" on a zoneless type, a malformed duration)
// carries a *constraint.ConfigError in Rule.Err. Apply returns such errors
// joined, before any check runs, so a configuration mistake is never reported
// as invalid input:
//
//	if err := validator.Apply(rules...); err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        return verrs.Translate(tr, lang)
//	    }
//	    return err // configuration error
//	}
//
// Messages are rendered in English from the built-in catalogue; Translate
// renders them in another language with any i18n.Translator.
package validator
