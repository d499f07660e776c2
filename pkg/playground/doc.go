// Package playground registers the temporal constraint catalogue as tags of
// github.com/go-playground/validator/v10.
//
//	v := validator.New()
//	if _, err := playground.Register(v); err != nil {
//		return err
//	}
//
//	type Shift struct {
//		OpensAt  time.Time  `validate:"hour_in=9 10 11;zone=Europe/Berlin"`
//		Day      civil.Date `validate:"working_day,date_after=2024-01-01"`
//		Deadline *time.Time `validate:"before=now;duration=P30D"`
//	}
//
// The tag parameter holds the values (or the moment of moment constraints)
// followed by optional `key=value` segments separated by semicolons: zone,
// moment, duration and message. Values are separated by spaces since commas
// separate tags.
//
// A tag that cannot be initialized for the field type panics on first use,
// which is how go-playground reports malformed tags. Compiled constraints are
// kept in a bounded LRU keyed by tag, parameter and type (see WithCacheSize).
//
// Errors converts the resulting validator.ValidationErrors into this
// module's ValidationErrors with translated messages.
package playground
