// Package zone resolves the zone-id policy attached to a temporal constraint.
//
// A policy string is one of:
//
//   - "system" (or empty): convert values to the system zone. The system zone
//     defaults to time.Local and can be overridden by the caller.
//   - "provided": keep the zone carried by the value itself. Only types that
//     carry their own location (time.Time) accept it.
//   - any IANA zone id such as "Europe/Berlin" or "UTC": convert values to that
//     zone.
//
// Every temporal type declares which policy kinds it accepts through a Support
// set. Check reports ErrPolicyNotSupported when a constraint declares a policy
// that makes no sense for the annotated type, so misconfiguration surfaces once
// at initialization rather than on every validation call.
//
// # Usage
//
//	p, err := zone.Parse("Europe/Berlin")
//	if err != nil {
//	    // unknown zone id
//	}
//	if err := p.Check(zone.SupportAll); err != nil {
//	    // policy not applicable
//	}
//	loc := p.Location(time.Local, value.Location())
package zone
