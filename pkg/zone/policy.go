package zone

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind identifies how a policy picks the location.
type Kind uint8

const (
	System Kind = iota
	Provided
	Explicit
)

func (k Kind) String() string {
	switch k {
	case System:
		return "system"
	case Provided:
		return "provided"
	case Explicit:
		return "explicit"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Support is the set of policy kinds a temporal type accepts.
type Support uint8

const (
	SupportSystem Support = 1 << iota
	SupportProvided
	SupportExplicit

	// SupportAll is accepted by zoned types.
	SupportAll = SupportSystem | SupportProvided | SupportExplicit
	// SupportInstant is accepted by instants that carry no zone of their own.
	SupportInstant = SupportSystem | SupportExplicit
	// SupportLocal is accepted by wall-clock types without any zone.
	SupportLocal = SupportSystem
)

// Has reports whether kind k is in the set.
func (s Support) Has(k Kind) bool {
	return s&(1<<k) != 0
}

func (s Support) String() string {
	var parts []string
	for _, k := range []Kind{System, Provided, Explicit} {
		if s.Has(k) {
			parts = append(parts, k.String())
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// Policy is a parsed zone-id policy. The zero value is the system policy.
type Policy struct {
	kind Kind
	loc  *time.Location
}

// SystemPolicy returns the system policy.
func SystemPolicy() Policy { return Policy{kind: System} }

// ProvidedPolicy returns the policy that keeps the value's own zone.
func ProvidedPolicy() Policy { return Policy{kind: Provided} }

// At returns an explicit policy for loc. A nil loc falls back to UTC.
func At(loc *time.Location) Policy {
	if loc == nil {
		loc = time.UTC
	}
	return Policy{kind: Explicit, loc: loc}
}

// Parse converts a policy string into a Policy.
func Parse(s string) (Policy, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "system":
		return SystemPolicy(), nil
	case "provided":
		return ProvidedPolicy(), nil
	}

	// time.LoadLocation maps "Local" to the process zone, which would make an
	// explicit policy silently behave like the system one.
	if s == "Local" {
		return Policy{}, fmt.Errorf("%w: %q", ErrUnknownZone, s)
	}

	loc, err := time.LoadLocation(s)
	if err != nil {
		return Policy{}, errors.Join(fmt.Errorf("%w: %q", ErrUnknownZone, s), err)
	}
	return At(loc), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Policy {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Kind returns the policy kind.
func (p Policy) Kind() Kind { return p.kind }

// Explicit returns the explicit location, or nil for non-explicit policies.
func (p Policy) Explicit() *time.Location { return p.loc }

func (p Policy) String() string {
	if p.kind == Explicit {
		return p.loc.String()
	}
	return p.kind.String()
}

// Check reports whether the policy is accepted by a type with support s.
func (p Policy) Check(s Support) error {
	if s.Has(p.kind) {
		return nil
	}
	return fmt.Errorf("%w: %q (accepted: %s)", ErrPolicyNotSupported, p.String(), s)
}

// Location resolves the location values are converted to. system is used for
// the system policy and provided for the provided policy; nil arguments fall
// back to time.Local and UTC respectively.
func (p Policy) Location(system, provided *time.Location) *time.Location {
	switch p.kind {
	case Explicit:
		return p.loc
	case Provided:
		if provided == nil {
			return time.UTC
		}
		return provided
	default:
		if system == nil {
			return time.Local
		}
		return system
	}
}
