package constraint

import (
	"fmt"
	"slices"
	"sort"

	"github.com/dmitrymomot/timeguard/pkg/temporal"
)

// Family groups constraints by the extractor they use.
type Family uint8

const (
	FamilyField Family = iota
	FamilyPart
	FamilyMoment
	FamilyPredicate
)

func (f Family) String() string {
	switch f {
	case FamilyField:
		return "field"
	case FamilyPart:
		return "part"
	case FamilyMoment:
		return "moment"
	case FamilyPredicate:
		return "predicate"
	}
	return fmt.Sprintf("family(%d)", uint8(f))
}

// Definition is a catalog entry.
type Definition struct {
	Name   string
	Family Family
	Op     Op

	// Field is set for FamilyField.
	Field temporal.Field
	// Part is set for FamilyPart.
	Part temporal.Part
	// Predicate is set for FamilyPredicate; Negate inverts it.
	Predicate temporal.Predicate
	Negate    bool
	// Now is set for moment constraints that always compare with now.
	Now bool
}

func (d *Definition) newValidator(s Settings) Validator {
	base := zoned{settings: s}
	switch d.Family {
	case FamilyField:
		return &fieldValidator{zoned: base, field: d.Field, op: d.Op}
	case FamilyPart:
		return &partValidator{zoned: base, part: d.Part, op: d.Op}
	case FamilyPredicate:
		return &predicateValidator{zoned: base, predicate: d.Predicate, negate: d.Negate}
	default:
		return &momentValidator{zoned: base, op: d.Op, fixedNow: d.Now}
	}
}

// Supports reports whether the definition can extract what it needs from
// values handled by a. Zone policies are not considered.
func (d *Definition) Supports(a *temporal.Adapter) bool {
	switch d.Family {
	case FamilyField:
		return a.Fields.Has(d.Field)
	case FamilyPart:
		return a.Parts.Has(d.Part)
	case FamilyPredicate:
		return d.Predicate.Supported(a.Fields)
	default:
		return a.CanOrder()
	}
}

// TakesValues reports whether the constraint is configured with values.
func (d *Definition) TakesValues() bool {
	return d.Family == FamilyField || d.Family == FamilyPart
}

// TakesMoment reports whether the constraint accepts Moment and Duration.
func (d *Definition) TakesMoment() bool {
	return d.Family == FamilyMoment
}

var catalog = map[string]*Definition{}

func add(d *Definition) {
	if _, dup := catalog[d.Name]; dup {
		panic("constraint: duplicate definition " + d.Name)
	}
	catalog[d.Name] = d
}

func init() {
	for _, f := range temporal.Fields() {
		for _, op := range Ops() {
			add(&Definition{Name: f.String() + "_" + op.String(), Family: FamilyField, Op: op, Field: f})
		}
	}

	for _, p := range temporal.Parts() {
		for _, op := range OrderOps() {
			add(&Definition{Name: p.String() + "_" + op.String(), Family: FamilyPart, Op: op, Part: p})
		}
	}

	for _, op := range []Op{OpBefore, OpAfter, OpNotBefore, OpNotAfter} {
		add(&Definition{Name: op.String(), Family: FamilyMoment, Op: op})
	}
	add(&Definition{Name: "past", Family: FamilyMoment, Op: OpBefore, Now: true})
	add(&Definition{Name: "future", Family: FamilyMoment, Op: OpAfter, Now: true})
	add(&Definition{Name: "past_or_present", Family: FamilyMoment, Op: OpNotAfter, Now: true})
	add(&Definition{Name: "future_or_present", Family: FamilyMoment, Op: OpNotBefore, Now: true})

	for _, p := range temporal.Predicates() {
		add(&Definition{Name: p.Name, Family: FamilyPredicate, Predicate: p})
	}
	add(&Definition{Name: "not_leap_year", Family: FamilyPredicate, Predicate: temporal.LeapYear, Negate: true})
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (*Definition, bool) {
	d, ok := catalog[name]
	return d, ok
}

// Names returns every constraint name, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns every catalog entry sorted by name.
func Definitions() []*Definition {
	defs := make([]*Definition, 0, len(catalog))
	for _, name := range Names() {
		defs = append(defs, catalog[name])
	}
	return defs
}

// SupportedTypes returns the short names of the types d can be applied to.
func SupportedTypes(d *Definition) []string {
	var names []string
	for _, a := range temporal.Adapters() {
		if d.Supports(a) {
			names = append(names, a.Name)
		}
	}
	return slices.Clip(names)
}
