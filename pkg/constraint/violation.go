package constraint

import (
	"strings"

	"github.com/dmitrymomot/timeguard/pkg/temporal"
)

// KeyPrefix prefixes the translation key of every built-in constraint.
const KeyPrefix = "validation."

// Violation describes a failed constraint in translation-friendly form.
type Violation struct {
	Field      string
	Constraint string
	Key        string
	Params     map[string]any
}

// Violation builds the violation reported when value fails for field.
func (cc *Compiled) Violation(field string) Violation {
	key := KeyPrefix + cc.def.Name
	if cc.c.Message != "" {
		key = cc.c.Message
	}
	return Violation{
		Field:      field,
		Constraint: cc.def.Name,
		Key:        key,
		Params:     cc.params(field),
	}
}

func (cc *Compiled) params(field string) map[string]any {
	p := map[string]any{
		"field": field,
		"zone":  zoneLabel(cc.c.ZoneID),
	}

	switch cc.def.Family {
	case FamilyField:
		labels := make([]string, 0, len(cc.c.Values))
		for _, raw := range cc.c.Values {
			// Values were validated at initialization.
			n, _ := temporal.ParseFieldValue(cc.def.Field, raw)
			labels = append(labels, temporal.FormatFieldValue(cc.def.Field, n))
		}
		p["values"] = strings.Join(labels, ", ")
		p["value"] = p["values"]
	case FamilyPart:
		p["value"] = strings.TrimSpace(cc.c.Values[0])
	case FamilyMoment:
		moment := cc.c.Moment
		if moment == "" {
			moment = temporal.MomentNow
		}
		p["moment"] = moment
		p["duration"] = cc.c.Duration
		p["reference"] = reference(moment, cc.c.Duration)
	}
	return p
}

func zoneLabel(id string) string {
	if id == "" {
		return "system"
	}
	return id
}

// reference renders the shifted moment, e.g. "now-P1D" or "2024-01-01+PT2H".
func reference(moment, duration string) string {
	duration = strings.TrimSpace(duration)
	switch {
	case duration == "":
		return moment
	case strings.HasPrefix(duration, "-"):
		return moment + duration
	default:
		return moment + "+" + strings.TrimPrefix(duration, "+")
	}
}
