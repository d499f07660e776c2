package playground

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/timeguard/pkg/constraint"
)

const (
	segmentSep = ";"
	keySep     = "="
)

// ParseParam builds the constraint for tag name from a tag parameter such as
// "9 10 11;zone=provided" or "now;duration=-P1D".
func ParseParam(name, param string) (constraint.Constraint, error) {
	c := constraint.Constraint{Name: name}
	def, ok := constraint.Lookup(name)
	if !ok {
		return c, fmt.Errorf("%w: %q", constraint.ErrUnknownConstraint, name)
	}

	for i, segment := range strings.Split(param, segmentSep) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		if key, value, found := strings.Cut(segment, keySep); found && isKey(key) {
			switch strings.TrimSpace(key) {
			case "zone":
				c.ZoneID = strings.TrimSpace(value)
			case "moment":
				c.Moment = strings.TrimSpace(value)
			case "duration":
				c.Duration = strings.TrimSpace(value)
			case "message":
				c.Message = strings.TrimSpace(value)
			}
			continue
		}

		if i > 0 {
			return c, fmt.Errorf("%w: %q in %q", ErrInvalidParam, segment, param)
		}
		if def.TakesMoment() {
			c.Moment = segment
		} else {
			c.Values = strings.Fields(segment)
		}
	}
	return c, nil
}

func isKey(key string) bool {
	switch strings.TrimSpace(key) {
	case "zone", "moment", "duration", "message":
		return true
	}
	return false
}
