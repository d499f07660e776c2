package constraint

import (
	"fmt"
	"strconv"
)

// Op is a comparison applied after extraction.
type Op uint8

const (
	OpIn Op = iota
	OpNotIn
	OpEqual
	OpNotEqual
	OpBefore
	OpNotBefore
	OpAfter
	OpNotAfter
)

var opNames = [...]string{
	OpIn:        "in",
	OpNotIn:     "not_in",
	OpEqual:     "equal",
	OpNotEqual:  "not_equal",
	OpBefore:    "before",
	OpNotBefore: "not_before",
	OpAfter:     "after",
	OpNotAfter:  "not_after",
}

// Ops lists every operator.
func Ops() []Op {
	return []Op{OpIn, OpNotIn, OpEqual, OpNotEqual, OpBefore, OpNotBefore, OpAfter, OpNotAfter}
}

// OrderOps lists the single-value operators.
func OrderOps() []Op {
	return []Op{OpEqual, OpNotEqual, OpBefore, OpNotBefore, OpAfter, OpNotAfter}
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// IsSet reports whether the operator tests membership in a value list.
func (o Op) IsSet() bool { return o == OpIn || o == OpNotIn }

// holds applies a single-value operator to the result of comparing the
// extracted value with the reference (-1, 0, +1).
func (o Op) holds(c int) bool {
	switch o {
	case OpEqual:
		return c == 0
	case OpNotEqual:
		return c != 0
	case OpBefore:
		return c < 0
	case OpNotBefore:
		return c >= 0
	case OpAfter:
		return c > 0
	case OpNotAfter:
		return c <= 0
	}
	return false
}

// checkArity validates the number of values an operator receives.
func (o Op) checkArity(values []string) error {
	if o.IsSet() {
		if len(values) == 0 {
			return fmt.Errorf("%w: %s needs at least one value", ErrInvalidValues, o)
		}
		return nil
	}
	if len(values) != 1 {
		return fmt.Errorf("%w: %s needs exactly one value, got %d", ErrInvalidValues, o, len(values))
	}
	return nil
}
