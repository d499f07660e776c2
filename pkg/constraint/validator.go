package constraint

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/timeguard/pkg/logger"
)

// Validator is the executable counterpart of a Constraint. Initialize is
// called exactly once with the constraint and the Go type of the values it
// will see; it fails with a *ConfigError when the combination is invalid.
// IsValid is then called any number of times, possibly concurrently.
type Validator interface {
	Initialize(c Constraint, target reflect.Type) error
	IsValid(value any) bool
}

// Compiled is an initialized validator bound to its constraint and type.
type Compiled struct {
	def       *Definition
	c         Constraint
	target    reflect.Type
	validator Validator
}

// New initializes the validator for c and the given target type.
func New(c Constraint, target reflect.Type, opts ...Option) (*Compiled, error) {
	s := NewSettings(opts...)
	return compile(c, target, s)
}

// MustNew is like New but panics on configuration errors.
func MustNew(c Constraint, target reflect.Type, opts ...Option) *Compiled {
	cc, err := New(c, target, opts...)
	if err != nil {
		panic(err)
	}
	return cc
}

// For compiles c for the type of sample.
func For(c Constraint, sample any, opts ...Option) (*Compiled, error) {
	return New(c, reflect.TypeOf(sample), opts...)
}

func compile(c Constraint, target reflect.Type, s Settings) (*Compiled, error) {
	def, ok := Lookup(c.Name)
	if !ok {
		err := &ConfigError{Constraint: c.Name, Type: typeName(target), Err: fmt.Errorf("%w: %q", ErrUnknownConstraint, c.Name)}
		s.Logger.Warn("constraint rejected", logger.Constraint(c.Name), logger.Error(err))
		return nil, err
	}

	v := def.newValidator(s)
	if err := v.Initialize(c, target); err != nil {
		s.Logger.Warn("constraint rejected",
			logger.Constraint(c.Name),
			logger.TargetType(typeName(target)),
			logger.Error(err),
		)
		return nil, err
	}

	s.Logger.Debug("constraint compiled",
		logger.Constraint(c.String()),
		logger.TargetType(typeName(target)),
		slog.String("family", def.Family.String()),
	)
	return &Compiled{def: def, c: c, target: target, validator: v}, nil
}

// IsValid reports whether value satisfies the constraint. Nil values are
// always valid.
func (cc *Compiled) IsValid(value any) bool {
	return cc.validator.IsValid(value)
}

// Constraint returns the constraint the validator was built from.
func (cc *Compiled) Constraint() Constraint { return cc.c }

// Definition returns the catalog entry.
func (cc *Compiled) Definition() *Definition { return cc.def }

// Type returns the target type.
func (cc *Compiled) Type() reflect.Type { return cc.target }

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func configError(c Constraint, target reflect.Type, err error) error {
	return &ConfigError{Constraint: c.Name, Type: typeName(target), Err: err}
}
