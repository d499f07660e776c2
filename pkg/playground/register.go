package playground

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/timeguard/pkg/cache"
	"github.com/dmitrymomot/timeguard/pkg/constraint"
	"github.com/dmitrymomot/timeguard/pkg/logger"
	"github.com/dmitrymomot/timeguard/pkg/temporal"
)

// Option configures a Registrar.
type Option func(*Registrar)

// WithSettings passes settings such as the system zone or a clock to every
// compiled constraint.
func WithSettings(opts ...constraint.Option) Option {
	return func(r *Registrar) { r.settings = append(r.settings, opts...) }
}

// WithPrefix registers tags as prefix+name, e.g. "tg_hour_in".
func WithPrefix(prefix string) Option {
	return func(r *Registrar) { r.prefix = prefix }
}

// WithLogger sets the logger for registration and compile diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registrar) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCacheSize bounds the number of compiled constraints kept per
// Registrar. Non-positive sizes are ignored.
func WithCacheSize(n int) Option {
	return func(r *Registrar) {
		if n > 0 {
			r.cacheSize = n
		}
	}
}

// DefaultCacheSize is the number of compiled constraints a Registrar keeps.
const DefaultCacheSize = 1024

type cacheKey struct {
	name   string
	param  string
	target reflect.Type
}

// Registrar owns the compiled constraint cache of one validator instance.
type Registrar struct {
	prefix    string
	settings  []constraint.Option
	logger    *slog.Logger
	cacheSize int
	cache     *cache.LRU[cacheKey, *constraint.Compiled]
}

// New creates a Registrar without registering anything.
func New(opts ...Option) *Registrar {
	r := &Registrar{logger: logger.Discard(), cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(r)
	}
	r.cache = cache.New[cacheKey, *constraint.Compiled](r.cacheSize)
	r.cache.OnEvict(func(k cacheKey, _ *constraint.Compiled) {
		r.logger.Debug("compiled constraint evicted",
			slog.String("tag", r.prefix+k.name),
			slog.String("param", k.param),
			slog.String("type", typeString(k.target)))
	})
	r.settings = append([]constraint.Option{constraint.WithLogger(r.logger)}, r.settings...)
	return r
}

// Register adds every catalogue constraint as a tag of v.
func Register(v *validator.Validate, opts ...Option) (*Registrar, error) {
	r := New(opts...)
	if err := r.Register(v); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds every catalogue constraint as a tag of v.
func (r *Registrar) Register(v *validator.Validate) error {
	names := constraint.Names()
	for _, name := range names {
		if err := v.RegisterValidation(r.prefix+name, r.validationFunc(name), true); err != nil {
			return fmt.Errorf("register tag %q: %w", r.prefix+name, err)
		}
	}
	r.logger.Debug("temporal tags registered", logger.Count(len(names)), slog.String("prefix", r.prefix))
	return nil
}

// Tag returns the registered tag of a catalogue name.
func (r *Registrar) Tag(name string) string { return r.prefix + name }

func (r *Registrar) name(tag string) (string, bool) {
	if !strings.HasPrefix(tag, r.prefix) {
		return "", false
	}
	name := strings.TrimPrefix(tag, r.prefix)
	_, ok := constraint.Lookup(name)
	return name, ok
}

func (r *Registrar) validationFunc(name string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value, target, ok := fieldValue(fl.Field())
		if !ok {
			return true
		}
		cc, err := r.compile(name, fl.Param(), target)
		if err != nil {
			panic(err)
		}
		return cc.IsValid(value)
	}
}

// Compile returns the cached validator for tag parameter param and target,
// compiling it on first use.
func (r *Registrar) Compile(name, param string, target reflect.Type) (*constraint.Compiled, error) {
	return r.compile(name, param, target)
}

func (r *Registrar) compile(name, param string, target reflect.Type) (*constraint.Compiled, error) {
	key := cacheKey{name: name, param: param, target: target}
	return r.cache.GetOrLoad(key, func() (*constraint.Compiled, error) {
		c, err := ParseParam(name, param)
		if err != nil {
			return nil, &constraint.ConfigError{Constraint: name, Type: typeString(target), Err: err}
		}
		return constraint.New(c, target, r.settings...)
	})
}

// CacheLen reports how many compiled constraints are cached.
func (r *Registrar) CacheLen() int { return r.cache.Len() }

// fieldValue unwraps what go-playground hands over. Nil pointers and
// interfaces report ok=false. Dereferenced values whose pointer type is the
// supported one (e.g. timestamppb.Timestamp) are passed by address.
func fieldValue(rv reflect.Value) (any, reflect.Type, bool) {
	if !rv.IsValid() {
		return nil, nil, false
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil, false
		}
	}

	if _, ok := temporal.Lookup(rv.Type()); !ok && rv.CanAddr() {
		if _, ok := temporal.Lookup(reflect.PointerTo(rv.Type())); ok {
			addr := rv.Addr()
			return addr.Interface(), addr.Type(), true
		}
	}
	if !rv.CanInterface() {
		return nil, nil, false
	}
	return rv.Interface(), rv.Type(), true
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
