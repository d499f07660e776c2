package ruleset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/dmitrymomot/timeguard/pkg/constraint"
	"github.com/dmitrymomot/timeguard/pkg/i18n"
	"github.com/dmitrymomot/timeguard/pkg/logger"
	"github.com/dmitrymomot/timeguard/pkg/temporal"
	"github.com/dmitrymomot/timeguard/pkg/validator"
	"github.com/dmitrymomot/timeguard/pkg/zone"
)

// Option configures a RuleSet.
type Option func(*options)

type options struct {
	settings   []constraint.Option
	translator *i18n.Translator
	logger     *slog.Logger
}

// WithSettings passes settings such as the system zone or a clock to every
// compiled constraint.
func WithSettings(opts ...constraint.Option) Option {
	return func(o *options) { o.settings = append(o.settings, opts...) }
}

// WithTranslator renders violation messages. Defaults to the built-in
// catalogue.
func WithTranslator(tr *i18n.Translator) Option {
	return func(o *options) {
		if tr != nil {
			o.translator = tr
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

type field struct {
	name    string
	adapter *temporal.Adapter
	rules   []*constraint.Compiled
}

// RuleSet is a compiled rule document. It is immutable and safe for
// concurrent use.
type RuleSet struct {
	fields     []field
	translator *i18n.Translator
	logger     *slog.Logger
}

// Load reads and compiles the rule document at path.
func Load(path string, opts ...Option) (*RuleSet, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return Compile(doc, opts...)
}

// Parse decodes and compiles a rule document.
func Parse(data []byte, format Format, opts ...Option) (*RuleSet, error) {
	doc, err := ParseDocument(data, format)
	if err != nil {
		return nil, err
	}
	return Compile(doc, opts...)
}

// Compile initializes every rule of doc. All configuration errors are
// returned joined.
func Compile(doc *Document, opts ...Option) (*RuleSet, error) {
	o := options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.translator == nil {
		o.translator = i18n.Builtin()
	}
	settings := append([]constraint.Option{constraint.WithLogger(o.logger)}, o.settings...)

	var defaultPolicy zone.Policy
	if doc.Zone != "" {
		p, err := zone.Parse(doc.Zone)
		if err != nil {
			return nil, fmt.Errorf("document zone: %w", err)
		}
		defaultPolicy = p
	}

	names := make([]string, 0, len(doc.Fields))
	for name := range doc.Fields {
		names = append(names, name)
	}
	slices.Sort(names)

	rs := &RuleSet{translator: o.translator, logger: o.logger}
	var errs []error
	for _, name := range names {
		decl := doc.Fields[name]
		adapter, ok := temporal.LookupName(strings.ToLower(strings.TrimSpace(decl.Type)))
		if !ok {
			errs = append(errs, fmt.Errorf("field %q: %w: %q", name, ErrUnknownFieldType, decl.Type))
			continue
		}

		f := field{name: name, adapter: adapter}
		for _, rule := range decl.Rules {
			c := rule.Constraint()
			if c.ZoneID == "" && doc.Zone != "" && defaultPolicy.Check(adapter.Zones) == nil {
				c.ZoneID = doc.Zone
			}
			cc, err := constraint.New(c, adapter.Type, settings...)
			if err != nil {
				errs = append(errs, fmt.Errorf("field %q: %w", name, err))
				continue
			}
			f.rules = append(f.rules, cc)
		}
		rs.fields = append(rs.fields, f)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	o.logger.Debug("ruleset compiled", logger.Count(len(rs.fields)), logger.Zone(doc.Zone))
	return rs, nil
}

// Fields returns the declared field names in order.
func (rs *RuleSet) Fields() []string {
	names := make([]string, len(rs.fields))
	for i, f := range rs.fields {
		names[i] = f.name
	}
	return names
}

// Validate checks record against every rule. Violations are returned as
// validator.ValidationErrors with messages in the language stored in ctx
// (see i18n.WithLanguage). Values that cannot be decoded into the field type
// are violations with the key "validation.type".
func (rs *RuleSet) Validate(ctx context.Context, record map[string]any) error {
	lang := i18n.LanguageFrom(ctx)

	var errs validator.ValidationErrors
	for _, f := range rs.fields {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, ok := record[f.name]
		if !ok || raw == nil {
			continue
		}

		value, err := decode(f.adapter, raw)
		if err != nil {
			rs.logger.DebugContext(ctx, "field value rejected", logger.Field(f.name), logger.Error(err))
			params := map[string]any{"field": f.name, "type": f.adapter.Name}
			errs.Add(validator.ValidationError{
				Field:             f.name,
				Message:           rs.translator.Tp(lang, typeKey, params),
				TranslationKey:    typeKey,
				TranslationValues: params,
			})
			continue
		}

		for _, cc := range f.rules {
			if cc.IsValid(value) {
				continue
			}
			v := cc.Violation(f.name)
			errs.Add(validator.ValidationError{
				Field:             f.name,
				Message:           rs.translator.Tp(lang, v.Key, v.Params),
				TranslationKey:    v.Key,
				TranslationValues: v.Params,
			})
		}
	}

	rs.logger.DebugContext(ctx, "record validated", logger.Count(len(errs)))
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

const typeKey = constraint.KeyPrefix + "type"
