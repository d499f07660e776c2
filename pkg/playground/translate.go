package playground

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/timeguard/pkg/constraint"
	"github.com/dmitrymomot/timeguard/pkg/i18n"
	tgvalidator "github.com/dmitrymomot/timeguard/pkg/validator"
)

var defaultRegistrar = New()

// Errors converts go-playground validation errors into ValidationErrors with
// messages translated by tr in lang, using a registrar without prefix.
// See (*Registrar).Errors.
func Errors(err error, tr *i18n.Translator, lang string) error {
	return defaultRegistrar.Errors(err, tr, lang)
}

// Errors converts go-playground validation errors into ValidationErrors.
// Temporal tags get their catalogue translation key and parameters; other
// tags get the key "validation.<tag>" with the parameter "param", and keep
// the go-playground message when tr has no translation. A nil tr uses the
// built-in catalogue. Errors that are not validation errors are returned
// unchanged.
func (r *Registrar) Errors(err error, tr *i18n.Translator, lang string) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	if tr == nil {
		tr = i18n.Builtin()
	}

	out := make(tgvalidator.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, r.convert(fe, tr, lang))
	}
	return out
}

func (r *Registrar) convert(fe validator.FieldError, tr *i18n.Translator, lang string) tgvalidator.ValidationError {
	if name, ok := r.name(fe.Tag()); ok {
		if cc := r.lookup(name, fe.Param(), fe.Type()); cc != nil {
			v := cc.Violation(fe.Field())
			return tgvalidator.ValidationError{
				Field:             fe.Field(),
				Message:           tr.Tp(lang, v.Key, v.Params),
				TranslationKey:    v.Key,
				TranslationValues: v.Params,
			}
		}
	}

	key := constraint.KeyPrefix + fe.Tag()
	params := map[string]any{"field": fe.Field(), "param": fe.Param()}
	msg := fe.Error()
	if tr.HasTranslation(tr.Match(lang), key) {
		msg = tr.Tp(lang, key, params)
	}
	return tgvalidator.ValidationError{
		Field:             fe.Field(),
		Message:           msg,
		TranslationKey:    key,
		TranslationValues: params,
	}
}

// lookup finds the compiled validator of a failed field. go-playground
// reports dereferenced types, so the pointer type is tried as well.
func (r *Registrar) lookup(name, param string, typ reflect.Type) *constraint.Compiled {
	if typ == nil {
		return nil
	}
	for _, t := range []reflect.Type{typ, reflect.PointerTo(typ)} {
		if cc, err := r.compile(name, param, t); err == nil {
			return cc
		}
	}
	return nil
}
