package i18n

import (
	"context"
	"embed"
	"sync"
)

//go:embed locales/*.yaml
var locales embed.FS

// BuiltinAdapter serves the messages shipped with the module.
func BuiltinAdapter() TranslationAdapter {
	return NewFSAdapter(NewYAMLParser(), locales, "locales")
}

// NewBuiltin creates a translator over the built-in messages.
func NewBuiltin(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, BuiltinAdapter(), options...)
}

var builtin = sync.OnceValue(func() *Translator {
	t, err := NewBuiltin(context.Background())
	if err != nil {
		// The locales are embedded; failing here is a build defect.
		panic(err)
	}
	return t
})

// Builtin returns the shared translator over the built-in messages.
func Builtin() *Translator { return builtin() }
