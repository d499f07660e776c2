package i18n

import "context"

type languageContextKey struct{}

// WithLanguage stores the preferred language in ctx.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// LanguageFrom returns the language stored in ctx, or DefaultLanguage.
func LanguageFrom(ctx context.Context) string {
	if ctx == nil {
		return DefaultLanguage
	}
	if lang, _ := ctx.Value(languageContextKey{}).(string); lang != "" {
		return lang
	}
	return DefaultLanguage
}
