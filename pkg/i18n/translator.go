package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/timeguard/pkg/logger"
)

// Translator resolves message keys per language. It is safe for concurrent
// use; Reload swaps the catalogue atomically.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator loads the catalogue from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload reads the catalogue from the adapter again.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	for lang, messages := range translations {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidStructure)
		}
		if messages == nil {
			return fmt.Errorf("%w: nil messages for language %q", ErrInvalidStructure, lang)
		}
	}

	t.mu.Lock()
	t.translations = translations
	langs := t.supportedLanguages()
	t.mu.Unlock()

	if len(langs) == 0 {
		t.logger.WarnContext(ctx, "no translations loaded")
	} else {
		t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", langs))
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted language codes of the catalogue.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when a preference cannot be
// matched.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// Match resolves a language preference to a supported language, falling back
// to the default language.
func (t *Translator) Match(preferred string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if _, ok := t.translations[preferred]; ok {
		return preferred
	}
	return MatchLanguage(preferred, t.supportedLanguages(), t.defaultLang)
}

// getTranslation walks nested maps along the dot separated key.
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}

		switch nested := next.(type) {
		case map[string]any:
			current = nested
		case map[any]any:
			current = make(map[string]any, len(nested))
			for k, v := range nested {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

// HasTranslation reports whether lang has a message for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	messages, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = getTranslation(messages, key)
	return ok
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// format replaces %{name} placeholders. Unknown placeholders are kept.
func format(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

// lookup finds the template for key, trying lang, then its best match, then
// the default language.
func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	candidates := []string{lang}
	if _, ok := t.translations[lang]; !ok {
		candidates = append(candidates, MatchLanguage(lang, t.supportedLanguages(), t.defaultLang))
	}
	candidates = append(candidates, t.defaultLang)

	for _, l := range candidates {
		messages, ok := t.translations[l]
		if !ok {
			continue
		}
		val, ok := getTranslation(messages, key)
		if !ok {
			continue
		}
		switch v := val.(type) {
		case string:
			return v, true
		case fmt.Stringer:
			return v.String(), true
		default:
			if t.missingLogMode {
				t.logger.Warn("translation is not a string", slog.String("lang", l), slog.String("key", key), slog.String("type", fmt.Sprintf("%T", v)))
			}
			return "", false
		}
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return "", false
}

// T translates key for lang. Arguments are key/value pairs substituted into
// %{key} placeholders:
//
//	tr.T("en", "validation.hour_in", "field", "opens_at", "values", "9, 10")
//
// Missing keys return the key itself (formatted) unless fallback to key is
// disabled, in which case the result is empty.
func (t *Translator) T(lang, key string, args ...string) string {
	return t.Tp(lang, key, toAny(pairs(args)))
}

// Tp is like T with parameters given as a map. Values are rendered with
// fmt.Sprint.
func (t *Translator) Tp(lang, key string, params map[string]any) string {
	strParams := make(map[string]string, len(params))
	for k, v := range params {
		strParams[k] = fmt.Sprint(v)
	}

	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.fallbackToKey {
			return format(key, strParams)
		}
		return ""
	}
	return format(tmpl, strParams)
}

// Td translates key or formats defaultValue when the key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	params := pairs(args)
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		return format(defaultValue, params)
	}
	return format(tmpl, params)
}

func toAny(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
