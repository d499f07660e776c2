// Package i18n turns violation keys into human readable messages.
//
// A Translator holds a catalogue of messages per language, loaded once from
// a TranslationAdapter (an in-memory map, a single file or any fs.FS such as
// the embedded built-in locales). Messages use named placeholders in the
// form `%{name}`:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFileAdapter(i18n.NewYAMLParser(), "messages.yaml"))
//	if err != nil {
//		return err
//	}
//	msg := tr.T("en", "validation.hour_in", "field", "opens_at", "values", "9, 10")
//
// Keys are dot separated and walk nested maps, so `validation.hour_in` is
// found under `validation:` → `hour_in:` in a YAML file.
//
// Builtin returns a translator over the English and German messages for
// every catalogue constraint shipped with the module. Language preferences
// such as "de-AT" or Accept-Language style lists are resolved against the
// supported languages with golang.org/x/text/language.
package i18n
