package i18n

import "golang.org/x/text/language"

// DefaultLanguage is used when no preference matches.
const DefaultLanguage = "en"

// MatchLanguage resolves preferred, a single tag ("de-AT") or an
// Accept-Language style list ("fr;q=0.9, de;q=0.8"), against supported and
// returns the supported entry that matches best. fallback is returned when
// nothing matches.
func MatchLanguage(preferred string, supported []string, fallback string) string {
	if preferred == "" || len(supported) == 0 {
		return fallback
	}

	desired, _, err := language.ParseAcceptLanguage(preferred)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = language.Make(s)
	}
	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return fallback
	}
	return supported[idx]
}
