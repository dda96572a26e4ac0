package domain

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the two storefront languages.
type Locale string

const (
	French Locale = "fr"
	Arabic Locale = "ar"
)

var localeMatcher = language.NewMatcher([]language.Tag{language.French, language.Arabic})

// ParseLocale resolves a language tag or an Accept-Language header value.
// Anything that does not match Arabic resolves to French.
func ParseLocale(s string) Locale {
	s = strings.TrimSpace(s)
	if s == "" {
		return French
	}
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return French
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return French
	}
	if idx == 1 {
		return Arabic
	}
	return French
}

// Dir returns the text direction for the locale.
func (l Locale) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

func (l Locale) String() string {
	return string(l)
}
