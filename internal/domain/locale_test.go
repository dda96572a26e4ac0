package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	cases := map[string]Locale{
		"":                     French,
		"fr":                   French,
		"ar":                   Arabic,
		"ar-MR":                Arabic,
		"en-US":                French,
		"ar;q=0.9, fr;q=0.8":   Arabic,
		"fr-FR,fr;q=0.9,ar":    French,
		"not a language tag!!": French,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLocale(in), in)
	}
}

func TestLocaleDir(t *testing.T) {
	assert.Equal(t, "rtl", Arabic.Dir())
	assert.Equal(t, "ltr", French.Dir())
}

func TestLocalizedTextGet(t *testing.T) {
	text := LocalizedText{Fr: "Bonjour"}
	assert.Equal(t, "Bonjour", text.Get(Arabic))
	text.Ar = "مرحبا"
	assert.Equal(t, "مرحبا", text.Get(Arabic))
}
