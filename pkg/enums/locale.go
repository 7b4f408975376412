package enums

import "fmt"

// Locale identifies a catalog display language. Slovenian is the base
// language; names fall back to it when a translation is missing.
type Locale string

const (
	LocaleSL Locale = "sl"
	LocaleEN Locale = "en"
	LocaleDE Locale = "de"
	LocaleIT Locale = "it"
)

var validLocales = []Locale{
	LocaleSL,
	LocaleEN,
	LocaleDE,
	LocaleIT,
}

// String implements fmt.Stringer.
func (l Locale) String() string {
	return string(l)
}

// IsValid reports whether the value is a known Locale.
func (l Locale) IsValid() bool {
	for _, candidate := range validLocales {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseLocale converts raw input into a Locale, defaulting to Slovenian.
func ParseLocale(value string) (Locale, error) {
	if value == "" {
		return LocaleSL, nil
	}
	for _, candidate := range validLocales {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid locale %q", value)
}

// Locales returns the supported locale set with the base locale first.
func Locales() []Locale {
	out := make([]Locale, len(validLocales))
	copy(out, validLocales)
	return out
}
