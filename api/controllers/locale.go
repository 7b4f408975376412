package controllers

import (
	"net/http"

	"github.com/farmshop-si/farmshop-backend/pkg/enums"
)

// localeFromRequest reads the locale query parameter and falls back to
// Slovenian for anything missing or unknown.
func localeFromRequest(r *http.Request) enums.Locale {
	raw := r.URL.Query().Get("locale")
	locale, err := enums.ParseLocale(raw)
	if err != nil {
		return enums.LocaleSL
	}
	return locale
}
