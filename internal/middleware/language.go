// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"logokit/internal/i18n"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// LanguageKey is the context key for the resolved response language.
	LanguageKey contextKey = "language"

	// ClaimsKey is the context key for verified access-token claims.
	ClaimsKey contextKey = "claims"
)

// Language resolves the response language for every request and stores it
// in the context. The lang query parameter wins over the Accept-Language
// header; anything unrecognized resolves to English.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := r.URL.Query().Get("lang")
		if lang == "" {
			lang = firstAcceptLanguage(r.Header.Get("Accept-Language"))
		}

		ctx := context.WithValue(r.Context(), LanguageKey, i18n.Normalize(lang))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LanguageFromCtx extracts the resolved language from the request context.
// Returns English if the middleware did not run.
func LanguageFromCtx(ctx context.Context) string {
	if lang, ok := ctx.Value(LanguageKey).(string); ok {
		return lang
	}
	return i18n.English
}

// firstAcceptLanguage returns the first language tag of an Accept-Language
// header, ignoring quality weights. Full preference-ordered parsing buys
// nothing for a two-language catalog.
func firstAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}
	first := header
	if idx := strings.IndexByte(first, ','); idx != -1 {
		first = first[:idx]
	}
	if idx := strings.IndexByte(first, ';'); idx != -1 {
		first = first[:idx]
	}
	return strings.TrimSpace(first)
}
