// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package i18n selects display values and text direction for bilingual
// (English/Arabic) API responses. Every response the API produces runs its
// user-facing text through this package so that clients receive one
// consistent language and direction per response.
package i18n

import "strings"

// Supported language tags. Anything outside this set behaves like English.
const (
	English = "en"
	Arabic  = "ar"
)

// Text directions.
const (
	LTR = "ltr"
	RTL = "rtl"
)

// Normalize lowercases a language tag and strips any region subtag
// ("ar-EG" → "ar"). Unrecognized tags normalize to English.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	if lang == Arabic {
		return Arabic
	}
	return English
}

// Direction returns the text direction for a language: rtl for Arabic,
// ltr for everything else.
func Direction(lang string) string {
	if Normalize(lang) == Arabic {
		return RTL
	}
	return LTR
}

// Pick resolves one display value from a bilingual field triple. For Arabic
// the precedence is Arabic → English → generic; for any other language it is
// English → generic. The first non-empty value wins; empty string when all
// variants are absent.
func Pick(lang string, ar, en *string, generic string) string {
	if Normalize(lang) == Arabic {
		if ar != nil && *ar != "" {
			return *ar
		}
	}
	if en != nil && *en != "" {
		return *en
	}
	return generic
}

// PickPtr is Pick for a generic variant that is itself optional, as with
// category names and descriptions. Returns nil when every variant is absent.
func PickPtr(lang string, ar, en, generic *string) *string {
	var g string
	if generic != nil {
		g = *generic
	}
	if v := Pick(lang, ar, en, g); v != "" {
		return &v
	}
	return nil
}
