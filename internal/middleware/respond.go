// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"encoding/json"
	"net/http"

	"logokit/internal/i18n"
)

// fail writes a localized error envelope with the given status. Used for
// errors produced before a handler runs (auth failures, rate limits,
// panics); the envelope shape is identical to handler responses.
func fail(w http.ResponseWriter, r *http.Request, status int, msgID string) {
	lang := LanguageFromCtx(r.Context())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(i18n.NewEnvelope(lang, false, msgID, nil))
}
