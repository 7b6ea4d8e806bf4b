// Package handlers implements the LogoKit HTTP API. Every response is a
// localized envelope: success flag, human message in the requested
// language, language and direction markers, and the payload.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"logokit/internal/i18n"
	"logokit/internal/middleware"
)

// maxBodyBytes caps request bodies. Logo documents with embedded vectors
// stay well under this.
const maxBodyBytes = 1 << 20

// Envelope is the uniform response shape consumed by the mobile clients.
// The type lives in i18n so the middleware encodes the same shape.
type Envelope = i18n.Envelope

// respond writes a success envelope with the given payload.
func respond(w http.ResponseWriter, r *http.Request, status int, msgID string, data any) {
	writeEnvelope(w, r, status, true, msgID, data)
}

// respondErr writes a failure envelope with a null payload.
func respondErr(w http.ResponseWriter, r *http.Request, status int, msgID string) {
	writeEnvelope(w, r, status, false, msgID, nil)
}

// respondInvalid writes a 422 failure envelope carrying the field-level
// detail of the first validation error.
func respondInvalid(w http.ResponseWriter, r *http.Request, detail string) {
	lang := middleware.LanguageFromCtx(r.Context())
	env := i18n.NewEnvelope(lang, false, "validation_failed", map[string]string{"error": detail})
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(env)
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, success bool, msgID string, data any) {
	lang := middleware.LanguageFromCtx(r.Context())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(i18n.NewEnvelope(lang, success, msgID, data)); err != nil {
		slog.Error("encode response failed", "error", err, "path", r.URL.Path)
	}
}

// mustJSON marshals a value that cannot fail (slices and maps of plain
// strings).
func mustJSON(v any) json.RawMessage {
	raw, _ := json.Marshal(v)
	return raw
}

// decodeBody reads a JSON request body into dst, rejecting unknown fields
// and oversized payloads.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// A second document in the body means the client is confused.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
