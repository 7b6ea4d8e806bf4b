// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"logokit/internal/middleware"
	"logokit/internal/mobile"
)

// documentSource produces assembled mobile documents. *mobile.Assembler is
// the production implementation.
type documentSource interface {
	Assemble(ctx context.Context, id uuid.UUID, lang string) (*mobile.Document, error)
	LegacySupported(ctx context.Context, id uuid.UUID) (supported, found bool, err error)
	AssembleLegacyPage(ctx context.Context, lang string, limit, offset int) ([]*mobile.Document, int, error)
}

// Mobile groups the assembled-document endpoints consumed by the apps.
type Mobile struct {
	assembler documentSource
}

// NewMobile creates a new Mobile handler group.
func NewMobile(assembler documentSource) *Mobile {
	return &Mobile{assembler: assembler}
}

// Document serves GET /mobile/logos/{id}: the fully assembled document in
// the canonical format. The id is validated before any database work.
func (m *Mobile) Document(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, r, http.StatusBadRequest, "invalid_logo_id")
		return
	}

	lang := middleware.LanguageFromCtx(r.Context())
	doc, err := m.assembler.Assemble(r.Context(), id, lang)
	if errors.Is(err, mobile.ErrNotFound) {
		respondErr(w, r, http.StatusNotFound, "logo_not_found")
		return
	}
	if err != nil {
		slog.Error("assemble document failed", "error", err, "logo_id", id)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}

	respond(w, r, http.StatusOK, "logo_fetched", doc)
}

// LegacyDocument serves GET /mobile/logos/{id}/legacy: the assembled
// document with its background rewritten to the legacy client format.
// Logos that never opted into legacy support are rejected before assembly.
func (m *Mobile) LegacyDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, r, http.StatusBadRequest, "invalid_logo_id")
		return
	}

	supported, found, err := m.assembler.LegacySupported(r.Context(), id)
	if err != nil {
		slog.Error("legacy support lookup failed", "error", err, "logo_id", id)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}
	if !found {
		respondErr(w, r, http.StatusNotFound, "logo_not_found")
		return
	}
	if !supported {
		respondErr(w, r, http.StatusBadRequest, "legacy_not_supported")
		return
	}

	lang := middleware.LanguageFromCtx(r.Context())
	doc, err := m.assembler.Assemble(r.Context(), id, lang)
	if errors.Is(err, mobile.ErrNotFound) {
		respondErr(w, r, http.StatusNotFound, "logo_not_found")
		return
	}
	if err != nil {
		slog.Error("assemble legacy document failed", "error", err, "logo_id", id)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}

	respond(w, r, http.StatusOK, "logo_fetched", doc.LegacyCopy())
}

// legacyPage is the payload of the legacy listing endpoint.
type legacyPage struct {
	Logos []*mobile.Document `json:"logos"`
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// LegacyList serves GET /mobile/logos/legacy: a page of legacy-capable
// logos, each fully assembled and rewritten.
func (m *Mobile) LegacyList(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, offset := clampPage(limit, page)
	if page < 1 {
		page = 1
	}

	lang := middleware.LanguageFromCtx(r.Context())
	docs, total, err := m.assembler.AssembleLegacyPage(r.Context(), lang, limit, offset)
	if err != nil {
		slog.Error("assemble legacy page failed", "error", err)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}
	if docs == nil {
		docs = []*mobile.Document{}
	}

	respond(w, r, http.StatusOK, "logos_fetched", legacyPage{
		Logos: docs,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
