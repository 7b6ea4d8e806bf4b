// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"logokit/internal/middleware"
	"logokit/internal/mobile"
	"logokit/internal/models"
)

// logoStore is the persistence surface the logo handlers need.
// *store.LogoStore is the production implementation.
type logoStore interface {
	FindByID(id uuid.UUID) (*models.Logo, error)
	ListByOwner(ownerID uuid.UUID, limit, offset int) ([]models.Logo, int, error)
	Create(l *models.Logo) (*models.Logo, error)
	Update(l *models.Logo) (*models.Logo, error)
	Delete(id uuid.UUID) error
}

// Logos groups the owner-facing logo CRUD handlers.
type Logos struct {
	logos     logoStore
	assembler documentSource
}

// NewLogos creates a new Logos handler group.
func NewLogos(logos logoStore, assembler documentSource) *Logos {
	return &Logos{logos: logos, assembler: assembler}
}

// logoRequest is the create/update payload. Pointer fields distinguish
// absent from zero on update.
type logoRequest struct {
	CategoryID *uuid.UUID `json:"category_id"`

	Title         string  `json:"title"`
	TitleEn       *string `json:"title_en"`
	TitleAr       *string `json:"title_ar"`
	Description   *string `json:"description"`
	DescriptionEn *string `json:"description_en"`
	DescriptionAr *string `json:"description_ar"`

	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	DPI    *float64 `json:"dpi"`

	BackgroundType     string          `json:"background_type"`
	BackgroundColor    *string         `json:"background_color"`
	BackgroundGradient json.RawMessage `json:"background_gradient"`
	BackgroundImage    json.RawMessage `json:"background_image"`

	ColorsUsed  json.RawMessage `json:"colors_used"`
	Alignment   json.RawMessage `json:"alignment"`
	ExportPrefs json.RawMessage `json:"export_prefs"`
	Tags        json.RawMessage `json:"tags"`

	ResponsiveVersion          *string `json:"responsive_version"`
	MobileOptimized            bool    `json:"mobile_optimized"`
	LegacyFormatSupported      bool    `json:"legacy_format_supported"`
	LegacyCompatibilityVersion *string `json:"legacy_compatibility_version"`
}

func (req *logoRequest) apply(l *models.Logo) {
	l.CategoryID = req.CategoryID
	l.Title = req.Title
	l.TitleEn = req.TitleEn
	l.TitleAr = req.TitleAr
	l.Description = req.Description
	l.DescriptionEn = req.DescriptionEn
	l.DescriptionAr = req.DescriptionAr
	l.Width = req.Width
	l.Height = req.Height
	l.DPI = req.DPI
	l.BackgroundType = models.BackgroundType(req.BackgroundType)
	l.BackgroundColor = req.BackgroundColor
	l.BackgroundGradient = req.BackgroundGradient
	l.BackgroundImage = req.BackgroundImage
	l.ColorsUsed = req.ColorsUsed
	l.Alignment = req.Alignment
	l.ExportPrefs = req.ExportPrefs
	l.Tags = req.Tags
	l.ResponsiveVersion = req.ResponsiveVersion
	l.MobileOptimized = req.MobileOptimized
	l.LegacyFormatSupported = req.LegacyFormatSupported
	l.LegacyCompatibilityVersion = req.LegacyCompatibilityVersion
}

// logoPage is the payload of the owner listing endpoint.
type logoPage struct {
	Logos []models.Logo `json:"logos"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// List serves GET /logos: a page of the caller's own logos.
func (h *Logos) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectID(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, offset := clampPage(limit, page)
	if page < 1 {
		page = 1
	}

	logos, total, err := h.logos.ListByOwner(userID, limit, offset)
	if err != nil {
		slog.Error("list logos failed", "error", err, "user_id", userID)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}
	if logos == nil {
		logos = []models.Logo{}
	}

	respond(w, r, http.StatusOK, "logos_fetched", logoPage{Logos: logos, Total: total, Page: page, Limit: limit})
}

// Get serves GET /logos/{id}: the raw stored logo for editing.
func (h *Logos) Get(w http.ResponseWriter, r *http.Request) {
	logo, ok := h.ownedLogo(w, r)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, "logo_fetched", logo)
}

// Create serves POST /logos.
func (h *Logos) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := subjectID(w, r)
	if !ok {
		return
	}

	var req logoRequest
	if err := decodeBody(r, &req); err != nil {
		respondInvalid(w, r, "Request body must be a single JSON object.")
		return
	}
	if detail := validateLogoInput(req.Title, req.Width, req.Height, req.BackgroundType); detail != "" {
		respondInvalid(w, r, detail)
		return
	}

	logo := &models.Logo{OwnerID: userID}
	req.apply(logo)

	created, err := h.logos.Create(logo)
	if err != nil {
		slog.Error("create logo failed", "error", err, "user_id", userID)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}

	respond(w, r, http.StatusCreated, "logo_created", created)
}

// Update serves PUT /logos/{id}.
func (h *Logos) Update(w http.ResponseWriter, r *http.Request) {
	logo, ok := h.ownedLogo(w, r)
	if !ok {
		return
	}

	var req logoRequest
	if err := decodeBody(r, &req); err != nil {
		respondInvalid(w, r, "Request body must be a single JSON object.")
		return
	}
	if detail := validateLogoInput(req.Title, req.Width, req.Height, req.BackgroundType); detail != "" {
		respondInvalid(w, r, detail)
		return
	}

	req.apply(logo)
	if logo.BackgroundType == "" {
		logo.BackgroundType = models.BackgroundSolid
	}

	updated, err := h.logos.Update(logo)
	if err != nil {
		slog.Error("update logo failed", "error", err, "logo_id", logo.ID)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}
	if updated == nil {
		respondErr(w, r, http.StatusNotFound, "logo_not_found")
		return
	}

	respond(w, r, http.StatusOK, "logo_updated", updated)
}

// Delete serves DELETE /logos/{id}.
func (h *Logos) Delete(w http.ResponseWriter, r *http.Request) {
	logo, ok := h.ownedLogo(w, r)
	if !ok {
		return
	}

	if err := h.logos.Delete(logo.ID); err != nil {
		slog.Error("delete logo failed", "error", err, "logo_id", logo.ID)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}

	respond(w, r, http.StatusOK, "logo_deleted", nil)
}

// exportResult is the payload of the export endpoint.
type exportResult struct {
	Format      string           `json:"format"`
	Quality     float64          `json:"quality"`
	Transparent bool             `json:"transparent"`
	Document    *mobile.Document `json:"document"`
}

// Export serves POST /logos/{id}/export. The route is entitlement-gated;
// the handler assembles the print-ready document with the stored export
// preferences applied.
func (h *Logos) Export(w http.ResponseWriter, r *http.Request) {
	logo, ok := h.ownedLogo(w, r)
	if !ok {
		return
	}

	lang := middleware.LanguageFromCtx(r.Context())
	doc, err := h.assembler.Assemble(r.Context(), logo.ID, lang)
	if errors.Is(err, mobile.ErrNotFound) {
		// Deleted between the ownership check and assembly.
		respondErr(w, r, http.StatusNotFound, "logo_not_found")
		return
	}
	if err != nil {
		slog.Error("export assembly failed", "error", err, "logo_id", logo.ID)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}

	respond(w, r, http.StatusOK, "ok", exportResult{
		Format:      doc.Export.Format,
		Quality:     doc.Export.Quality,
		Transparent: doc.Export.Transparent,
		Document:    doc,
	})
}

// ownedLogo parses the id, loads the logo, and enforces that the caller
// owns it (admins bypass the ownership check). Writes the error response
// itself when the second return is false.
func (h *Logos) ownedLogo(w http.ResponseWriter, r *http.Request) (*models.Logo, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, r, http.StatusBadRequest, "invalid_logo_id")
		return nil, false
	}

	userID, ok := subjectID(w, r)
	if !ok {
		return nil, false
	}

	logo, err := h.logos.FindByID(id)
	if err != nil {
		slog.Error("find logo failed", "error", err, "logo_id", id)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return nil, false
	}
	if logo == nil {
		respondErr(w, r, http.StatusNotFound, "logo_not_found")
		return nil, false
	}

	claims := middleware.ClaimsFromCtx(r.Context())
	if logo.OwnerID != userID && (claims == nil || claims.Role != string(models.RoleAdmin)) {
		respondErr(w, r, http.StatusForbidden, "forbidden")
		return nil, false
	}
	return logo, true
}

// subjectID resolves the authenticated user id, writing a 401 when the
// claims are missing or malformed.
func subjectID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		respondErr(w, r, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	id, err := claims.SubjectID()
	if err != nil {
		respondErr(w, r, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return id, true
}
