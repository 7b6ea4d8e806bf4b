// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"logokit/internal/i18n"
	"logokit/internal/middleware"
	"logokit/internal/models"
	"logokit/internal/store"
)

// Catalog groups the shared-resource handlers: assets, fonts, and
// categories. Reads are public; writes are admin-only at the router.
type Catalog struct {
	assets     *store.AssetStore
	fonts      *store.FontStore
	categories *store.CategoryStore
}

// NewCatalog creates a new Catalog handler group.
func NewCatalog(assets *store.AssetStore, fonts *store.FontStore, categories *store.CategoryStore) *Catalog {
	return &Catalog{assets: assets, fonts: fonts, categories: categories}
}

// assetPage is the payload of the asset listing endpoint.
type assetPage struct {
	Assets []models.Asset `json:"assets"`
	Total  int            `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

// ListAssets serves GET /assets with optional ?kind= filtering.
func (h *Catalog) ListAssets(w http.ResponseWriter, r *http.Request) {
	kind := models.AssetKind(r.URL.Query().Get("kind"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, offset := clampPage(limit, page)
	if page < 1 {
		page = 1
	}

	assets, total, err := h.assets.List(kind, limit, offset)
	if err != nil {
		slog.Error("list assets failed", "error", err)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}
	if assets == nil {
		assets = []models.Asset{}
	}

	respond(w, r, http.StatusOK, "ok", assetPage{Assets: assets, Total: total, Page: page, Limit: limit})
}

// GetAsset serves GET /assets/{id}.
func (h *Catalog) GetAsset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, r, http.StatusBadRequest, "validation_failed")
		return
	}

	asset, err := h.assets.FindByID(id)
	if err != nil {
		slog.Error("find asset failed", "error", err, "asset_id", id)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}
	if asset == nil {
		respondErr(w, r, http.StatusNotFound, "asset_not_found")
		return
	}

	respond(w, r, http.StatusOK, "ok", asset)
}

// assetRequest is the admin create payload.
type assetRequest struct {
	Kind     string   `json:"kind"`
	URL      string   `json:"url"`
	Width    *float64 `json:"width"`
	Height   *float64 `json:"height"`
	Vector   *string  `json:"vector"`
	Category *string  `json:"category"`
	Tags     []string `json:"tags"`
}

// CreateAsset serves POST /assets (admin only).
func (h *Catalog) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := decodeBody(r, &req); err != nil {
		respondInvalid(w, r, "Request body must be a single JSON object.")
		return
	}
	switch models.AssetKind(req.Kind) {
	case models.AssetIcon, models.AssetPhoto, models.AssetBackground:
	default:
		respondInvalid(w, r, "Asset kind must be icon, photo, or background.")
		return
	}
	if req.URL == "" && (req.Vector == nil || *req.Vector == "") {
		respondInvalid(w, r, "An asset needs a URL or embedded vector markup.")
		return
	}

	asset := &models.Asset{
		Kind:     models.AssetKind(req.Kind),
		URL:      req.URL,
		Width:    req.Width,
		Height:   req.Height,
		Vector:   req.Vector,
		Category: req.Category,
	}
	if len(req.Tags) > 0 {
		asset.Tags = mustJSON(req.Tags)
	}

	created, err := h.assets.Create(asset)
	if err != nil {
		slog.Error("create asset failed", "error", err)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}

	respond(w, r, http.StatusCreated, "ok", created)
}

// DeleteAsset serves DELETE /assets/{id} (admin only).
func (h *Catalog) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, r, http.StatusBadRequest, "validation_failed")
		return
	}

	if err := h.assets.Delete(id); err != nil {
		slog.Error("delete asset failed", "error", err, "asset_id", id)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}

	respond(w, r, http.StatusOK, "ok", nil)
}

// ListFonts serves GET /fonts: the full typeface catalog.
func (h *Catalog) ListFonts(w http.ResponseWriter, r *http.Request) {
	fonts, err := h.fonts.List()
	if err != nil {
		slog.Error("list fonts failed", "error", err)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}
	if fonts == nil {
		fonts = []models.Font{}
	}

	respond(w, r, http.StatusOK, "ok", fonts)
}

// localizedCategory is the read shape of a category: one display name
// resolved for the requested language, with the raw variants alongside for
// editors.
type localizedCategory struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	NameEn *string   `json:"name_en,omitempty"`
	NameAr *string   `json:"name_ar,omitempty"`
}

// ListCategories serves GET /categories with names resolved through the
// same fallback chain as documents.
func (h *Catalog) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}

	lang := middleware.LanguageFromCtx(r.Context())
	out := make([]localizedCategory, 0, len(categories))
	for _, c := range categories {
		out = append(out, localizedCategory{
			ID:     c.ID,
			Name:   i18n.Pick(lang, c.NameAr, c.NameEn, c.Name),
			NameEn: c.NameEn,
			NameAr: c.NameAr,
		})
	}

	respond(w, r, http.StatusOK, "ok", out)
}
