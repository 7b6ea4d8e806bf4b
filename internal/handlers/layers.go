// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"logokit/internal/models"
	"logokit/internal/store"
)

// Layers groups the layer CRUD handlers. All routes are nested under the
// owning logo, so every operation starts with an ownership check.
type Layers struct {
	logos  *store.LogoStore
	layers *store.LayerStore
	owners *Logos
}

// NewLayers creates a new Layers handler group.
func NewLayers(logos *store.LogoStore, layers *store.LayerStore, owners *Logos) *Layers {
	return &Layers{logos: logos, layers: layers, owners: owners}
}

// layerRequest is the create/update payload. Detail carries the raw
// type-specific sub-object, decoded once the type is known.
type layerRequest struct {
	Type   string `json:"type"`
	ZIndex int    `json:"z_index"`

	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"`
	Opacity  float64 `json:"opacity"`
	FlipX    bool    `json:"flip_x"`
	FlipY    bool    `json:"flip_y"`
	Visible  bool    `json:"visible"`
	Locked   bool    `json:"locked"`

	Detail json.RawMessage `json:"detail"`
}

// decodeDetail produces the typed detail struct for the layer type.
func (req *layerRequest) decodeDetail() (any, error) {
	raw := req.Detail
	if len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}

	switch models.LayerType(req.Type) {
	case models.LayerText:
		d := &models.TextDetail{}
		return d, json.Unmarshal(raw, d)
	case models.LayerShape:
		d := &models.ShapeDetail{}
		return d, json.Unmarshal(raw, d)
	case models.LayerIcon:
		d := &models.IconDetail{}
		return d, json.Unmarshal(raw, d)
	case models.LayerImage:
		d := &models.ImageDetail{}
		return d, json.Unmarshal(raw, d)
	case models.LayerBackground:
		d := &models.BackgroundDetail{}
		return d, json.Unmarshal(raw, d)
	}
	return nil, nil
}

// List serves GET /logos/{id}/layers in stacking order.
func (h *Layers) List(w http.ResponseWriter, r *http.Request) {
	logo, ok := h.owners.ownedLogo(w, r)
	if !ok {
		return
	}

	layers, err := h.layers.ListByLogo(logo.ID)
	if err != nil {
		slog.Error("list layers failed", "error", err, "logo_id", logo.ID)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}
	if layers == nil {
		layers = []models.Layer{}
	}

	respond(w, r, http.StatusOK, "ok", layers)
}

// Create serves POST /logos/{id}/layers.
func (h *Layers) Create(w http.ResponseWriter, r *http.Request) {
	logo, ok := h.owners.ownedLogo(w, r)
	if !ok {
		return
	}

	var req layerRequest
	if err := decodeBody(r, &req); err != nil {
		respondInvalid(w, r, "Request body must be a single JSON object.")
		return
	}
	if detail := validateLayerInput(req.Type, req.X, req.Y, req.Opacity); detail != "" {
		respondInvalid(w, r, detail)
		return
	}

	typed, err := req.decodeDetail()
	if err != nil || typed == nil {
		respondInvalid(w, r, "Layer detail does not match the layer type.")
		return
	}

	layer := &models.Layer{
		LogoID: logo.ID,
		Type:   models.LayerType(req.Type),
		ZIndex: req.ZIndex,
		X:      req.X, Y: req.Y,
		Scale: req.Scale, Rotation: req.Rotation, Opacity: req.Opacity,
		FlipX: req.FlipX, FlipY: req.FlipY,
		Visible: req.Visible, Locked: req.Locked,
	}

	created, err := h.layers.Create(layer, typed)
	if err != nil {
		slog.Error("create layer failed", "error", err, "logo_id", logo.ID)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}

	respond(w, r, http.StatusCreated, "layer_created", created)
}

// Update serves PUT /logos/{id}/layers/{layerID}: shared fields only. The
// type and detail row are immutable; clients replace a layer to change them.
func (h *Layers) Update(w http.ResponseWriter, r *http.Request) {
	layer, ok := h.ownedLayer(w, r)
	if !ok {
		return
	}

	var req layerRequest
	if err := decodeBody(r, &req); err != nil {
		respondInvalid(w, r, "Request body must be a single JSON object.")
		return
	}
	if detail := validateLayerInput(string(layer.Type), req.X, req.Y, req.Opacity); detail != "" {
		respondInvalid(w, r, detail)
		return
	}

	layer.ZIndex = req.ZIndex
	layer.X, layer.Y = req.X, req.Y
	layer.Scale, layer.Rotation, layer.Opacity = req.Scale, req.Rotation, req.Opacity
	layer.FlipX, layer.FlipY = req.FlipX, req.FlipY
	layer.Visible, layer.Locked = req.Visible, req.Locked

	updated, err := h.layers.UpdateShared(layer)
	if err != nil {
		slog.Error("update layer failed", "error", err, "layer_id", layer.ID)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}
	if updated == nil {
		respondErr(w, r, http.StatusNotFound, "layer_not_found")
		return
	}

	respond(w, r, http.StatusOK, "layer_updated", updated)
}

// Delete serves DELETE /logos/{id}/layers/{layerID}.
func (h *Layers) Delete(w http.ResponseWriter, r *http.Request) {
	layer, ok := h.ownedLayer(w, r)
	if !ok {
		return
	}

	if err := h.layers.Delete(layer.ID); err != nil {
		slog.Error("delete layer failed", "error", err, "layer_id", layer.ID)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}

	respond(w, r, http.StatusOK, "layer_deleted", nil)
}

// reorderRequest is the payload of the reorder endpoint: the logo's layer
// ids in the desired bottom-to-top order.
type reorderRequest struct {
	LayerIDs []uuid.UUID `json:"layer_ids"`
}

// Reorder serves PUT /logos/{id}/layers/order.
func (h *Layers) Reorder(w http.ResponseWriter, r *http.Request) {
	logo, ok := h.owners.ownedLogo(w, r)
	if !ok {
		return
	}

	var req reorderRequest
	if err := decodeBody(r, &req); err != nil || len(req.LayerIDs) == 0 {
		respondInvalid(w, r, "A non-empty layer_ids array is required.")
		return
	}

	if err := h.layers.Reorder(logo.ID, req.LayerIDs); err != nil {
		slog.Error("reorder layers failed", "error", err, "logo_id", logo.ID)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}

	respond(w, r, http.StatusOK, "layers_reordered", nil)
}

// ownedLayer resolves the layer route pair, enforcing logo ownership and
// that the layer belongs to that logo.
func (h *Layers) ownedLayer(w http.ResponseWriter, r *http.Request) (*models.Layer, bool) {
	logo, ok := h.owners.ownedLogo(w, r)
	if !ok {
		return nil, false
	}

	layerID, err := uuid.Parse(chi.URLParam(r, "layerID"))
	if err != nil {
		respondErr(w, r, http.StatusBadRequest, "invalid_logo_id")
		return nil, false
	}

	layer, err := h.layers.FindByID(layerID)
	if err != nil {
		slog.Error("find layer failed", "error", err, "layer_id", layerID)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return nil, false
	}
	if layer == nil || layer.LogoID != logo.ID {
		respondErr(w, r, http.StatusNotFound, "layer_not_found")
		return nil, false
	}
	return layer, true
}
