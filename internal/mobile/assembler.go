// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mobile

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"logokit/internal/i18n"
)

// ErrNotFound reports that no logo matches the requested id. Handlers map
// it to a 404 envelope instead of letting it surface as a server error.
var ErrNotFound = errors.New("logo not found")

// Assembler composes a logo's relational rows into one nested document.
type Assembler struct {
	store *Store
}

// NewAssembler creates an assembler reading through the given store.
func NewAssembler(store *Store) *Assembler {
	return &Assembler{store: store}
}

// Assemble builds the full mobile document for a logo in the requested
// language. Returns ErrNotFound when the id matches no logo.
func (a *Assembler) Assemble(ctx context.Context, id uuid.UUID, lang string) (*Document, error) {
	logo, err := a.store.FetchLogo(ctx, id)
	if err != nil {
		return nil, err
	}
	if logo == nil {
		return nil, ErrNotFound
	}

	rows, err := a.store.FetchLayers(ctx, id)
	if err != nil {
		return nil, err
	}

	return buildDocument(logo, rows, lang), nil
}

// LegacySupported reports whether the logo exists and has opted into the
// legacy format. The second return is false for unknown ids.
func (a *Assembler) LegacySupported(ctx context.Context, id uuid.UUID) (supported, found bool, err error) {
	logo, err := a.store.FetchLogo(ctx, id)
	if err != nil {
		return false, false, err
	}
	if logo == nil {
		return false, false, nil
	}
	return logo.LegacyFormatSupported, true, nil
}

// AssembleLegacyPage builds one page of legacy-format documents. Only logos
// with legacy support are listed, so every returned document is translated.
func (a *Assembler) AssembleLegacyPage(ctx context.Context, lang string, limit, offset int) ([]*Document, int, error) {
	ids, total, err := a.store.ListLegacyIDs(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	docs := make([]*Document, 0, len(ids))
	for _, id := range ids {
		doc, err := a.Assemble(ctx, id, lang)
		if errors.Is(err, ErrNotFound) {
			// Deleted between the page query and the fetch — skip it.
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		docs = append(docs, doc.LegacyCopy())
	}
	return docs, total, nil
}

// LegacyCopy returns a copy of the document with the canvas background
// rewritten into the legacy wire format. The receiver is not modified.
func (d *Document) LegacyCopy() *Document {
	copied := *d
	copied.Canvas.Background = TranslateBackground(d.Canvas.Background)
	return &copied
}

// buildDocument shapes the fetched rows into the canonical nested document.
// Pure: all I/O has already happened by the time it runs.
func buildDocument(logo *logoRow, rows []layerRow, lang string) *Document {
	layers := make([]Layer, 0, len(rows))
	for i := range rows {
		layers = append(layers, rows[i].toLayer())
	}

	width := maybeNumber(logo.Width)
	height := maybeNumber(logo.Height)

	doc := &Document{
		ID:          logo.ID.String(),
		Name:        i18n.Pick(lang, nullStr(logo.TitleAr), nullStr(logo.TitleEn), logo.Title),
		Description: i18n.PickPtr(lang, nullStr(logo.DescriptionAr), nullStr(logo.DescriptionEn), nullStr(logo.Description)),
		Category:    i18n.PickPtr(lang, nullStr(logo.CategoryNameAr), nullStr(logo.CategoryNameEn), nullStr(logo.CategoryName)),
		Canvas: Canvas{
			Width:       width,
			Height:      height,
			DPI:         maybeNumber(logo.DPI),
			AspectRatio: aspectRatio(width, height),
			Background:  buildBackground(logo),
		},
		Layers:         layers,
		ColorsUsed:     colorsUsed(logo.ColorsUsed, layers),
		Alignment:      decodeAlignment(logo.Alignment),
		Responsiveness: buildResponsiveness(logo),
		Tags:           decodeTags(logo.Tags),
		Export:         decodeExportPrefs(logo.ExportPrefs),
		CreatedAt:      logo.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      logo.UpdatedAt.UTC().Format(time.RFC3339),
	}

	return doc
}

// aspectRatio is width/height with a fixed 1.0 fallback when the height is
// zero or unknown.
func aspectRatio(width, height *float64) float64 {
	if width == nil || height == nil || *height == 0 {
		return 1.0
	}
	return *width / *height
}

// buildBackground assembles the canonical background object from the logo
// columns. Only the fields of the active type carry meaning; the others are
// emitted as null, which the canonical format allows.
func buildBackground(logo *logoRow) map[string]any {
	bgType := logo.BackgroundType.String
	if bgType == "" {
		bgType = "solid"
	}

	bg := map[string]any{
		"type":       bgType,
		"solidColor": nil,
		"gradient":   nil,
		"image":      nil,
	}

	switch bgType {
	case "solid":
		if logo.BackgroundColor.Valid {
			bg["solidColor"] = logo.BackgroundColor.String
		}
	case "gradient":
		bg["gradient"] = decodeJSON(logo.BackgroundGradient)
	case "image":
		bg["image"] = decodeJSON(logo.BackgroundImage)
	}

	return bg
}

// colorsUsed prefers the logo's stored list and derives one from the layers
// only when the stored value is absent.
func colorsUsed(stored []byte, layers []Layer) []ColorUse {
	if len(stored) > 0 {
		var colors []ColorUse
		if err := json.Unmarshal(stored, &colors); err == nil && colors != nil {
			return colors
		}
	}
	return deriveColors(layers)
}

func buildResponsiveness(logo *logoRow) Responsiveness {
	version := logo.ResponsiveVersion.String
	if version == "" {
		version = "1.0"
	}
	return Responsiveness{
		Version:                    version,
		MobileOptimized:            logo.MobileOptimized,
		LegacyFormatSupported:      logo.LegacyFormatSupported,
		LegacyCompatibilityVersion: nullStr(logo.LegacyCompatibilityVersion),
	}
}

func decodeAlignment(raw []byte) Alignment {
	alignment := Alignment{Horizontal: "center", Vertical: "middle"}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &alignment)
	}
	if alignment.Horizontal == "" {
		alignment.Horizontal = "center"
	}
	if alignment.Vertical == "" {
		alignment.Vertical = "middle"
	}
	return alignment
}

func decodeExportPrefs(raw []byte) ExportPrefs {
	prefs := ExportPrefs{Format: "png", Quality: 100}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &prefs)
	}
	if prefs.Format == "" {
		prefs.Format = "png"
	}
	return prefs
}

func decodeTags(raw []byte) []string {
	tags := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &tags)
	}
	return tags
}

// decodeJSON decodes a raw JSONB column into a loosely-typed value, nil on
// NULL or corrupt input.
func decodeJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}
