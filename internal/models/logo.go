// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BackgroundType identifies which background descriptor is active on a logo.
// Exactly one type is active at a time; columns belonging to the inactive
// types are ignored on read.
type BackgroundType string

const (
	BackgroundSolid    BackgroundType = "solid"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundImage    BackgroundType = "image"
)

// Valid reports whether the background type is one of the known values.
func (b BackgroundType) Valid() bool {
	switch b {
	case BackgroundSolid, BackgroundGradient, BackgroundImage:
		return true
	}
	return false
}

// Logo is a design document: a canvas with an ordered stack of layers.
// Title and description are stored in independent English and Arabic
// variants alongside a generic untagged value; the read path picks one
// per the requested language.
type Logo struct {
	ID         uuid.UUID  `json:"id"`
	OwnerID    uuid.UUID  `json:"owner_id"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`

	Title         string  `json:"title"`
	TitleEn       *string `json:"title_en,omitempty"`
	TitleAr       *string `json:"title_ar,omitempty"`
	Description   *string `json:"description,omitempty"`
	DescriptionEn *string `json:"description_en,omitempty"`
	DescriptionAr *string `json:"description_ar,omitempty"`

	// Canvas dimensions in pixels.
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	DPI    *float64 `json:"dpi,omitempty"`

	// Background descriptor. BackgroundType selects which of the
	// type-specific fields applies.
	BackgroundType     BackgroundType  `json:"background_type"`
	BackgroundColor    *string         `json:"background_color,omitempty"`
	BackgroundGradient json.RawMessage `json:"background_gradient,omitempty"`
	BackgroundImage    json.RawMessage `json:"background_image,omitempty"`

	// Stored colors-used list (JSON array of {role, color}). When NULL the
	// read path derives the list from the layers instead.
	ColorsUsed json.RawMessage `json:"colors_used,omitempty"`

	// Alignment and export preference blocks, stored as JSON.
	Alignment   json.RawMessage `json:"alignment,omitempty"`
	ExportPrefs json.RawMessage `json:"export_prefs,omitempty"`

	Tags json.RawMessage `json:"tags,omitempty"`

	// Responsive-versioning metadata. Informational only — nothing in the
	// backend enforces these semantically.
	ResponsiveVersion          *string `json:"responsive_version,omitempty"`
	MobileOptimized            bool    `json:"mobile_optimized"`
	LegacyFormatSupported      bool    `json:"legacy_format_supported"`
	LegacyCompatibilityVersion *string `json:"legacy_compatibility_version,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AspectRatio returns the canvas width/height ratio, or 1.0 when the height
// is zero.
func (l *Logo) AspectRatio() float64 {
	if l.Height == 0 {
		return 1.0
	}
	return l.Width / l.Height
}
