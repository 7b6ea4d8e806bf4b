// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mobile assembles a logo's relational rows into the nested JSON
// document mobile clients render, and rewrites backgrounds into the legacy
// wire format older client versions still expect. Everything here is
// read-only: the package composes queries and transforms their results, it
// never writes.
package mobile

// Document is the canonical nested representation of a logo for mobile
// clients. Field values for name, description, and category are already
// localized to the language the document was assembled for.
type Document struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`

	Canvas         Canvas         `json:"canvas"`
	Layers         []Layer        `json:"layers"`
	ColorsUsed     []ColorUse     `json:"colors_used"`
	Alignment      Alignment      `json:"alignment"`
	Responsiveness Responsiveness `json:"responsiveness"`
	Tags           []string       `json:"tags"`
	Export         ExportPrefs    `json:"export"`

	CreatedAt string `json:"created_at"` // ISO-8601
	UpdatedAt string `json:"updated_at"` // ISO-8601
}

// Canvas describes the drawing surface. Background is a loosely-typed JSON
// object because its shape depends on the active background type, and the
// legacy translator rewrites it wholesale for old clients.
type Canvas struct {
	Width       *float64       `json:"width"`
	Height      *float64       `json:"height"`
	DPI         *float64       `json:"dpi"`
	AspectRatio float64        `json:"aspect_ratio"`
	Background  map[string]any `json:"background"`
}

// Layer is one element of the z-ordered layer stack. Exactly one of the
// type-specific sub-objects is set, matching Type; an incomplete layer
// (missing detail row) carries only the shared fields.
type Layer struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	ZIndex   int      `json:"z_index"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Scale    *float64 `json:"scale"`
	Rotation *float64 `json:"rotation"`
	Opacity  *float64 `json:"opacity"`
	FlipX    bool     `json:"flip_x"`
	FlipY    bool     `json:"flip_y"`
	Visible  bool     `json:"visible"`
	Locked   bool     `json:"locked"`

	Text       *TextDetail       `json:"text,omitempty"`
	Shape      *ShapeDetail      `json:"shape,omitempty"`
	Icon       *IconDetail       `json:"icon,omitempty"`
	Image      *ImageDetail      `json:"image,omitempty"`
	Background *BackgroundDetail `json:"background,omitempty"`
}

// TextDetail is the text-layer variant.
type TextDetail struct {
	Content     string   `json:"content"`
	Font        *FontRef `json:"font"`
	Fill        *string  `json:"fill"`
	Stroke      *string  `json:"stroke"`
	StrokeWidth *float64 `json:"stroke_width"`
	LetterSpace *float64 `json:"letter_spacing"`
	LineHeight  *float64 `json:"line_height"`
	Bold        bool     `json:"bold"`
	Italic      bool     `json:"italic"`
	Underline   bool     `json:"underline"`
}

// ShapeDetail is the shape-layer variant. Points carries the decoded path
// or point list exactly as stored.
type ShapeDetail struct {
	Kind        string   `json:"kind"`
	Points      any      `json:"points"`
	Fill        *string  `json:"fill"`
	Stroke      *string  `json:"stroke"`
	StrokeWidth *float64 `json:"stroke_width"`
}

// IconDetail is the icon-layer variant.
type IconDetail struct {
	Asset *AssetRef `json:"asset"`
	Tint  *string   `json:"tint"`
}

// ImageDetail is the image-layer variant.
type ImageDetail struct {
	Asset *AssetRef `json:"asset"`
	Tint  *string   `json:"tint"`
}

// BackgroundDetail is the background-layer variant.
type BackgroundDetail struct {
	Mode  string    `json:"mode"`
	Fill  *string   `json:"fill"`
	Asset *AssetRef `json:"asset"`
	TileX bool      `json:"tile_x"`
	TileY bool      `json:"tile_y"`
}

// AssetRef is the embedded view of a referenced asset.
type AssetRef struct {
	ID     string   `json:"id"`
	URL    string   `json:"url"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
	Vector *string  `json:"vector,omitempty"`
}

// FontRef is the embedded view of a referenced font.
type FontRef struct {
	ID        string   `json:"id"`
	Family    string   `json:"family"`
	Style     string   `json:"style"`
	Weight    int      `json:"weight"`
	URL       string   `json:"url"`
	Fallbacks []string `json:"fallbacks,omitempty"`
}

// ColorUse is one entry of the colors-used list: a color and the role it
// plays in the design.
type ColorUse struct {
	Role  string `json:"role"`
	Color string `json:"color"`
}

// Alignment is the canvas alignment block.
type Alignment struct {
	Horizontal string `json:"horizontal"`
	Vertical   string `json:"vertical"`
}

// Responsiveness carries forward the stored responsive-versioning metadata.
// Informational only — the backend does not act on it.
type Responsiveness struct {
	Version                    string  `json:"version"`
	MobileOptimized            bool    `json:"mobile_optimized"`
	LegacyFormatSupported      bool    `json:"legacy_format_supported"`
	LegacyCompatibilityVersion *string `json:"legacy_compatibility_version"`
}

// ExportPrefs is the export preference block.
type ExportPrefs struct {
	Format      string  `json:"format"`
	Quality     float64 `json:"quality"`
	Transparent bool    `json:"transparent"`
}
