// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LayerType discriminates the per-type detail record a layer owns.
// A layer has a detail row in exactly the table matching its type.
type LayerType string

const (
	LayerText       LayerType = "text"
	LayerShape      LayerType = "shape"
	LayerIcon       LayerType = "icon"
	LayerImage      LayerType = "image"
	LayerBackground LayerType = "background"
)

// Valid reports whether the layer type is one of the known values.
func (t LayerType) Valid() bool {
	switch t {
	case LayerText, LayerShape, LayerIcon, LayerImage, LayerBackground:
		return true
	}
	return false
}

// DetailTable returns the name of the detail table for this layer type.
func (t LayerType) DetailTable() string {
	return "layer_" + string(t)
}

// Layer carries the geometric and visual attributes shared by every layer
// type. Position is normalized to [0,1] on both axes, rotation is in
// degrees, opacity in [0,1]. Layers stack by ZIndex ascending, ties broken
// by creation time.
type Layer struct {
	ID     uuid.UUID `json:"id"`
	LogoID uuid.UUID `json:"logo_id"`
	Type   LayerType `json:"type"`
	ZIndex int       `json:"z_index"`

	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"`
	Opacity  float64 `json:"opacity"`
	FlipX    bool    `json:"flip_x"`
	FlipY    bool    `json:"flip_y"`
	Visible  bool    `json:"visible"`
	Locked   bool    `json:"locked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TextDetail holds the type-specific fields of a text layer.
type TextDetail struct {
	LayerID     uuid.UUID  `json:"layer_id"`
	Content     string     `json:"content"`
	FontID      *uuid.UUID `json:"font_id,omitempty"`
	FillHex     *string    `json:"fill_hex,omitempty"`
	StrokeHex   *string    `json:"stroke_hex,omitempty"`
	StrokeWidth *float64   `json:"stroke_width,omitempty"`
	LetterSpace *float64   `json:"letter_spacing,omitempty"`
	LineHeight  *float64   `json:"line_height,omitempty"`
	Bold        bool       `json:"bold"`
	Italic      bool       `json:"italic"`
	Underline   bool       `json:"underline"`
}

// ShapeDetail holds the type-specific fields of a shape layer. Points is a
// JSON-encoded path or point list in canvas-normalized coordinates.
type ShapeDetail struct {
	LayerID     uuid.UUID       `json:"layer_id"`
	Kind        string          `json:"kind"`
	Points      json.RawMessage `json:"points,omitempty"`
	FillHex     *string         `json:"fill_hex,omitempty"`
	StrokeHex   *string         `json:"stroke_hex,omitempty"`
	StrokeWidth *float64        `json:"stroke_width,omitempty"`
}

// IconDetail holds the type-specific fields of an icon layer.
type IconDetail struct {
	LayerID uuid.UUID  `json:"layer_id"`
	AssetID *uuid.UUID `json:"asset_id,omitempty"`
	TintHex *string    `json:"tint_hex,omitempty"`
}

// ImageDetail holds the type-specific fields of an image layer.
type ImageDetail struct {
	LayerID uuid.UUID  `json:"layer_id"`
	AssetID *uuid.UUID `json:"asset_id,omitempty"`
	TintHex *string    `json:"tint_hex,omitempty"`
}

// BackgroundDetail holds the type-specific fields of a background layer.
type BackgroundDetail struct {
	LayerID uuid.UUID  `json:"layer_id"`
	Mode    string     `json:"mode"`
	FillHex *string    `json:"fill_hex,omitempty"`
	AssetID *uuid.UUID `json:"asset_id,omitempty"`
	TileX   bool       `json:"tile_x"`
	TileY   bool       `json:"tile_y"`
}
