// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AssetKind classifies a reusable resource.
type AssetKind string

const (
	AssetIcon       AssetKind = "icon"
	AssetPhoto      AssetKind = "photo"
	AssetBackground AssetKind = "background"
)

// Asset is a reusable image or vector resource referenced by icon, image,
// and background layers. Its lifetime is independent of any single logo;
// many layers may reference one asset.
type Asset struct {
	ID       uuid.UUID `json:"id"`
	Kind     AssetKind `json:"kind"`
	URL      string    `json:"url"`
	Width    *float64  `json:"width,omitempty"`
	Height   *float64  `json:"height,omitempty"`
	Vector   *string   `json:"vector,omitempty"` // embedded SVG markup
	Category *string   `json:"category,omitempty"`
	Tags     json.RawMessage `json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Font is a reusable typeface descriptor referenced by text layers.
type Font struct {
	ID        uuid.UUID       `json:"id"`
	Family    string          `json:"family"`
	Style     string          `json:"style"`
	Weight    int             `json:"weight"`
	URL       string          `json:"url"`
	Fallbacks json.RawMessage `json:"fallbacks,omitempty"` // JSON array of family names

	CreatedAt time.Time `json:"created_at"`
}
