// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups logos (restaurant, tech, fashion, ...). Names are stored
// in English and Arabic variants alongside a generic untagged value.
type Category struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	NameEn *string   `json:"name_en,omitempty"`
	NameAr *string   `json:"name_ar,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
