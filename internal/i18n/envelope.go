// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package i18n

// Envelope is the uniform response body of every API endpoint, successful or
// not. It lives here so the handlers and the middleware encode the exact
// same shape.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Language  string `json:"language"`
	Direction string `json:"direction"`
	Data      any    `json:"data"`
}

// NewEnvelope builds a localized envelope for a catalog message id.
func NewEnvelope(lang string, success bool, msgID string, data any) Envelope {
	return Envelope{
		Success:   success,
		Message:   Message(lang, msgID),
		Language:  Normalize(lang),
		Direction: Direction(lang),
		Data:      data,
	}
}
