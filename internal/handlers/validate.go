package handlers

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"logokit/internal/models"
)

// Validation limits for API inputs.
const (
	maxTitleLen    = 300
	maxDescLen     = 2_000
	maxPasswordLen = 200
	minPasswordLen = 8
	maxCanvasPx    = 10_000
	maxTextLen     = 1_000
	maxHexLen      = 9 // #RRGGBBAA

	defaultPageSize = 20
	maxPageSize     = 100
)

// validateRegistration checks signup inputs and returns the first error found.
func validateRegistration(email, password string) string {
	if _, err := mail.ParseAddress(email); err != nil {
		return "A valid email address is required."
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return "Password must be at least 8 characters."
	}
	if utf8.RuneCountInString(password) > maxPasswordLen {
		return "Password is too long (max 200 characters)."
	}
	return ""
}

// validateLogoInput checks logo create/update inputs and returns the first
// error found.
func validateLogoInput(title string, width, height float64, bgType string) string {
	if strings.TrimSpace(title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if width < 0 || width > maxCanvasPx || height < 0 || height > maxCanvasPx {
		return "Canvas dimensions must be between 0 and 10,000 pixels."
	}
	if bgType != "" && !models.BackgroundType(bgType).Valid() {
		return "Background type must be solid, gradient, or image."
	}
	return ""
}

// validateLayerInput checks the shared layer fields and returns the first
// error found.
func validateLayerInput(layerType string, x, y, opacity float64) string {
	if !models.LayerType(layerType).Valid() {
		return "Layer type must be text, shape, icon, image, or background."
	}
	if x < 0 || x > 1 || y < 0 || y > 1 {
		return "Layer position must be normalized to [0, 1]."
	}
	if opacity < 0 || opacity > 1 {
		return "Layer opacity must be between 0 and 1."
	}
	return ""
}

// validateHex checks an optional color field.
func validateHex(hex string) string {
	if hex == "" {
		return ""
	}
	if !strings.HasPrefix(hex, "#") || len(hex) > maxHexLen {
		return "Colors must be hex strings like #RRGGBB."
	}
	return ""
}

// clampPage normalizes limit/page query values to sane pagination inputs.
// Returns the limit and the zero-based offset.
func clampPage(limit, page int) (int, int) {
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}
