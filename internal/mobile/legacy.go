// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// legacy.go rewrites canonical background/gradient structures into the wire
// format that pre-3.x mobile clients expect. The canonical gradient stop
// uses hex/offset; the legacy stop uses color/position. These functions are
// pure and total: they never mutate their input and never fail — malformed
// input degrades to a safe default instead.
package mobile

import "strconv"

// legacy wire defaults.
const (
	legacyDefaultColor = "#000000"
	legacyDefaultType  = "solid"
	legacyImageDefault = "imported"
)

// TranslateGradient rewrites a canonical gradient object into the legacy
// stop format. Returns nil when the input is not a gradient object or has
// no stops array. If the stops already use the legacy key (color present on
// the first stop) the input is returned as-is, which makes the translation
// idempotent.
func TranslateGradient(v any) map[string]any {
	g, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	rawStops, ok := g["stops"].([]any)
	if !ok {
		return nil
	}

	// Already in legacy shape — hand it back untouched so repeated
	// translation is byte-identical.
	if len(rawStops) > 0 {
		if first, ok := rawStops[0].(map[string]any); ok {
			if _, has := first["color"]; has {
				return g
			}
		}
	}

	stops := make([]any, 0, len(rawStops))
	for _, rs := range rawStops {
		m, _ := rs.(map[string]any)
		stops = append(stops, map[string]any{
			"color":    stringValue(m["color"], stringValue(m["hex"], legacyDefaultColor)),
			"position": numberValue(m["position"], numberValue(m["offset"], 0)),
		})
	}

	return map[string]any{
		"angle": numberValue(g["angle"], 0),
		"stops": stops,
	}
}

// TranslateBackground rewrites a canonical background object into the
// legacy shape. The type field is always emitted (default "solid");
// gradient, image, and solidColor are emitted only when present — legacy
// clients treat a null-valued key differently from an absent one, so
// inapplicable fields are omitted entirely.
func TranslateBackground(v any) map[string]any {
	bg, ok := v.(map[string]any)
	if !ok {
		// Safe default for malformed input. The explicit null gradient is
		// part of the legacy contract for this case.
		return map[string]any{"type": legacyDefaultType, "gradient": nil}
	}

	out := map[string]any{
		"type": stringValue(bg["type"], legacyDefaultType),
	}

	if g := TranslateGradient(bg["gradient"]); g != nil {
		out["gradient"] = g
	}

	if img := translateImage(bg["image"]); img != nil {
		out["image"] = img
	}

	if c, ok := bg["solidColor"].(string); ok && c != "" {
		out["solidColor"] = c
	}

	return out
}

// translateImage normalizes a background image reference to the legacy
// {type, path} shape. Accepts either an object or a bare path string.
func translateImage(v any) map[string]any {
	switch img := v.(type) {
	case map[string]any:
		path, _ := img["path"].(string)
		if path == "" {
			return nil
		}
		return map[string]any{
			"type": stringValue(img["type"], legacyImageDefault),
			"path": path,
		}
	case string:
		if img == "" {
			return nil
		}
		return map[string]any{"type": legacyImageDefault, "path": img}
	default:
		return nil
	}
}

// stringValue returns v when it is a non-empty string, otherwise the
// default. Only null/absent/wrong-typed values substitute the default.
func stringValue(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

// numberValue coerces a decoded JSON value to float64. The default is used
// only when the value is null, absent, or unparseable — a legitimate zero
// survives.
func numberValue(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return def
}
