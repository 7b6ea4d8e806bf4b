// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mobile

// deriveColors scans assembled layers for type-appropriate color fields and
// builds the colors-used list: text fills under role "text", icon and image
// tints under role "icon", shape fills under role "shape". Duplicate
// (role, color) pairs collapse to the first occurrence, preserving
// first-seen order. Used only when the logo has no stored colors_used value.
func deriveColors(layers []Layer) []ColorUse {
	type pair struct{ role, color string }

	seen := make(map[pair]bool)
	colors := []ColorUse{}

	add := func(role string, color *string) {
		if color == nil || *color == "" {
			return
		}
		p := pair{role, *color}
		if seen[p] {
			return
		}
		seen[p] = true
		colors = append(colors, ColorUse{Role: role, Color: *color})
	}

	for _, layer := range layers {
		switch {
		case layer.Text != nil:
			add("text", layer.Text.Fill)
		case layer.Icon != nil:
			add("icon", layer.Icon.Tint)
		case layer.Image != nil:
			add("icon", layer.Image.Tint)
		case layer.Shape != nil:
			add("shape", layer.Shape.Fill)
		}
	}

	return colors
}
