// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mobile

import (
	"reflect"
	"testing"
)

func sptr(s string) *string { return &s }

// TestDeriveColors verifies role assignment, (role, color) deduplication,
// and first-seen ordering of the derived colors-used list.
func TestDeriveColors(t *testing.T) {
	layers := []Layer{
		{Text: &TextDetail{Fill: sptr("#000000")}},
		{Icon: &IconDetail{Tint: sptr("#FF0000")}},
		{Text: &TextDetail{Fill: sptr("#000000")}}, // duplicate pair
		{Shape: &ShapeDetail{Fill: sptr("#00FF00")}},
		{Image: &ImageDetail{Tint: sptr("#FF0000")}}, // duplicate of icon tint under same role
		{Shape: &ShapeDetail{Fill: sptr("#000000")}}, // same color, different role
	}

	got := deriveColors(layers)
	want := []ColorUse{
		{Role: "text", Color: "#000000"},
		{Role: "icon", Color: "#FF0000"},
		{Role: "shape", Color: "#00FF00"},
		{Role: "shape", Color: "#000000"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("deriveColors() = %v, want %v", got, want)
	}
}

// TestDeriveColors_SkipsAbsent verifies that layers without color fields and
// incomplete layers contribute nothing.
func TestDeriveColors_SkipsAbsent(t *testing.T) {
	layers := []Layer{
		{Text: &TextDetail{Fill: nil}},
		{Text: &TextDetail{Fill: sptr("")}},
		{Icon: &IconDetail{}},
		{}, // incomplete layer, no variant at all
		{Background: &BackgroundDetail{Fill: sptr("#123456")}}, // backgrounds carry no role
	}

	got := deriveColors(layers)
	if len(got) != 0 {
		t.Errorf("deriveColors() = %v, want empty", got)
	}
}

// TestDeriveColors_Empty verifies the empty input yields an empty, non-nil
// list so the JSON stays an array.
func TestDeriveColors_Empty(t *testing.T) {
	got := deriveColors(nil)
	if got == nil {
		t.Fatal("deriveColors(nil) should return an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("deriveColors(nil) = %v, want empty", got)
	}
}
