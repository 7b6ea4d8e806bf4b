// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"logokit/internal/middleware"
	"logokit/internal/mobile"
)

// fakeAssembler is an in-memory documentSource. A nil doc means the logo
// does not exist; legacySupported controls the legacy opt-in.
type fakeAssembler struct {
	doc             *mobile.Document
	legacySupported bool
}

func (f *fakeAssembler) Assemble(_ context.Context, _ uuid.UUID, _ string) (*mobile.Document, error) {
	if f.doc == nil {
		return nil, mobile.ErrNotFound
	}
	return f.doc, nil
}

func (f *fakeAssembler) LegacySupported(_ context.Context, _ uuid.UUID) (bool, bool, error) {
	if f.doc == nil {
		return false, false, nil
	}
	return f.legacySupported, true, nil
}

func (f *fakeAssembler) AssembleLegacyPage(_ context.Context, _ string, _, _ int) ([]*mobile.Document, int, error) {
	if f.doc == nil {
		return nil, 0, nil
	}
	return []*mobile.Document{f.doc.LegacyCopy()}, 1, nil
}

// mobileTestRouter mounts the mobile document routes the way the real
// router does, serving from the given document source.
func mobileTestRouter(src documentSource) http.Handler {
	m := NewMobile(src)
	r := chi.NewRouter()
	r.Use(middleware.Language)
	r.Get("/mobile/logos/{id}", m.Document)
	r.Get("/mobile/logos/{id}/legacy", m.LegacyDocument)
	return r
}

func TestMobileDocument_InvalidID(t *testing.T) {
	// A nil source proves the request is rejected before any lookup.
	router := mobileTestRouter(nil)

	for _, id := range []string{"not-a-uuid", "123", "0000-00"} {
		t.Run(id, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/mobile/logos/"+id, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 before any lookup", rr.Code)
			}

			var env Envelope
			if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if env.Success {
				t.Error("success should be false")
			}
			if env.Message != "Invalid logo identifier." {
				t.Errorf("message = %q", env.Message)
			}
		})
	}
}

func TestMobileLegacyDocument_InvalidID(t *testing.T) {
	router := mobileTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/mobile/logos/nope/legacy?lang=ar", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}

	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Language != "ar" || env.Direction != "rtl" {
		t.Errorf("error envelopes must localize too: %s/%s", env.Language, env.Direction)
	}
}

func TestMobileDocument_NotFound(t *testing.T) {
	router := mobileTestRouter(&fakeAssembler{})

	req := httptest.NewRequest(http.MethodGet, "/mobile/logos/"+uuid.NewString(), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}

	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Success {
		t.Error("success should be false")
	}
	if env.Message != "Logo not found." {
		t.Errorf("message = %q", env.Message)
	}
	if env.Data != nil {
		t.Errorf("data should be null, got %v", env.Data)
	}
}

func TestMobileDocument_NotFoundArabic(t *testing.T) {
	router := mobileTestRouter(&fakeAssembler{})

	req := httptest.NewRequest(http.MethodGet, "/mobile/logos/"+uuid.NewString()+"?lang=ar", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}

	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Message != "الشعار غير موجود." {
		t.Errorf("message = %q", env.Message)
	}
	if env.Language != "ar" || env.Direction != "rtl" {
		t.Errorf("language/direction = %s/%s", env.Language, env.Direction)
	}
}

func TestMobileLegacyDocument_NotSupported(t *testing.T) {
	doc := &mobile.Document{ID: uuid.NewString(), Name: "Plain"}
	router := mobileTestRouter(&fakeAssembler{doc: doc, legacySupported: false})

	req := httptest.NewRequest(http.MethodGet, "/mobile/logos/"+doc.ID+"/legacy", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}

	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Success {
		t.Error("success should be false")
	}
	if env.Message != "This logo does not support the legacy format." {
		t.Errorf("message = %q", env.Message)
	}
}

func TestMobileLegacyDocument_NotFound(t *testing.T) {
	router := mobileTestRouter(&fakeAssembler{})

	req := httptest.NewRequest(http.MethodGet, "/mobile/logos/"+uuid.NewString()+"/legacy", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestMobileLegacyDocument_Supported(t *testing.T) {
	doc := &mobile.Document{
		ID:   uuid.NewString(),
		Name: "Gradient Cafe",
	}
	doc.Canvas.Background = map[string]any{
		"type": "gradient",
		"gradient": map[string]any{
			"angle": float64(45),
			"stops": []any{
				map[string]any{"hex": "#FF8800", "offset": float64(0)},
				map[string]any{"hex": "#FFD400", "offset": float64(1)},
			},
		},
	}
	router := mobileTestRouter(&fakeAssembler{doc: doc, legacySupported: true})

	req := httptest.NewRequest(http.MethodGet, "/mobile/logos/"+doc.ID+"/legacy", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			Canvas struct {
				Background struct {
					Gradient struct {
						Stops []map[string]any `json:"stops"`
					} `json:"gradient"`
				} `json:"background"`
			} `json:"canvas"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	stops := env.Data.Canvas.Background.Gradient.Stops
	if len(stops) != 2 {
		t.Fatalf("stops = %d, want 2", len(stops))
	}
	if stops[0]["color"] != "#FF8800" {
		t.Errorf("first stop color = %v", stops[0]["color"])
	}
	if _, hasHex := stops[0]["hex"]; hasHex {
		t.Error("legacy stops must use color, not hex")
	}
}
