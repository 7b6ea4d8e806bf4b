// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"logokit/internal/auth"
	"logokit/internal/models"
)

func testTokens() *auth.TokenService {
	return auth.NewTokenService("middleware-test-secret", "logokit", time.Minute)
}

func signFor(t *testing.T, tokens *auth.TokenService, role models.Role) string {
	t.Helper()
	token, _, err := tokens.Sign(&models.User{ID: uuid.New(), Email: "mw@test.local", Role: role})
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return token
}

func TestAuthenticateAndRequireUser(t *testing.T) {
	tokens := testTokens()

	var seen *auth.Claims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ClaimsFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Authenticate(tokens)(RequireUser(inner))

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/logos", nil)
		req.Header.Set("Authorization", "Bearer "+signFor(t, tokens, models.RoleUser))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rr.Code)
		}
		if seen == nil || seen.Email != "mw@test.local" {
			t.Errorf("claims not propagated: %+v", seen)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/logos", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want 401", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), `"success":false`) {
			t.Errorf("body should be an error envelope: %s", rr.Body.String())
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/logos", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want 401", rr.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/logos", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want 401", rr.Code)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	tokens := testTokens()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Authenticate(tokens)(RequireUser(RequireAdmin(inner)))

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/assets/x", nil)
		req.Header.Set("Authorization", "Bearer "+signFor(t, tokens, models.RoleAdmin))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
	})

	t.Run("regular user forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/assets/x", nil)
		req.Header.Set("Authorization", "Bearer "+signFor(t, tokens, models.RoleUser))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusForbidden {
			t.Errorf("status: got %d, want 403", rr.Code)
		}
	})
}
