// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"logokit/internal/billing"
)

// Signature checks run before any storage access, so a nil store is fine
// for the rejection paths.
func TestBillingWebhook_BadSignature(t *testing.T) {
	b := NewBilling("whsec-test", nil)

	body := []byte(`{"id":"evt_1","type":"subscription.updated"}`)

	tests := []struct {
		name string
		sig  string
	}{
		{name: "missing signature", sig: ""},
		{name: "wrong secret", sig: billing.Sign("other", body)},
		{name: "not hex", sig: "zzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/billing/webhook", bytes.NewReader(body))
			if tt.sig != "" {
				req.Header.Set(billing.SignatureHeader, tt.sig)
			}
			rr := httptest.NewRecorder()
			b.Webhook(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rr.Code)
			}
		})
	}
}

func TestBillingWebhook_MalformedEvent(t *testing.T) {
	b := NewBilling("whsec-test", nil)

	// Correctly signed but missing required fields.
	body := []byte(`{"type":"subscription.updated"}`)
	req := httptest.NewRequest(http.MethodPost, "/billing/webhook", bytes.NewReader(body))
	req.Header.Set(billing.SignatureHeader, billing.Sign("whsec-test", body))
	rr := httptest.NewRecorder()
	b.Webhook(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}
