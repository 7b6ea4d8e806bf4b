// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package billing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"logokit/internal/models"
)

const testSecret = "whsec-test"

func signedEvent(t *testing.T, e Event) ([]byte, string) {
	t.Helper()
	body, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return body, Sign(testSecret, body)
}

func TestParseEvent(t *testing.T) {
	userID := uuid.New()
	end := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	body, sig := signedEvent(t, Event{
		ID:               "evt_123",
		Type:             "subscription.updated",
		UserID:           userID,
		Plan:             "pro-monthly",
		Status:           "active",
		CurrentPeriodEnd: &end,
	})

	e, err := ParseEvent(testSecret, body, sig)
	if err != nil {
		t.Fatalf("ParseEvent: %v", err)
	}
	if e.ID != "evt_123" || e.UserID != userID {
		t.Errorf("event = %+v", e)
	}

	sub := e.Subscription()
	if sub.Status != models.SubscriptionActive {
		t.Errorf("status: got %q", sub.Status)
	}
	if sub.CurrentPeriodEnd == nil || !sub.CurrentPeriodEnd.Equal(end) {
		t.Errorf("period end: got %v", sub.CurrentPeriodEnd)
	}
}

func TestParseEvent_BadSignature(t *testing.T) {
	body, _ := signedEvent(t, Event{ID: "evt_1", Type: "x", UserID: uuid.New()})

	tests := []struct {
		name string
		sig  string
	}{
		{name: "empty", sig: ""},
		{name: "not hex", sig: "zzzz"},
		{name: "wrong secret", sig: Sign("other-secret", body)},
		{name: "signature of different body", sig: Sign(testSecret, []byte("{}"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseEvent(testSecret, body, tt.sig); err == nil {
				t.Error("ParseEvent should reject the delivery")
			}
		})
	}
}

func TestParseEvent_TamperedBody(t *testing.T) {
	body, sig := signedEvent(t, Event{ID: "evt_2", Type: "subscription.updated", UserID: uuid.New()})

	tampered := append([]byte{}, body...)
	tampered[len(tampered)-2] = 'X'

	if _, err := ParseEvent(testSecret, tampered, sig); err == nil {
		t.Error("tampered body must fail verification")
	}
}

func TestParseEvent_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		e    Event
	}{
		{name: "no id", e: Event{Type: "subscription.updated", UserID: uuid.New()}},
		{name: "no type", e: Event{ID: "evt_3", UserID: uuid.New()}},
		{name: "no user", e: Event{ID: "evt_4", Type: "subscription.updated"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, sig := signedEvent(t, tt.e)
			if _, err := ParseEvent(testSecret, body, sig); err == nil {
				t.Error("incomplete event must be rejected")
			}
		})
	}
}

func TestKnownStatus(t *testing.T) {
	for _, s := range []string{"active", "trialing", "canceled", "expired"} {
		if !KnownStatus(s) {
			t.Errorf("KnownStatus(%q) = false", s)
		}
	}
	if KnownStatus("paused") {
		t.Error("unknown provider status must not map")
	}
}
