// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package billing verifies and decodes payment-provider webhook deliveries.
// Subscription state is never mutated by user requests, only by verified
// webhook events.
package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"logokit/internal/models"
)

// SignatureHeader carries the hex-encoded HMAC-SHA256 of the raw request
// body, computed with the shared webhook secret.
const SignatureHeader = "X-Billing-Signature"

// ErrBadSignature is returned when a delivery fails verification.
var ErrBadSignature = errors.New("webhook signature mismatch")

// Event is a decoded webhook delivery. Timestamps arrive as RFC3339.
type Event struct {
	ID                 string     `json:"id"`
	Type               string     `json:"type"`
	UserID             uuid.UUID  `json:"user_id"`
	Plan               string     `json:"plan"`
	Status             string     `json:"status"`
	ProviderCustomerID *string    `json:"customer_id,omitempty"`
	TrialEndsAt        *time.Time `json:"trial_ends_at,omitempty"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end,omitempty"`
}

// Subscription maps the event onto the stored subscription model.
func (e *Event) Subscription() *models.Subscription {
	return &models.Subscription{
		UserID:             e.UserID,
		Plan:               e.Plan,
		Status:             models.SubscriptionStatus(e.Status),
		ProviderCustomerID: e.ProviderCustomerID,
		TrialEndsAt:        e.TrialEndsAt,
		CurrentPeriodEnd:   e.CurrentPeriodEnd,
	}
}

// Sign computes the hex HMAC-SHA256 of body under secret. Exposed so tests
// and the provider simulator can produce valid deliveries.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a delivery's signature in constant time.
func VerifySignature(secret string, body []byte, signature string) error {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return ErrBadSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return ErrBadSignature
	}
	return nil
}

// ParseEvent verifies the signature and decodes the event payload.
func ParseEvent(secret string, body []byte, signature string) (*Event, error) {
	if err := VerifySignature(secret, body, signature); err != nil {
		return nil, err
	}

	var e Event
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, fmt.Errorf("decode webhook event: %w", err)
	}
	if e.ID == "" || e.Type == "" {
		return nil, fmt.Errorf("webhook event missing id or type")
	}
	if e.UserID == uuid.Nil {
		return nil, fmt.Errorf("webhook event missing user id")
	}
	return &e, nil
}

// KnownStatus reports whether the provider status maps to a stored
// subscription status.
func KnownStatus(status string) bool {
	switch models.SubscriptionStatus(status) {
	case models.SubscriptionActive, models.SubscriptionTrialing,
		models.SubscriptionCanceled, models.SubscriptionExpired:
		return true
	}
	return false
}
