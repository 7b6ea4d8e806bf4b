// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Entitlement is a user's effective subscription tier, consumed by
// billing-gated routes.
type Entitlement string

const (
	EntitlementGuest Entitlement = "guest"
	EntitlementTrial Entitlement = "trial"
	EntitlementPro   Entitlement = "pro"
)

// SubscriptionStatus mirrors the payment provider's lifecycle states.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

// Subscription records a user's billing state as reported by the payment
// provider's webhooks. At most one row exists per user.
type Subscription struct {
	ID                 uuid.UUID          `json:"id"`
	UserID             uuid.UUID          `json:"user_id"`
	Plan               string             `json:"plan"`
	Status             SubscriptionStatus `json:"status"`
	ProviderCustomerID *string            `json:"provider_customer_id,omitempty"`
	TrialEndsAt        *time.Time         `json:"trial_ends_at,omitempty"`
	CurrentPeriodEnd   *time.Time         `json:"current_period_end,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// EntitlementAt resolves the effective tier at the given instant. An active
// paid subscription grants pro; a live trial grants trial; everything else
// falls back to guest.
func (s *Subscription) EntitlementAt(now time.Time) Entitlement {
	if s == nil {
		return EntitlementGuest
	}
	switch s.Status {
	case SubscriptionActive:
		if s.CurrentPeriodEnd == nil || now.Before(*s.CurrentPeriodEnd) {
			return EntitlementPro
		}
	case SubscriptionTrialing:
		if s.TrialEndsAt != nil && now.Before(*s.TrialEndsAt) {
			return EntitlementTrial
		}
	}
	return EntitlementGuest
}
