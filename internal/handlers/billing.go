// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"logokit/internal/billing"
	"logokit/internal/store"
)

// Billing groups the payment-provider webhook handlers.
type Billing struct {
	secret string
	subs   *store.SubscriptionStore
}

// NewBilling creates a new Billing handler group.
func NewBilling(secret string, subs *store.SubscriptionStore) *Billing {
	return &Billing{secret: secret, subs: subs}
}

// Webhook serves POST /billing/webhook. The provider retries failed
// deliveries, so processed event ids are recorded and replays acknowledged
// without re-applying.
func (b *Billing) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		respondErr(w, r, http.StatusBadRequest, "webhook_invalid")
		return
	}

	event, err := billing.ParseEvent(b.secret, body, r.Header.Get(billing.SignatureHeader))
	if errors.Is(err, billing.ErrBadSignature) {
		slog.Warn("webhook signature rejected", "remote", r.RemoteAddr)
		respondErr(w, r, http.StatusUnauthorized, "webhook_invalid")
		return
	}
	if err != nil {
		respondErr(w, r, http.StatusBadRequest, "webhook_invalid")
		return
	}
	if !billing.KnownStatus(event.Status) {
		slog.Warn("webhook with unknown status", "event_id", event.ID, "status", event.Status)
		respondErr(w, r, http.StatusBadRequest, "webhook_invalid")
		return
	}

	// Event record and subscription change commit together: a failed apply
	// leaves the event unrecorded so the provider's retry goes through.
	fresh, err := b.subs.ApplyEvent(event.ID, event.Type, event.Subscription())
	if err != nil {
		slog.Error("apply billing event failed", "error", err, "event_id", event.ID)
		respondErr(w, r, http.StatusInternalServerError, "internal_error")
		return
	}
	if !fresh {
		// Replayed delivery; already applied.
		respond(w, r, http.StatusOK, "ok", nil)
		return
	}

	slog.Info("subscription updated",
		"event_id", event.ID,
		"event_type", event.Type,
		"user_id", event.UserID,
		"status", event.Status,
	)
	respond(w, r, http.StatusOK, "ok", nil)
}
