// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"logokit/internal/models"
)

// SubscriptionStore records billing state reported by the payment provider.
// Webhook deliveries are tracked in billing_events so retried deliveries
// apply exactly once.
type SubscriptionStore struct {
	db *sql.DB
}

// NewSubscriptionStore creates a new SubscriptionStore with the given
// database connection.
func NewSubscriptionStore(db *sql.DB) *SubscriptionStore {
	return &SubscriptionStore{db: db}
}

const subscriptionColumns = `id, user_id, plan, status, provider_customer_id,
	trial_ends_at, current_period_end, created_at, updated_at`

func scanSubscription(row interface{ Scan(...any) error }) (*models.Subscription, error) {
	sub := &models.Subscription{}
	err := row.Scan(
		&sub.ID, &sub.UserID, &sub.Plan, &sub.Status, &sub.ProviderCustomerID,
		&sub.TrialEndsAt, &sub.CurrentPeriodEnd, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// FindByUserID retrieves a user's subscription. Returns nil if the user has
// never subscribed.
func (s *SubscriptionStore) FindByUserID(userID uuid.UUID) (*models.Subscription, error) {
	sub, err := scanSubscription(s.db.QueryRow(`
		SELECT `+subscriptionColumns+` FROM subscriptions WHERE user_id = $1
	`, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find subscription: %w", err)
	}
	return sub, nil
}

// Upsert creates or replaces the user's subscription row from a webhook
// event and returns the stored row.
func (s *SubscriptionStore) Upsert(sub *models.Subscription) (*models.Subscription, error) {
	stored, err := scanSubscription(s.db.QueryRow(`
		INSERT INTO subscriptions (user_id, plan, status, provider_customer_id, trial_ends_at, current_period_end)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			plan = EXCLUDED.plan,
			status = EXCLUDED.status,
			provider_customer_id = EXCLUDED.provider_customer_id,
			trial_ends_at = EXCLUDED.trial_ends_at,
			current_period_end = EXCLUDED.current_period_end,
			updated_at = NOW()
		RETURNING `+subscriptionColumns,
		sub.UserID, sub.Plan, sub.Status, sub.ProviderCustomerID, sub.TrialEndsAt, sub.CurrentPeriodEnd,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert subscription: %w", err)
	}
	return stored, nil
}

// RecordEvent registers a webhook delivery by its provider event id.
// Returns false when the event was already processed.
func (s *SubscriptionStore) RecordEvent(eventID, eventType string) (bool, error) {
	res, err := s.db.Exec(`
		INSERT INTO billing_events (event_id, event_type)
		VALUES ($1, $2)
		ON CONFLICT (event_id) DO NOTHING
	`, eventID, eventType)
	if err != nil {
		return false, fmt.Errorf("record billing event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("record billing event: %w", err)
	}
	return n > 0, nil
}

// ApplyEvent records a webhook delivery and applies its subscription change
// in one transaction. Returns false when the event id was already processed.
// A failed apply rolls back the event record, so the provider's retry is
// treated as a fresh delivery instead of being acknowledged as a replay.
func (s *SubscriptionStore) ApplyEvent(eventID, eventType string, sub *models.Subscription) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("apply billing event: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO billing_events (event_id, event_type)
		VALUES ($1, $2)
		ON CONFLICT (event_id) DO NOTHING
	`, eventID, eventType)
	if err != nil {
		return false, fmt.Errorf("apply billing event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("apply billing event: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if _, err := tx.Exec(`
		INSERT INTO subscriptions (user_id, plan, status, provider_customer_id, trial_ends_at, current_period_end)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			plan = EXCLUDED.plan,
			status = EXCLUDED.status,
			provider_customer_id = EXCLUDED.provider_customer_id,
			trial_ends_at = EXCLUDED.trial_ends_at,
			current_period_end = EXCLUDED.current_period_end,
			updated_at = NOW()
	`, sub.UserID, sub.Plan, sub.Status, sub.ProviderCustomerID, sub.TrialEndsAt, sub.CurrentPeriodEnd); err != nil {
		return false, fmt.Errorf("apply billing event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("apply billing event: %w", err)
	}
	return true, nil
}
