// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"logokit/internal/models"
)

func TestSubscriptionStoreUpsert(t *testing.T) {
	db := testDB(t)
	owner := testOwner(t, db, "test-sub-upsert@store-test.local")
	s := NewSubscriptionStore(db)

	end := time.Now().Add(30 * 24 * time.Hour).UTC()
	sub, err := s.Upsert(&models.Subscription{
		UserID:           owner.ID,
		Plan:             "pro-monthly",
		Status:           models.SubscriptionActive,
		CurrentPeriodEnd: &end,
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if sub.Status != models.SubscriptionActive {
		t.Errorf("status: got %q", sub.Status)
	}

	// Second upsert for the same user must replace, not duplicate.
	sub2, err := s.Upsert(&models.Subscription{
		UserID: owner.ID,
		Plan:   "pro-monthly",
		Status: models.SubscriptionCanceled,
	})
	if err != nil {
		t.Fatalf("Upsert (second): %v", err)
	}
	if sub2.ID != sub.ID {
		t.Error("upsert should keep one row per user")
	}
	if sub2.Status != models.SubscriptionCanceled {
		t.Errorf("status after update: got %q", sub2.Status)
	}

	found, err := s.FindByUserID(owner.ID)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if found == nil || found.Status != models.SubscriptionCanceled {
		t.Errorf("FindByUserID: %+v", found)
	}
}

func TestSubscriptionStoreFindMissing(t *testing.T) {
	db := testDB(t)
	owner := testOwner(t, db, "test-sub-missing@store-test.local")
	s := NewSubscriptionStore(db)

	sub, err := s.FindByUserID(owner.ID)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if sub != nil {
		t.Errorf("expected nil for user without subscription, got %+v", sub)
	}
}

func TestSubscriptionStoreApplyEvent(t *testing.T) {
	db := testDB(t)
	owner := testOwner(t, db, "test-sub-apply@store-test.local")
	s := NewSubscriptionStore(db)

	eventID := "evt-apply-" + time.Now().Format("20060102150405.000000000")
	t.Cleanup(func() { db.Exec(`DELETE FROM billing_events WHERE event_id = $1`, eventID) })

	fresh, err := s.ApplyEvent(eventID, "subscription.activated", &models.Subscription{
		UserID: owner.ID,
		Plan:   "pro-monthly",
		Status: models.SubscriptionActive,
	})
	if err != nil {
		t.Fatalf("ApplyEvent: %v", err)
	}
	if !fresh {
		t.Error("first delivery should be fresh")
	}

	sub, err := s.FindByUserID(owner.ID)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if sub == nil || sub.Status != models.SubscriptionActive {
		t.Errorf("subscription after apply: %+v", sub)
	}

	// A replayed delivery is reported as already processed and must not
	// change the stored row.
	replay, err := s.ApplyEvent(eventID, "subscription.activated", &models.Subscription{
		UserID: owner.ID,
		Plan:   "pro-monthly",
		Status: models.SubscriptionCanceled,
	})
	if err != nil {
		t.Fatalf("ApplyEvent (replay): %v", err)
	}
	if replay {
		t.Error("replayed delivery should be reported as already processed")
	}
	sub, err = s.FindByUserID(owner.ID)
	if err != nil {
		t.Fatalf("FindByUserID (after replay): %v", err)
	}
	if sub == nil || sub.Status != models.SubscriptionActive {
		t.Errorf("replay must not re-apply: %+v", sub)
	}
}

func TestSubscriptionStoreApplyEventRollsBack(t *testing.T) {
	db := testDB(t)
	owner := testOwner(t, db, "test-sub-rollback@store-test.local")
	s := NewSubscriptionStore(db)

	eventID := "evt-rollback-" + time.Now().Format("20060102150405.000000000")
	t.Cleanup(func() { db.Exec(`DELETE FROM billing_events WHERE event_id = $1`, eventID) })

	// The subscription insert fails on the user FK, so the event record in
	// the same transaction must roll back with it.
	_, err := s.ApplyEvent(eventID, "subscription.activated", &models.Subscription{
		UserID: uuid.New(),
		Plan:   "pro-monthly",
		Status: models.SubscriptionActive,
	})
	if err == nil {
		t.Fatal("expected FK violation for unknown user")
	}

	// The retry with a valid payload must be treated as a fresh delivery.
	fresh, err := s.ApplyEvent(eventID, "subscription.activated", &models.Subscription{
		UserID: owner.ID,
		Plan:   "pro-monthly",
		Status: models.SubscriptionActive,
	})
	if err != nil {
		t.Fatalf("ApplyEvent (retry): %v", err)
	}
	if !fresh {
		t.Error("failed apply must leave the event unrecorded so the retry goes through")
	}
}

func TestSubscriptionStoreRecordEvent(t *testing.T) {
	db := testDB(t)
	s := NewSubscriptionStore(db)

	eventID := "evt-test-" + time.Now().Format("20060102150405.000000000")
	t.Cleanup(func() { db.Exec(`DELETE FROM billing_events WHERE event_id = $1`, eventID) })

	fresh, err := s.RecordEvent(eventID, "subscription.updated")
	if err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}
	if !fresh {
		t.Error("first delivery should be fresh")
	}

	replay, err := s.RecordEvent(eventID, "subscription.updated")
	if err != nil {
		t.Fatalf("RecordEvent (replay): %v", err)
	}
	if replay {
		t.Error("replayed delivery should be reported as already processed")
	}
}
