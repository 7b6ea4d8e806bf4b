package models

import (
	"testing"
	"time"
)

// TestSubscriptionEntitlementAt verifies tier resolution across status and
// period-boundary combinations.
func TestSubscriptionEntitlementAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(30 * 24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name string
		sub  *Subscription
		want Entitlement
	}{
		{name: "nil subscription is guest", sub: nil, want: EntitlementGuest},
		{
			name: "active with future period end is pro",
			sub:  &Subscription{Status: SubscriptionActive, CurrentPeriodEnd: &future},
			want: EntitlementPro,
		},
		{
			name: "active with no period end is pro",
			sub:  &Subscription{Status: SubscriptionActive},
			want: EntitlementPro,
		},
		{
			name: "active but lapsed period is guest",
			sub:  &Subscription{Status: SubscriptionActive, CurrentPeriodEnd: &past},
			want: EntitlementGuest,
		},
		{
			name: "trialing before trial end is trial",
			sub:  &Subscription{Status: SubscriptionTrialing, TrialEndsAt: &future},
			want: EntitlementTrial,
		},
		{
			name: "trialing after trial end is guest",
			sub:  &Subscription{Status: SubscriptionTrialing, TrialEndsAt: &past},
			want: EntitlementGuest,
		},
		{
			name: "trialing without trial end is guest",
			sub:  &Subscription{Status: SubscriptionTrialing},
			want: EntitlementGuest,
		},
		{
			name: "canceled is guest",
			sub:  &Subscription{Status: SubscriptionCanceled, CurrentPeriodEnd: &future},
			want: EntitlementGuest,
		},
		{
			name: "expired is guest",
			sub:  &Subscription{Status: SubscriptionExpired},
			want: EntitlementGuest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sub.EntitlementAt(now); got != tt.want {
				t.Errorf("EntitlementAt() = %q, want %q", got, tt.want)
			}
		})
	}
}
