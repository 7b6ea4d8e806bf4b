// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"logokit/internal/models"
)

// EntitlementSource resolves a user's subscription. Satisfied by
// store.SubscriptionStore.
type EntitlementSource interface {
	FindByUserID(userID uuid.UUID) (*models.Subscription, error)
}

// tierRank orders entitlements for gating comparisons.
var tierRank = map[models.Entitlement]int{
	models.EntitlementGuest: 0,
	models.EntitlementTrial: 1,
	models.EntitlementPro:   2,
}

// RequireEntitlement rejects authenticated users whose effective tier is
// below the required one. Must be applied after RequireUser.
func RequireEntitlement(subs EntitlementSource, required models.Entitlement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromCtx(r.Context())
			if claims == nil {
				fail(w, r, http.StatusUnauthorized, "unauthorized")
				return
			}

			userID, err := claims.SubjectID()
			if err != nil {
				fail(w, r, http.StatusUnauthorized, "unauthorized")
				return
			}

			sub, err := subs.FindByUserID(userID)
			if err != nil {
				slog.Error("entitlement lookup failed", "error", err, "user_id", userID)
				fail(w, r, http.StatusInternalServerError, "internal_error")
				return
			}

			tier := sub.EntitlementAt(time.Now())
			if tierRank[tier] < tierRank[required] {
				fail(w, r, http.StatusPaymentRequired, "entitlement_required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
