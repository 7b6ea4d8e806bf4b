// Package router sets up all HTTP routes and middleware chains for the
// LogoKit API. Routes split into the public mobile surface, the
// authenticated editing surface, and the billing webhook.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"logokit/internal/auth"
	"logokit/internal/handlers"
	"logokit/internal/middleware"
	"logokit/internal/models"
	"logokit/internal/store"
)

// Deps carries everything the route tree needs.
type Deps struct {
	Tokens        *auth.TokenService
	Subscriptions *store.SubscriptionStore

	Auth    *handlers.Auth
	Mobile  *handlers.Mobile
	Logos   *handlers.Logos
	Layers  *handlers.Layers
	Catalog *handlers.Catalog
	Billing *handlers.Billing
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.Language)
	r.Use(middleware.Authenticate(d.Tokens))

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Unprefixed aliases for mobile clients released before the /api/v1
	// mount. Same handlers, same envelopes.
	r.Get("/logo/mobile/legacy", d.Mobile.LegacyList)
	r.Get("/logo/{id}/mobile", d.Mobile.Document)
	r.Get("/logo/{id}/mobile/legacy", d.Mobile.LegacyDocument)

	r.Route("/api/v1", func(r chi.Router) {
		// Mobile document surface — public, read-only.
		r.Route("/mobile/logos", func(r chi.Router) {
			r.Get("/legacy", d.Mobile.LegacyList)
			r.Get("/{id}", d.Mobile.Document)
			r.Get("/{id}/legacy", d.Mobile.LegacyDocument)
		})

		// Auth endpoints — rate-limited against credential stuffing.
		r.Route("/auth", func(r chi.Router) {
			limiter := middleware.NewRateLimiter(20, time.Minute)
			r.Use(limiter.Middleware)

			r.Post("/register", d.Auth.Register)
			r.Post("/login", d.Auth.Login)
			r.Post("/refresh", d.Auth.Refresh)
			r.Post("/logout", d.Auth.Logout)
			r.Post("/otp/request", d.Auth.OTPRequest)
			r.Post("/otp/verify", d.Auth.OTPVerify)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser)
				r.Post("/totp/setup", d.Auth.TOTPSetup)
				r.Post("/totp/verify", d.Auth.TOTPVerify)
			})
		})

		// Shared catalogs — public reads, admin writes.
		r.Get("/assets", d.Catalog.ListAssets)
		r.Get("/assets/{id}", d.Catalog.GetAsset)
		r.Get("/fonts", d.Catalog.ListFonts)
		r.Get("/categories", d.Catalog.ListCategories)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Use(middleware.RequireAdmin)
			r.Post("/assets", d.Catalog.CreateAsset)
			r.Delete("/assets/{id}", d.Catalog.DeleteAsset)
		})

		// Owner editing surface.
		r.Route("/logos", func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Get("/", d.Logos.List)
			r.Post("/", d.Logos.Create)
			r.Get("/{id}", d.Logos.Get)
			r.Put("/{id}", d.Logos.Update)
			r.Delete("/{id}", d.Logos.Delete)

			// Export is part of the paid tier.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireEntitlement(d.Subscriptions, models.EntitlementPro))
				r.Post("/{id}/export", d.Logos.Export)
			})

			r.Route("/{id}/layers", func(r chi.Router) {
				r.Get("/", d.Layers.List)
				r.Post("/", d.Layers.Create)
				r.Put("/order", d.Layers.Reorder)
				r.Put("/{layerID}", d.Layers.Update)
				r.Delete("/{layerID}", d.Layers.Delete)
			})
		})

		// Payment provider callbacks — authenticated by signature, not JWT.
		r.Post("/billing/webhook", d.Billing.Webhook)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
