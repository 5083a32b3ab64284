package httptransport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aurum/internal/platform/middleware"
)

// NewRouter wires the public surface: the customer journey, the officer
// review queue, and the operational endpoints.
func NewRouter(h *Handler, registry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	// Public endpoints.
	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Post("/customers/register", h.handleCustomerRegister)
		r.Post("/customers/login", h.handleCustomerLogin)
		r.Post("/officers/login", h.handleOfficerLogin)
	})
	r.Get("/branches", h.handleListBranches)
	r.Get("/loans/quote", h.handleLoanQuote)

	// Customer surface.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.validator, middleware.RoleCustomer, h.logger))
		r.Get("/customers/me", h.handleCustomerProfile)
		r.Get("/customers/me/notifications", h.handleCustomerNotifications)
		r.Get("/customers/me/applications", h.handleCustomerApplications)
		r.Get("/customers/me/applications/{id}", h.handleCustomerApplication)

		r.Group(func(r chi.Router) {
			r.Use(middleware.ContentTypeJSON)
			r.Put("/applications/draft/ornaments", h.handleDraftOrnaments)
			r.Put("/applications/draft/terms", h.handleDraftTerms)
			r.Put("/applications/draft/document", h.handleDraftDocument)
			r.Post("/applications", h.handleSubmit)
		})
		r.Get("/applications/draft", h.handleDraftGet)
	})

	// Officer surface.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.validator, middleware.RoleOfficer, h.logger))
		r.Get("/officer/applications", h.handlePendingApplications)
		r.Get("/officer/applications/{id}", h.handleReviewBundle)
		r.Get("/officer/applications/{id}/audit", h.handleAuditTrail)

		r.Group(func(r chi.Router) {
			r.Use(middleware.ContentTypeJSON)
			r.Post("/officer/applications/{id}/review", h.handlePickUp)
			r.Post("/officer/applications/{id}/decision", h.handleDecision)
		})
	})

	return r
}
