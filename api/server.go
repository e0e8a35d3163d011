/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the dashboard frontend

ROUTE GROUPS:
  /api/documents/*    Document lifecycle (create, read, transition)
  /api/finance/*      Monetary reconciliation computations
  /api/dashboards/*   Aggregation rollups
  /api/compliance/*   Temporal classification
  /api/health         Liveness

SECURITY NOTE:
  No authentication middleware: the core assumes callers are already
  authorized, and auth enforcement belongs to the excluded outer layer.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/documents", func(r chi.Router) {
			r.Post("/", h.CreateDocument)
			r.Get("/", h.ListDocuments)
			r.Get("/{id}", h.GetDocument)
			r.Post("/{id}/transition", h.TransitionDocument)
		})

		r.Route("/finance", func(r chi.Router) {
			r.Post("/invoice-totals", h.ComputeInvoiceTotals)
			r.Post("/budget", h.ComputeBudget)
			r.Post("/settlement", h.ComputeSettlement)
		})

		r.Route("/dashboards", func(r chi.Router) {
			r.Get("/aging", h.AgingDashboard)
			r.Get("/bkk-summary", h.BKKSummaryDashboard)
			r.Post("/pipeline", h.PipelineDashboard)
			r.Post("/win-loss", h.WinLossDashboard)
			r.Post("/top-customers", h.TopCustomersDashboard)
		})

		r.Route("/compliance", func(r chi.Router) {
			r.Post("/certificates", h.ClassifyCertificates)
		})
	})

	return r
}
