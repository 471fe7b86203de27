package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"
)

// Module provides the page handlers and mounts their routes
var Module = fx.Module("handlers",
	fx.Provide(NewFormatter),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)

// RegisterRoutes registers the page routes
func RegisterRoutes(r *chi.Mux, h *Handler) {
	r.Get("/", h.LandingPage)
	r.Get("/api/estimate", h.Estimate)
	r.Get("/book", h.Book)
	r.Get("/health", h.Health)
	r.Get("/healthz", Healthz)
}
