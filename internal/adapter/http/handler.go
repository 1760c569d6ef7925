package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"adpilot/internal/core/port"
)

const requestTimeout = 10 * time.Minute

// Handler is the inbound HTTP adapter. It decodes requests, calls the use
// cases and encodes their results as JSON. Routes are registered on a
// chi.Router.
type Handler struct {
	campaigns port.CampaignUseCase
	auth      port.AuthUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. allowedOrigins
// feeds the CORS middleware; "*" allows every origin.
func NewHandler(campaigns port.CampaignUseCase, auth port.AuthUseCase, allowedOrigins []string, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, auth: auth, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)
		r.Get("/me", h.handleMe)
	})

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.Timeout(requestTimeout)).Post("/executeQueries", h.handleExecuteQueries)
		r.Get("/campaigns", h.handleListRuns)
		r.Get("/campaigns/{id}", h.handleGetRun)
		r.Post("/campaigns/{customerId}/{campaignId}/audience-exclusions", h.handleAudienceExclusions)
	})

	r.Get("/campaign_overview/{customerId}/{campaignId}", h.handleCampaignOverview)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
