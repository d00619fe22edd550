// Package router assembles the portal's HTTP surface: the three role
// dashboards behind identity middleware, the shared lookup catalogs, and the
// operational endpoints.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/openhms/hospital-portal/internal/http/handlers"
	httpmiddleware "github.com/openhms/hospital-portal/internal/http/middleware"
	"github.com/openhms/hospital-portal/internal/session"
	"github.com/openhms/hospital-portal/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	AdminHandler   *handlers.AdminHandler
	DoctorHandler  *handlers.DoctorHandler
	PatientHandler *handlers.PatientHandler
	LookupHandler  *handlers.LookupHandler
	SessionHandler *handlers.SessionHandler
	MetricsHandler http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		if cfg.LookupHandler != nil {
			public.Mount("/lookups", cfg.LookupHandler.Routes())
		}
		if cfg.SessionHandler != nil {
			public.Mount("/session", cfg.SessionHandler.Routes())
		}
	})

	// Role dashboards. Identity comes from the bearer token; role gating here
	// is display-level only, the backend enforces authorization on every call.
	if cfg.AdminHandler != nil {
		r.Route("/admin", func(r chi.Router) {
			r.Use(httpmiddleware.Identity())
			r.Use(httpmiddleware.RequireRole(session.RoleAdmin))
			r.Mount("/", cfg.AdminHandler.Routes())
		})
	}
	if cfg.DoctorHandler != nil {
		r.Route("/doctor", func(r chi.Router) {
			r.Use(httpmiddleware.Identity())
			r.Use(httpmiddleware.RequireRole(session.RoleDoctor))
			r.Mount("/", cfg.DoctorHandler.Routes())
		})
	}
	if cfg.PatientHandler != nil {
		r.Route("/patient", func(r chi.Router) {
			r.Use(httpmiddleware.Identity())
			r.Use(httpmiddleware.RequireRole(session.RolePatient))
			r.Mount("/", cfg.PatientHandler.Routes())
		})
	}

	return r
}
