package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/parisxmas/foreverfamily/internal/auth"
	"github.com/parisxmas/foreverfamily/internal/handler"
	mw "github.com/parisxmas/foreverfamily/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options carries the settings the router needs besides handlers.
type Options struct {
	AdminKey       string
	Permissive     bool
	AllowedOrigins []string
}

func New(
	opts Options,
	intakeH *handler.IntakeHandler,
	portalH *handler.PortalHandler,
	stepH *handler.StepHandler,
	adminH *handler.AdminHandler,
	staticH *handler.StaticHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(mw.Correlation)
	r.Use(mw.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", auth.AdminKeyHeader, mw.RequestIDHeader},
		ExposedHeaders: []string{mw.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/livez", handler.Livez)
	r.Handle("/metrics", promhttp.Handler())

	// Public routes
	r.Post("/api/join", intakeH.Join)
	r.Post("/api/referral", intakeH.Referral)
	r.Post("/api/portal-login", portalH.Login)
	r.Get("/api/steps", stepH.List)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(auth.AdminGuard(opts.AdminKey, opts.Permissive))

		r.Post("/api/steps", stepH.Create)
		r.Put("/api/steps/{id}", stepH.Update)
		r.Get("/api/submissions", adminH.Submissions)
	})

	// Any other GET gets the site
	r.Get("/*", staticH.Serve)
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not found."}`))
}
