package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/passgen/passgen-go/internal/middleware"
)

// RouterConfig wires handlers and middleware settings into the router.
type RouterConfig struct {
	Service string
	Env     string

	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int

	Generator *GeneratorHandler
	Strength  *StrengthHandler
	Auth      *AuthHandler
	Stats     *StatsHandler
	Web       *WebHandler
	Metrics   http.Handler
}

// NewRouter builds the chi router serving the form, the JSON API and metrics.
// Background work started for the router stops when ctx is done.
func NewRouter(ctx context.Context, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger(cfg.Service, cfg.Env))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", cfg.Metrics)

	r.Get("/", cfg.Web.HandleIndex)
	r.Post("/", cfg.Web.HandleGenerate)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", cfg.Generator.HandleGenerate)
		r.Post("/api/v1/strength", cfg.Strength.HandleCheck)
		r.Post("/api/v1/admin/login", cfg.Auth.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/v1/stats", cfg.Stats.HandleStats)
	})

	return r
}
