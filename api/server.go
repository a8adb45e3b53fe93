// ABOUTME: Router construction for the HTTP API
// ABOUTME: Assembles CORS, logging, rate limiting, and recovery middleware

package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"leadscout-api/api/middleware"
	"leadscout-api/core/interfaces"
)

// Config holds the router configuration
type Config struct {
	Logger interfaces.Logger

	// RateLimitRPS is the sustained per-IP request rate; zero disables limiting
	RateLimitRPS float64

	// RateLimitBurst is the per-IP burst allowance
	RateLimitBurst int
}

// NewRouter builds the router with the standard middleware chain. Recovery
// sits innermost so panics in handlers are caught after the request has been
// logged.
func NewRouter(cfg Config) chi.Router {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	if cfg.Logger != nil {
		router.Use(middleware.RecoveryMiddleware(cfg.Logger))
	}

	return router
}
