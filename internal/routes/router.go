package routes

import (
	"net/http"
	"time"

	"infinite-experiment/sponsorlink/internal/api"
	"infinite-experiment/sponsorlink/internal/config"
	"infinite-experiment/sponsorlink/internal/constants"
	"infinite-experiment/sponsorlink/internal/logging"
	"infinite-experiment/sponsorlink/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func RegisterRoutes(cfg *config.Config, deps *api.Dependencies, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	if !cfg.IsProduction() {
		r.Use(middleware.DebugRequestLogging)
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constants.HeaderAPIKey, constants.HeaderRequestID},
		ExposedHeaders:   []string{constants.HeaderCache, constants.HeaderRequestID},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	limiter := middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.RateLimitWhitelist)
	r.Use(middleware.RateLimitMiddleware(limiter, deps.Metrics))

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(deps.SQLX, deps.Services.Cache, upSince))

	RegisterAPIRoutes(r, deps, cfg.CacheTTL)

	return r
}
