package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"campus-salary/internal/config"
	"campus-salary/internal/handlers"
	"campus-salary/internal/observability"
	"campus-salary/internal/ratelimit"
	"campus-salary/internal/salary"
	"campus-salary/internal/web"
)

func NewRouter(cfg config.Config) http.Handler {

	r := chi.NewRouter()

	// RealIP trusts X-Forwarded-For and friends, so only a proxy we run
	// may set them.
	if cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(observability.RecoverMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	r.Group(func(r chi.Router) {
		if cfg.RateLimitRPS > 0 {
			limiter := ratelimit.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
			r.Use(limiter.Middleware)
		}
		salary.RegisterRoutes(r)
	})

	r.Handle("/*", web.Handler())

	return r
}
