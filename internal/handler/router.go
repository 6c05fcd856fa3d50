package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"userreg/internal/pkg/limiter"
	"userreg/internal/pkg/logx"
	"userreg/internal/pkg/metrics"
)

// Router builds the HTTP routing table. ctx bounds the background work of the rate limiter.
func Router(ctx context.Context, deps *AppDeps) http.Handler {
	registerLimiter := limiter.NewIPRateLimiter(ctx, rate.Limit(deps.Config.RegisterRate), deps.Config.RegisterBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins: corsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Get("/health", HandleHealth(deps))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.With(registerLimiter.Middleware).Post("/register", HandleRegister(deps))
	r.Get("/user/{user_id}", HandleGetUser(deps))

	if deps.StorageService != nil {
		r.Post("/avatar/presign", HandlePresignAvatarURL(deps))
	}

	return r
}
