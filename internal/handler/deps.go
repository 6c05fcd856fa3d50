package handler

import (
	"context"

	"userreg/internal/app/storage"
	"userreg/internal/app/user"
	"userreg/internal/configs"
)

// UserService is the registration and retrieval surface the handlers call.
type UserService interface {
	Register(ctx context.Context, in user.RegisterInput) (*user.Record, error)
	Get(ctx context.Context, id int64) (*user.Record, error)
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type AppDeps struct {
	Config *configs.AppConfig
	Users  UserService

	// StorageService is nil when S3 is not configured; the avatar route is then not mounted.
	StorageService storage.StorageService

	// HealthChecks are run by /health, keyed by dependency name.
	HealthChecks map[string]HealthCheck
}
