/*
Package storage issues presigned upload URLs against S3-compatible object storage.

Clients upload avatar images directly to the bucket and register the resulting object key as
their profile_picture; the service never handles the bytes itself.
*/
package storage

import (
	"context"
	"time"

	"userreg/internal/configs"
)

// ServiceConfig holds the configuration required to connect to the storage service.
type ServiceConfig struct {
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// ConfigFrom extracts the storage settings from the application config.
func ConfigFrom(cfg *configs.AppConfig) ServiceConfig {
	return ServiceConfig{
		S3BucketName:      cfg.S3BucketName,
		S3Endpoint:        cfg.S3Endpoint,
		S3AccessKeyID:     cfg.S3AccessKeyID,
		S3SecretAccessKey: cfg.S3SecretAccessKey,
	}
}

// StorageService is the public interface of the object storage.
type StorageService interface {
	// PresignUpload generates a pre-signed PUT URL for key, bound to mimeType and fileSize.
	PresignUpload(
		ctx context.Context,
		key string,
		mimeType string,
		fileSize int64,
		duration time.Duration,
	) (string, error)
}

// NewStorageService returns the S3-compatible implementation of StorageService.
func NewStorageService(ctx context.Context, cfg ServiceConfig) (StorageService, error) {
	return newS3Client(ctx, cfg)
}
