/*
Package main is the entry point of the user registration service.

It loads configuration, initializes the global logger, connects the relational store and the
configured profile store, wires the optional Kafka publisher and S3 presigner, serves HTTP and
shuts everything down in order on SIGINT or SIGTERM.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"userreg/internal/app/db"
	"userreg/internal/app/events"
	"userreg/internal/app/profile"
	"userreg/internal/app/storage"
	"userreg/internal/app/user"
	"userreg/internal/configs"
	"userreg/internal/handler"
	"userreg/internal/pkg/logx"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(cfg.IsDevelopment())
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Str("profile_backend", cfg.ProfileBackend).
		Dur("store_timeout", cfg.StoreTimeout).
		Bool("s3_enabled", cfg.S3Enabled()).
		Bool("kafka_enabled", len(cfg.KafkaBrokers) > 0).
		Msg("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Failed to initialize database")
	}
	defer pool.Close()

	backend, err := profile.Open(ctx, cfg, pool)
	if err != nil {
		logx.Fatal(err, "Failed to initialize profile store", "backend", cfg.ProfileBackend)
	}

	opts := []user.Option{
		user.WithStoreTimeout(cfg.StoreTimeout),
		user.WithHashCost(cfg.BcryptCost),
	}

	var publisher *events.KafkaPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		opts = append(opts, user.WithEvents(publisher))
	}

	deps := &handler.AppDeps{
		Config: cfg,
		Users:  user.NewService(user.NewPGStore(pool), backend.Store, opts...),
		HealthChecks: map[string]handler.HealthCheck{
			"postgres":   pool.Ping,
			backend.Name: backend.Ping,
		},
	}

	if cfg.S3Enabled() {
		deps.StorageService, err = storage.NewStorageService(ctx, storage.ConfigFrom(cfg))
		if err != nil {
			logx.Fatal(err, "Failed to initialize storage service")
		}
	}

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler.Router(ctx, deps),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("User registration service starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error(err, "Server forced to shutdown")
	}

	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logx.Error(err, "Failed to close event publisher")
		}
	}

	if err := backend.Close(shutdownCtx); err != nil {
		logx.Error(err, "Failed to close profile store", "backend", backend.Name)
	}

	logx.Info("Server gracefully stopped.")
}
