/*
Package profile provides the interchangeable profile stores behind user.ProfileStore.

The backend is chosen by configuration: a MongoDB collection, the profile table of the
relational database, or Redis keys.
*/
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"userreg/internal/app/db"
	"userreg/internal/app/user"
	"userreg/internal/configs"
)

// Backend bundles the selected store with its health check and shutdown hook.
type Backend struct {
	Name  string
	Store user.ProfileStore
	Ping  func(ctx context.Context) error
	Close func(ctx context.Context) error
}

// Open connects the profile backend named by cfg.ProfileBackend.
// The postgres backend reuses conn; the others open their own client.
func Open(ctx context.Context, cfg *configs.AppConfig, conn db.Conn) (*Backend, error) {
	switch cfg.ProfileBackend {
	case configs.ProfileBackendPostgres:
		store := NewPGStore(conn)
		return &Backend{
			Name:  cfg.ProfileBackend,
			Store: store,
			Ping:  conn.Ping,
			Close: func(context.Context) error { return nil },
		}, nil

	case configs.ProfileBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  cfg.StoreTimeout,
			ReadTimeout:  cfg.StoreTimeout,
			WriteTimeout: cfg.StoreTimeout,
		})
		store := NewRedisStore(rdb)
		if err := store.Ping(ctx); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		return &Backend{
			Name:  cfg.ProfileBackend,
			Store: store,
			Ping:  store.Ping,
			Close: func(context.Context) error { return rdb.Close() },
		}, nil

	case configs.ProfileBackendMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().
			ApplyURI(cfg.MongoURI).
			SetTimeout(cfg.StoreTimeout))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}

		store := NewMongoStore(client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection))
		if err := store.Ping(connectCtx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("failed to ping mongo: %w", err)
		}
		if err := store.EnsureIndexes(connectCtx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &Backend{
			Name:  cfg.ProfileBackend,
			Store: store,
			Ping:  store.Ping,
			Close: client.Disconnect,
		}, nil
	}

	return nil, fmt.Errorf("unsupported profile backend %q", cfg.ProfileBackend)
}

func unavailable(op string, userID int64, err error) error {
	return fmt.Errorf("%s for user %d: %w: %w", op, userID, user.ErrStoreUnavailable, err)
}
