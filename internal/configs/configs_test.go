package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ENVIRONMENT", "PORT", "ALLOWED_ORIGINS", "BCRYPT_COST", "REGISTER_RATE", "REGISTER_BURST",
		"DATABASE_URL", "STORE_TIMEOUT", "PROFILE_BACKEND", "MONGO_URL", "MONGO_DATABASE",
		"MONGO_COLLECTION", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "S3_BUCKET_NAME",
		"S3_ENDPOINT", "S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY", "KAFKA_BROKERS", "KAFKA_TOPIC",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_DevelopmentDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ProfileBackendMongo, cfg.ProfileBackend)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "user_profile_db", cfg.MongoDatabase)
	assert.Equal(t, "profile", cfg.MongoCollection)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.False(t, cfg.S3Enabled())
}

func TestLoadConfig_ProductionRequiresDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadConfig_ProductionRequiresMongoURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/app")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "MONGO_URL")
}

func TestLoadConfig_RedisBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROFILE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("STORE_TIMEOUT", "750ms")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ProfileBackendRedis, cfg.ProfileBackend)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 750*time.Millisecond, cfg.StoreTimeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad port":     {"PORT", "abc"},
		"privileged":   {"PORT", "80"},
		"bad backend":  {"PROFILE_BACKEND", "cassandra"},
		"bad timeout":  {"STORE_TIMEOUT", "soon"},
		"zero timeout": {"STORE_TIMEOUT", "0s"},
		"bad cost":     {"BCRYPT_COST", "40"},
		"bad rate":     {"REGISTER_RATE", "fast"},
		"bad redis db": {"REDIS_DB", "x"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			if kv[0] == "REDIS_DB" {
				t.Setenv("PROFILE_BACKEND", "redis")
			}

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestS3Enabled(t *testing.T) {
	cfg := &AppConfig{S3BucketName: "b", S3Endpoint: "http://s3", S3AccessKeyID: "k"}
	assert.False(t, cfg.S3Enabled())

	cfg.S3SecretAccessKey = "s"
	assert.True(t, cfg.S3Enabled())
}
