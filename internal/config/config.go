// Package config reads the process configuration from the environment.
//
// A .env file in the working directory is loaded by cmd/api through
// github.com/joho/godotenv/autoload before Load runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
	DriverS3       = "s3"
)

type Config struct {
	Port     string
	LogLevel string

	PersistenceDriver   string
	PersistenceKey      string
	SessionKey          string
	PersistenceDebounce time.Duration
	SeedOnStart         bool

	DataDir     string
	RedisAddr   string
	RedisDB     int
	SQLitePath  string
	PostgresDSN string
	KVTable     string
	S3Bucket    string
	S3Endpoint  string
	S3PathStyle bool

	AdminUsername string
	AdminPassword string

	PriceSyncEndpoint string
	PriceSyncMock     bool
	PriceSyncTimeout  time.Duration

	CORSAllowedOrigins []string
}

// Load builds a Config from environment variables, applying defaults for
// anything unset. It fails only on malformed values.
func Load() (Config, error) {
	cfg := Config{
		Port:               getenvDefault("PORT", "8080"),
		LogLevel:           getenvDefault("LOG_LEVEL", "info"),
		PersistenceDriver:  strings.ToLower(getenvDefault("PERSISTENCE_DRIVER", DriverFile)),
		PersistenceKey:     getenvDefault("PERSISTENCE_KEY", "moap_data"),
		SessionKey:         getenvDefault("SESSION_KEY", "moap_user"),
		DataDir:            getenvDefault("DATA_DIR", "data"),
		RedisAddr:          getenvDefault("REDIS_ADDR", "localhost:6379"),
		SQLitePath:         getenvDefault("SQLITE_PATH", "data/moap.db"),
		PostgresDSN:        getenvDefault("POSTGRES_DSN", "postgres://localhost/moap?sslmode=disable"),
		KVTable:            getenvDefault("KV_TABLE", "moap_state"),
		S3Bucket:           os.Getenv("S3_BUCKET"),
		S3Endpoint:         os.Getenv("S3_ENDPOINT"),
		AdminUsername:      getenvDefault("ADMIN_USERNAME", "admin"),
		AdminPassword:      getenvDefault("ADMIN_PASSWORD", "admin"),
		PriceSyncEndpoint:  os.Getenv("PRICE_SYNC_ENDPOINT"),
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	var err error
	if cfg.PersistenceDebounce, err = durationEnv("PERSISTENCE_DEBOUNCE", 250*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.PriceSyncTimeout, err = durationEnv("PRICE_SYNC_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	cfg.SeedOnStart = boolEnv("SEED_ON_START", true)
	cfg.S3PathStyle = boolEnv("S3_PATH_STYLE", cfg.S3Endpoint != "")
	cfg.PriceSyncMock = boolEnv("PRICE_SYNC_MOCK", cfg.PriceSyncEndpoint == "")

	switch cfg.PersistenceDriver {
	case DriverMemory, DriverFile, DriverRedis, DriverSQLite, DriverPostgres, DriverDynamoDB:
	case DriverS3:
		if cfg.S3Bucket == "" {
			return Config{}, fmt.Errorf("S3_BUCKET required for s3 driver")
		}
	default:
		return Config{}, fmt.Errorf("unknown PERSISTENCE_DRIVER %q", cfg.PersistenceDriver)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: negative duration", key)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// boolEnv accepts the same truthy spellings as the gateway mock switches.
func boolEnv(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def
	case "1", "true", "yes", "on", "mock":
		return true
	default:
		return false
	}
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
