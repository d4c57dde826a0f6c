package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development" validate:"oneof=development staging production"`
	JWTSecret string        `env:"JWT_SECRET" validate:"required,min=16"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=1h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	// DataDir enables the JSON snapshot files for the in-memory store.
	// Ignored when Mongo is configured.
	DataDir string `env:"DATA_DIR"`

	Mongo MongoConfig
	Redis RedisConfig
}

// MongoConfig selects the MongoDB backend. An empty URI means the service runs
// on the in-memory store.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=travel_api"`
}

// RedisConfig selects the optional catalog cache. An empty Addr disables it.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig and
// rejects unusable values before anything else starts. The JWT secret has no
// default: every deployment must provide its own.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid values: %w", err)
	}
	return &cfg, nil
}
