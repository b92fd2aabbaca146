package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// State store backends.
const (
	StateStoreMemory   = "memory"
	StateStoreRedis    = "redis"
	StateStorePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string `validate:"required,numeric"`
	IsProduction bool
	JWTSecret    string `validate:"required"`

	// Remote remittance backend
	BackendBaseURL string `validate:"required,url"`
	BackendAPIKey  string
	// BackendTimeout of zero keeps the HTTP client default (no timeout).
	BackendTimeout time.Duration `validate:"gte=0"`

	// Shared client state
	StateStore     string        `validate:"oneof=memory redis postgres"`
	StateTTL       time.Duration `validate:"gte=0"`
	RedisAddr      string        `validate:"required_if=StateStore redis"`
	RedisPassword  string
	RedisDB        int    `validate:"gte=0"`
	DatabaseURL    string `validate:"required_if=StateStore postgres"`
	MigrationsPath string

	RateLimit       string `validate:"required"`
	RatesCacheTTL   time.Duration
	FrontendBaseURL string `validate:"required,url"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("BACKEND_BASE_URL", "http://localhost:8081")
	v.SetDefault("BACKEND_API_KEY", "")
	v.SetDefault("BACKEND_TIMEOUT", "0s")
	v.SetDefault("STATE_STORE", StateStoreMemory)
	v.SetDefault("STATE_TTL", "30m")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("RATES_CACHE_TTL", "1m")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		BackendBaseURL:  strings.TrimRight(v.GetString("BACKEND_BASE_URL"), "/"),
		BackendAPIKey:   v.GetString("BACKEND_API_KEY"),
		StateStore:      strings.ToLower(v.GetString("STATE_STORE")),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		FrontendBaseURL: v.GetString("FRONTEND_BASE_URL"),
	}

	var err error
	if cfg.BackendTimeout, err = parseDuration(v, "BACKEND_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.StateTTL, err = parseDuration(v, "STATE_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RatesCacheTTL, err = parseDuration(v, "RATES_CACHE_TTL", time.Minute); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}
