package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

// Stats backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMySQL  = "mysql"
)

var (
	ErrDevSecretInProduction = errors.New("JWT_SECRET must be set in production when ADMIN_PASSWORD_HASH is set")
	ErrInvalidLengthBounds   = errors.New("length bounds must satisfy 1 <= MIN_LENGTH <= DEFAULT_LENGTH <= MAX_LENGTH")
	ErrUnknownStatsBackend   = errors.New("STATS_BACKEND must be one of memory, redis, mysql")
)

type Config struct {
	Port string
	Env  string

	MinLength     int
	MaxLength     int
	DefaultLength int
	LegacyPatch   bool

	StatsBackend string
	RedisURL     string
	DatabaseDSN  string

	JWTSecret         string
	JWTExpiry         time.Duration
	AdminPasswordHash string

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		MinLength:         getEnvInt("MIN_LENGTH", 4),
		MaxLength:         getEnvInt("MAX_LENGTH", 32),
		DefaultLength:     getEnvInt("DEFAULT_LENGTH", 12),
		LegacyPatch:       getEnvBool("LEGACY_PATCH", false),
		StatsBackend:      getEnv("STATS_BACKEND", BackendMemory),
		RedisURL:          getEnv("REDIS_URL", "redis://127.0.0.1:6379/0"),
		DatabaseDSN:       getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passgen?parseTime=true"),
		JWTSecret:         getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:         getEnvDuration("JWT_EXPIRY", time.Hour),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		RateLimitRPS:      getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 10),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if c.MinLength < 1 || c.MinLength > c.DefaultLength || c.DefaultLength > c.MaxLength {
		return fmt.Errorf("%w: got %d/%d/%d", ErrInvalidLengthBounds, c.MinLength, c.DefaultLength, c.MaxLength)
	}

	switch c.StatsBackend {
	case BackendMemory, BackendRedis, BackendMySQL:
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownStatsBackend, c.StatsBackend)
	}

	if c.IsProduction() && c.AdminEnabled() && c.JWTSecret == devJWTSecret {
		return ErrDevSecretInProduction
	}
	return nil
}

// IsProduction reports whether ENV is production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// AdminEnabled reports whether an admin password hash is configured.
func (c Config) AdminEnabled() bool {
	return c.AdminPasswordHash != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}
