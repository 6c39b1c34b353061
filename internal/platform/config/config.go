package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata" // STATS_TIMEZONE must resolve on minimal container images

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	MigrationsPath    string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	FrontendBaseURL   string

	// Analytics; an empty key disables posthog.
	PosthogAPIKey   string
	PosthogEndpoint string

	// AuthRateLimit is parsed from the ulule/limiter format, e.g. "20-M" for 20 requests per minute.
	AuthRateLimit limiter.Rate

	// Stats engine and cache.
	StatsLocation  *time.Location
	StatsCacheSize int
	StatsCacheTTL  time.Duration
	PositiveMoods  []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return loadFrom(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("JWT_ISSUER", "parenting-journal-app")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("AUTH_RATE_LIMIT", "20-M")
	v.SetDefault("STATS_TIMEZONE", "UTC")
	v.SetDefault("STATS_CACHE_SIZE", 1024)
	v.SetDefault("STATS_CACHE_TTL", "5m")
	v.SetDefault("POSITIVE_MOODS", "")
}

func loadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		FrontendBaseURL: v.GetString("FRONTEND_BASE_URL"),
		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint: v.GetString("POSTHOG_ENDPOINT"),
		StatsCacheSize:  v.GetInt("STATS_CACHE_SIZE"),
		PositiveMoods:   splitList(v.GetString("POSITIVE_MOODS")),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	var err error
	if cfg.JWTExpiryDuration, err = parseDuration(v, "JWT_EXPIRY_DURATION"); err != nil {
		return nil, err
	}
	if cfg.StatsCacheTTL, err = parseDuration(v, "STATS_CACHE_TTL"); err != nil {
		return nil, err
	}
	if cfg.StatsCacheSize <= 0 {
		return nil, fmt.Errorf("STATS_CACHE_SIZE must be positive, got %d", cfg.StatsCacheSize)
	}

	rawRate := v.GetString("AUTH_RATE_LIMIT")
	if cfg.AuthRateLimit, err = limiter.NewRateFromFormatted(rawRate); err != nil {
		return nil, fmt.Errorf("invalid AUTH_RATE_LIMIT %q: %w", rawRate, err)
	}

	tz := v.GetString("STATS_TIMEZONE")
	if cfg.StatsLocation, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("invalid STATS_TIMEZONE %q: %w", tz, err)
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return d, nil
}

// splitList parses a comma separated list, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
