package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string
	// Timezone used to resolve "today" for the selected date
	TimeZone string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Cache validity windows
	ProductCacheTTL time.Duration
	GoalCacheTTL    time.Duration

	// Upper bound (exclusive) for a single logged quantity
	MaxLogQuantity float64

	// Goals used until the user saves their own
	DefaultCalories float64
	DefaultProtein  float64
	DefaultCarbs    float64
	DefaultFat      float64

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:  envString("APP_NAME", "FitStack Macro Tracker"),
		AppEnv:   envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:     envString("PORT", "8090"),
		TimeZone: envString("TZ_NAME", "UTC"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/macros.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Cache
		ProductCacheTTL: envDuration("PRODUCT_CACHE_TTL", 5*time.Minute), // products rarely change
		GoalCacheTTL:    envDuration("GOAL_CACHE_TTL", 1*time.Minute),

		MaxLogQuantity: envFloat("MAX_LOG_QUANTITY", 10000),

		// Goals
		DefaultCalories: envFloat("DEFAULT_GOAL_CALORIES", 2500),
		DefaultProtein:  envFloat("DEFAULT_GOAL_PROTEIN", 150),
		DefaultCarbs:    envFloat("DEFAULT_GOAL_CARBS", 250),
		DefaultFat:      envFloat("DEFAULT_GOAL_FAT", 80),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures the hosted database is configured explicitly.
// Development falls back to a local sqlite file.
func validateProduction(cfg *Config) {
	if os.Getenv("DB_CONNECTION") == "" {
		slog.Error("production deployment requires DB_CONNECTION",
			"hint", "set APP_ENV=development to use the local sqlite file")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("config invalid number, using default", "key", key, "value", v, "default", def)
		return def
	}
	return f
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Location returns the configured timezone, falling back to UTC when the
// name is unknown to the host's tz database.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		slog.Warn("config invalid timezone, using UTC", "key", "TZ_NAME", "value", c.TimeZone)
		return time.UTC
	}
	return loc
}

// Sanitized returns a copy of the config without connection strings or DSNs.
// Safe to expose through the API and request context.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:         c.AppName,
		AppEnv:          c.AppEnv,
		Port:            c.Port,
		TimeZone:        c.TimeZone,
		DBDriver:        c.DBDriver,
		ProductCacheTTL: c.ProductCacheTTL,
		GoalCacheTTL:    c.GoalCacheTTL,
		MaxLogQuantity:  c.MaxLogQuantity,
		DefaultCalories: c.DefaultCalories,
		DefaultProtein:  c.DefaultProtein,
		DefaultCarbs:    c.DefaultCarbs,
		DefaultFat:      c.DefaultFat,
	}
}
