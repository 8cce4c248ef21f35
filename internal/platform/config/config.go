package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	LogLevel       string
	MigrationsPath string

	// HTTP surface
	RateLimit          string   // ulule/limiter format, e.g. "120-M"
	CORSAllowedOrigins []string // Empty allows any origin outside production

	// Forecasting
	FuzzyMatchWindowDays      int
	MaxForecastLookbackMonths int

	// Daily spending shape refresh
	DailyAverageRefreshCron string
	EnableDailyAverageJob   bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("FUZZY_MATCH_WINDOW_DAYS", 7)
	viper.SetDefault("MAX_FORECAST_LOOKBACK_MONTHS", 600)
	viper.SetDefault("DAILY_AVERAGE_REFRESH_CRON", "0 3 * * *")
	viper.SetDefault("ENABLE_DAILY_AVERAGE_JOB", true)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.FuzzyMatchWindowDays = viper.GetInt("FUZZY_MATCH_WINDOW_DAYS")
	if cfg.FuzzyMatchWindowDays < 0 {
		return nil, fmt.Errorf("FUZZY_MATCH_WINDOW_DAYS must not be negative, got %d", cfg.FuzzyMatchWindowDays)
	}

	cfg.MaxForecastLookbackMonths = viper.GetInt("MAX_FORECAST_LOOKBACK_MONTHS")
	if cfg.MaxForecastLookbackMonths <= 0 {
		cfg.MaxForecastLookbackMonths = 600
		log.Printf("Warning: MAX_FORECAST_LOOKBACK_MONTHS must be positive. Defaulting to %d\n", cfg.MaxForecastLookbackMonths)
	}

	cfg.EnableDailyAverageJob = viper.GetBool("ENABLE_DAILY_AVERAGE_JOB")
	cfg.DailyAverageRefreshCron = viper.GetString("DAILY_AVERAGE_REFRESH_CRON")
	if cfg.EnableDailyAverageJob {
		if _, err := cron.ParseStandard(cfg.DailyAverageRefreshCron); err != nil {
			return nil, fmt.Errorf("invalid DAILY_AVERAGE_REFRESH_CRON %q: %w", cfg.DailyAverageRefreshCron, err)
		}
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
