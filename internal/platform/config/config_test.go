package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 7, cfg.FuzzyMatchWindowDays)
	assert.Equal(t, 600, cfg.MaxForecastLookbackMonths)
	assert.Equal(t, "120-M", cfg.RateLimit)
	assert.Equal(t, "0 3 * * *", cfg.DailyAverageRefreshCron)
	assert.True(t, cfg.EnableDailyAverageJob)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FUZZY_MATCH_WINDOW_DAYS", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3, cfg.FuzzyMatchWindowDays)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_RejectsBadCron(t *testing.T) {
	t.Setenv("DAILY_AVERAGE_REFRESH_CRON", "every day")
	t.Setenv("ENABLE_DAILY_AVERAGE_JOB", "true")

	_, err := LoadConfig()
	assert.Error(t, err)
}
