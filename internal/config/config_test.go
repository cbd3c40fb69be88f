package config

import (
	"testing"
	"time"

	"github.com/i474232898/garden-planner/internal/planting"
	"github.com/i474232898/garden-planner/internal/weather"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "WEATHERAPI_API_KEY", "WEATHERAPI_BASE_URL", "FORECAST_DAYS", "ALMANAC_BASE_URL",
		"GARDEN_FILE", "HTTP_TIMEOUT", "CORS_ALLOW_ORIGINS", "WATCH_ZIPCODES", "ADVICE_INTERVAL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("expected port 5000, got %q", cfg.Port)
	}
	if cfg.WeatherBaseURL != weather.DefaultBaseURL || cfg.ForecastDays != 7 {
		t.Errorf("unexpected weather defaults: %q %d", cfg.WeatherBaseURL, cfg.ForecastDays)
	}
	if cfg.AlmanacBaseURL != planting.DefaultBaseURL {
		t.Errorf("unexpected almanac url %q", cfg.AlmanacBaseURL)
	}
	if cfg.GardenFile != "garden_data.json" {
		t.Errorf("unexpected garden file %q", cfg.GardenFile)
	}
	if cfg.HTTPTimeout != 30*time.Second || cfg.AdviceInterval != 6*time.Hour {
		t.Errorf("unexpected durations: %v %v", cfg.HTTPTimeout, cfg.AdviceInterval)
	}
	if len(cfg.WatchZipcodes) != 0 {
		t.Errorf("expected no watched zip codes, got %v", cfg.WatchZipcodes)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("WEATHERAPI_API_KEY", "abc")
	t.Setenv("FORECAST_DAYS", "3")
	t.Setenv("GARDEN_FILE", "/tmp/garden.json")
	t.Setenv("HTTP_TIMEOUT", "0")
	t.Setenv("WATCH_ZIPCODES", "10001, 94110,,")
	t.Setenv("ADVICE_INTERVAL", "90m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.WeatherAPIKey != "abc" || cfg.ForecastDays != 3 || cfg.GardenFile != "/tmp/garden.json" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.HTTPTimeout != 0 || cfg.AdviceInterval != 90*time.Minute {
		t.Fatalf("unexpected durations: %v %v", cfg.HTTPTimeout, cfg.AdviceInterval)
	}
	if len(cfg.WatchZipcodes) != 2 || cfg.WatchZipcodes[0] != "10001" || cfg.WatchZipcodes[1] != "94110" {
		t.Fatalf("unexpected zip codes %v", cfg.WatchZipcodes)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := map[string]string{
		"HTTP_TIMEOUT":    "soon",
		"ADVICE_INTERVAL": "-1h",
		"FORECAST_DAYS":   "seven",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, val)
			}
		})
	}
}
