package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/garden-planner/internal/common"
	"github.com/i474232898/garden-planner/internal/planting"
	"github.com/i474232898/garden-planner/internal/weather"
)

type AppConfig struct {
	Port string

	// WeatherAPIKey is required for forecasts; requests fail while it is empty.
	WeatherAPIKey  string
	WeatherBaseURL string
	ForecastDays   int

	AlmanacBaseURL string

	// GardenFile holds the garden log as a JSON array.
	GardenFile string

	// HTTPTimeout bounds outbound calls (0 = no client timeout).
	HTTPTimeout time.Duration

	CORSAllowOrigins string

	// Zip codes checked by the watering advisory job.
	WatchZipcodes  []string
	AdviceInterval time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "5000")

	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")
	if cfg.WeatherAPIKey == "" {
		log.Printf("WARN: WEATHERAPI_API_KEY is not set; weather requests will fail")
	}
	cfg.WeatherBaseURL = getenvDefault("WEATHERAPI_BASE_URL", weather.DefaultBaseURL)

	days, err := getenvInt("FORECAST_DAYS", weather.DefaultDays)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		return nil, fmt.Errorf("invalid FORECAST_DAYS: must be positive, got %d", days)
	}
	cfg.ForecastDays = days

	cfg.AlmanacBaseURL = getenvDefault("ALMANAC_BASE_URL", planting.DefaultBaseURL)
	cfg.GardenFile = getenvDefault("GARDEN_FILE", "garden_data.json")

	timeout, err := getenvDuration("HTTP_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	cfg.CORSAllowOrigins = getenvDefault("CORS_ALLOW_ORIGINS", "*")

	cfg.WatchZipcodes = common.SplitList(os.Getenv("WATCH_ZIPCODES"))
	interval, err := getenvDuration("ADVICE_INTERVAL", "6h")
	if err != nil {
		return nil, err
	}
	cfg.AdviceInterval = interval

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: negative duration", key)
	}
	return d, nil
}
