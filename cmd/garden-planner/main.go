package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/garden-planner/internal/api/http"
	"github.com/i474232898/garden-planner/internal/config"
	"github.com/i474232898/garden-planner/internal/fetch"
	"github.com/i474232898/garden-planner/internal/planting"
	"github.com/i474232898/garden-planner/internal/scheduler"
	"github.com/i474232898/garden-planner/internal/store"
	"github.com/i474232898/garden-planner/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	calendar := planting.NewCalendar(fetch.NewHTTPFetcher("almanac", httpClient), cfg.AlmanacBaseURL)
	forecasts := weather.NewClient(fetch.NewHTTPFetcher("weatherapi", httpClient), cfg.WeatherAPIKey, cfg.WeatherBaseURL, cfg.ForecastDays)
	gardenLog := store.NewFileStore(cfg.GardenFile)

	// Watering advice for watched zip codes.
	sched := scheduler.New(cfg.WatchZipcodes, cfg.AdviceInterval, forecasts)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "garden-planner",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "garden-planner",
		})
	})

	httpapi.RegisterRoutes(app, httpapi.Deps{
		Planting: calendar,
		Weather:  forecasts,
		Garden:   gardenLog,
	})

	go func() {
		log.Printf("garden-planner listening on :%s (garden log %s)", cfg.Port, gardenLog.Path())
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
