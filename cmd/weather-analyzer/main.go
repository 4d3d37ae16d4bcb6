package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-data-analyzer/internal/api/http"
	"github.com/i474232898/weather-data-analyzer/internal/config"
	"github.com/i474232898/weather-data-analyzer/internal/observability"
	"github.com/i474232898/weather-data-analyzer/internal/scheduler"
	"github.com/i474232898/weather-data-analyzer/internal/store"
	"github.com/i474232898/weather-data-analyzer/internal/weather"
	"github.com/i474232898/weather-data-analyzer/internal/weather/sources"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	service := weather.NewService(
		store.NewMemoryStore(nil),
		sources.New(cfg.DataSource, httpClient),
		weather.Thresholds{Hot: cfg.HotThreshold, Cold: cfg.ColdThreshold},
		observability.NewMetrics(),
	)

	// A dataset that cannot be loaded at startup is fatal.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.LoadTimeout)
	_, err = service.Reload(loadCtx)
	cancelLoad()
	if err != nil {
		log.Fatalf("failed to load weather data: %v", err)
	}

	sched := scheduler.New(cfg.ReloadInterval, cfg.LoadTimeout, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-data-analyzer",
		DisableStartupMessage: true,
		Immutable:             true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	app.Use(logger.New())
	app.Use(recover.New())

	httpapi.RegisterRoutes(app, service)

	go func() {
		log.Printf("INFO: listening on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
