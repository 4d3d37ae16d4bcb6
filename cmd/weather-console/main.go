package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/i474232898/weather-data-analyzer/internal/config"
	"github.com/i474232898/weather-data-analyzer/internal/console"
	"github.com/i474232898/weather-data-analyzer/internal/observability"
	"github.com/i474232898/weather-data-analyzer/internal/store"
	"github.com/i474232898/weather-data-analyzer/internal/weather"
	"github.com/i474232898/weather-data-analyzer/internal/weather/sources"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	service := weather.NewService(
		store.NewMemoryStore(nil),
		sources.New(cfg.DataSource, &http.Client{Timeout: cfg.HTTPTimeout}),
		weather.Thresholds{Hot: cfg.HotThreshold, Cold: cfg.ColdThreshold},
		observability.NewMetrics(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loadCtx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	_, err = service.Reload(loadCtx)
	cancel()
	if err != nil {
		log.Fatalf("failed to load weather data: %v", err)
	}

	if err := console.Run(ctx, os.Stdin, os.Stdout, service); err != nil && ctx.Err() == nil {
		log.Fatalf("console: %v", err)
	}
}
