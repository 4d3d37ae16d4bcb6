package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type AppConfig struct {
	// DataSource is a CSV file path or an http(s) URL.
	DataSource string `validate:"required"`

	// Thresholds for the hot-days and cold-days queries.
	HotThreshold  float64
	ColdThreshold float64

	// ReloadInterval controls how often the dataset is re-read (0 = never).
	ReloadInterval time.Duration `validate:"gte=0"`

	HTTPTimeout time.Duration `validate:"gt=0"`
	LoadTimeout time.Duration `validate:"gt=0"`

	Port string `validate:"required,numeric"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.DataSource = getenvDefault("DATA_SOURCE", "data/weather_data.csv")

	var err error
	if cfg.HotThreshold, err = getenvFloat("HOT_THRESHOLD", 30.0); err != nil {
		return nil, err
	}
	if cfg.ColdThreshold, err = getenvFloat("COLD_THRESHOLD", 15.0); err != nil {
		return nil, err
	}
	if cfg.ReloadInterval, err = getenvDuration("RELOAD_INTERVAL", "0s"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.LoadTimeout, err = getenvDuration("LOAD_TIMEOUT", "30s"); err != nil {
		return nil, err
	}
	cfg.Port = getenvDefault("PORT", "8080")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
