package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/weather_data.csv", cfg.DataSource)
	assert.Equal(t, 30.0, cfg.HotThreshold)
	assert.Equal(t, 15.0, cfg.ColdThreshold)
	assert.Equal(t, time.Duration(0), cfg.ReloadInterval)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 30*time.Second, cfg.LoadTimeout)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATA_SOURCE", "https://example.com/weather.csv")
	t.Setenv("HOT_THRESHOLD", "32")
	t.Setenv("COLD_THRESHOLD", "10.5")
	t.Setenv("RELOAD_INTERVAL", "15m")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("LOAD_TIMEOUT", "1m")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/weather.csv", cfg.DataSource)
	assert.Equal(t, 32.0, cfg.HotThreshold)
	assert.Equal(t, 10.5, cfg.ColdThreshold)
	assert.Equal(t, 15*time.Minute, cfg.ReloadInterval)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Minute, cfg.LoadTimeout)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value, expected string
	}{
		{"HOT_THRESHOLD", "hot", "HOT_THRESHOLD"},
		{"COLD_THRESHOLD", "cold", "COLD_THRESHOLD"},
		{"RELOAD_INTERVAL", "often", "RELOAD_INTERVAL"},
		{"RELOAD_INTERVAL", "-1m", "ReloadInterval"},
		{"HTTP_TIMEOUT", "0s", "HTTPTimeout"},
		{"LOAD_TIMEOUT", "soon", "LOAD_TIMEOUT"},
		{"PORT", "http", "Port"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}
