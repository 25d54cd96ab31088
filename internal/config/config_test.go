package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

const sampleConfig = `
[server]
http_port = 9090

[logs]
level = "debug"

[storage]
backend = "file"
file_dir = "/tmp/baskets"

[slot_service]
url = "http://slots:8081"
timeout = 2

[profile_service]
url = "http://profiles:8082"

[sessions]
timezone = "UTC"
changeover_minutes = 5
max_session_length = 3

[pricing]
peak_rate = "50.00"
off_peak_rate = "30.00"
peak_start_hour = 18
vat_rate = "0.20"
chronological_allocation = true

[pricing.discounts]
PAR = 5
BIRDIE = 10
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout, "defaults must survive partial files")
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "http://slots:8081", cfg.SlotService.URL)
	assert.Equal(t, 3, cfg.Sessions.MaxSessionLength)
	assert.Equal(t, 5*time.Minute, cfg.Sessions.Changeover())
	assert.Equal(t, time.UTC, cfg.Sessions.Location())

	rates, err := cfg.Pricing.Rates()
	require.NoError(t, err)
	assert.Equal(t, "50", rates.PeakRate.String())
	assert.Equal(t, 18, rates.PeakStartHour)
	assert.True(t, rates.ChronologicalAllocation)
	assert.Equal(t, 5, rates.Discounts[domain.TierPar])
	assert.Equal(t, 10, rates.Discounts[domain.TierBirdie])
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BAYS_STORAGE_BACKEND", "redis")
	t.Setenv("BAYS_REDIS_ADDR", "cache:6380")
	t.Setenv("BAYS_DATABASE_PASSWORD", "secret")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Contains(t, cfg.Database.DSN(), "password=secret")
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoad_MissingFileUsesDefaultsAndEnv(t *testing.T) {
	t.Setenv("BAYS_SLOT_SERVICE_URL", "http://slots")
	t.Setenv("BAYS_PROFILE_SERVICE_URL", "http://profiles")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, domain.DefaultZone, cfg.Sessions.Timezone)
	assert.Equal(t, "http://slots", cfg.SlotService.URL)
}

func TestLoad_InvalidFile(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.SlotService.URL = "http://slots"
		cfg.ProfileService.URL = "http://profiles"
		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{name: "unknown backend", mutate: func(cfg *Config) { cfg.Storage.Backend = "mongo" }},
		{name: "file backend without dir", mutate: func(cfg *Config) {
			cfg.Storage.Backend = BackendFile
			cfg.Storage.FileDir = ""
		}},
		{name: "missing slot service", mutate: func(cfg *Config) { cfg.SlotService.URL = "" }},
		{name: "bad timezone", mutate: func(cfg *Config) { cfg.Sessions.Timezone = "Mars/Olympus" }},
		{name: "zero max length", mutate: func(cfg *Config) { cfg.Sessions.MaxSessionLength = 0 }},
		{name: "peak not above off-peak", mutate: func(cfg *Config) { cfg.Pricing.PeakRate = "30.00" }},
		{name: "bad rate", mutate: func(cfg *Config) { cfg.Pricing.VATRate = "twenty" }},
		{name: "discount over 100", mutate: func(cfg *Config) { cfg.Pricing.Discounts["PAR"] = 150 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
