package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
	"github.com/m04kA/SMC-BayBooking/internal/service/pricing"
)

// EnvPrefix префикс переменных окружения, переопределяющих значения из файла.
// Имена полей разбиваются по словам: SlotService.URL -> BAYS_SLOT_SERVICE_URL
// Например BAYS_DATABASE_PASSWORD или BAYS_STORAGE_BACKEND
const EnvPrefix = "BAYS"

// Backend хранилища корзин
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig   `toml:"server" split_words:"true"`
	Logs           LogsConfig     `toml:"logs" split_words:"true"`
	Metrics        MetricsConfig  `toml:"metrics" split_words:"true"`
	Storage        StorageConfig  `toml:"storage" split_words:"true"`
	Database       DatabaseConfig `toml:"database" split_words:"true"`
	Redis          RedisConfig    `toml:"redis" split_words:"true"`
	SlotService    ServiceConfig  `toml:"slot_service" split_words:"true"`
	ProfileService ServiceConfig  `toml:"profile_service" split_words:"true"`
	Sessions       SessionsConfig `toml:"sessions" split_words:"true"`
	Pricing        PricingConfig  `toml:"pricing" split_words:"true"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`     // секунды
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`    // секунды
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level" split_words:"true"`
	File  string `toml:"file" split_words:"true"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

type StorageConfig struct {
	Backend string `toml:"backend" split_words:"true"`
	FileDir string `toml:"file_dir" split_words:"true"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr" split_words:"true"`
	Password string `toml:"password" split_words:"true"`
	DB       int    `toml:"db" split_words:"true"`
	TTLHours int    `toml:"ttl_hours" split_words:"true"` // 0 - без срока жизни
}

// ServiceConfig настройки внешнего HTTP сервиса
type ServiceConfig struct {
	URL     string `toml:"url" split_words:"true"`
	Timeout int    `toml:"timeout" split_words:"true"` // секунды
}

type SessionsConfig struct {
	Timezone          string `toml:"timezone" split_words:"true"`
	ChangeoverMinutes int    `toml:"changeover_minutes" split_words:"true"`
	MaxSessionLength  int    `toml:"max_session_length" split_words:"true"`
}

type PricingConfig struct {
	PeakRate                string         `toml:"peak_rate" split_words:"true"`
	OffPeakRate             string         `toml:"off_peak_rate" split_words:"true"`
	PeakStartHour           int            `toml:"peak_start_hour" split_words:"true"`
	VATRate                 string         `toml:"vat_rate" split_words:"true"`
	Discounts               map[string]int `toml:"discounts" split_words:"true"`
	ChronologicalAllocation bool           `toml:"chronological_allocation" split_words:"true"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и переопределения из окружения, затем проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	discounts := make(map[string]int, len(domain.DefaultDiscounts))
	for tier, percent := range domain.DefaultDiscounts {
		discounts[string(tier)] = percent
	}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-baybooking",
		},
		Storage: StorageConfig{
			Backend: BackendMemory,
			FileDir: "data/baskets",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			TTLHours: 72,
		},
		SlotService: ServiceConfig{
			Timeout: 5,
		},
		ProfileService: ServiceConfig{
			Timeout: 3,
		},
		Sessions: SessionsConfig{
			Timezone:          domain.DefaultZone,
			ChangeoverMinutes: int(domain.DefaultChangeover / time.Minute),
			MaxSessionLength:  domain.MaxSessionLength,
		},
		Pricing: PricingConfig{
			PeakRate:      domain.DefaultPeakRate,
			OffPeakRate:   domain.DefaultOffPeakRate,
			PeakStartHour: domain.DefaultPeakStartHour,
			VATRate:       domain.DefaultVATRate,
			Discounts:     discounts,
		},
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port out of range: %d", c.Server.HTTPPort))
	}

	switch c.Storage.Backend {
	case BackendMemory, BackendRedis, BackendPostgres:
	case BackendFile:
		if c.Storage.FileDir == "" {
			problems = append(problems, "storage.file_dir is required for the file backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("storage.backend unknown: %q", c.Storage.Backend))
	}

	if c.SlotService.URL == "" {
		problems = append(problems, "slot_service.url is required")
	}
	if c.ProfileService.URL == "" {
		problems = append(problems, "profile_service.url is required")
	}

	if _, err := time.LoadLocation(c.Sessions.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("sessions.timezone: %v", err))
	}
	if c.Sessions.ChangeoverMinutes < 0 {
		problems = append(problems, "sessions.changeover_minutes must not be negative")
	}
	if c.Sessions.MaxSessionLength < 1 {
		problems = append(problems, "sessions.max_session_length must be at least 1")
	}

	if _, err := c.Pricing.Rates(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Location возвращает часовой пояс площадки
func (c SessionsConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Changeover возвращает перерыв между слотами
func (c SessionsConfig) Changeover() time.Duration {
	return time.Duration(c.ChangeoverMinutes) * time.Minute
}

// Rates преобразует настройки цен в тарифы движка расчёта
func (c PricingConfig) Rates() (pricing.Rates, error) {
	peak, err := decimal.NewFromString(c.PeakRate)
	if err != nil {
		return pricing.Rates{}, fmt.Errorf("pricing.peak_rate: %v", err)
	}
	offPeak, err := decimal.NewFromString(c.OffPeakRate)
	if err != nil {
		return pricing.Rates{}, fmt.Errorf("pricing.off_peak_rate: %v", err)
	}
	vat, err := decimal.NewFromString(c.VATRate)
	if err != nil {
		return pricing.Rates{}, fmt.Errorf("pricing.vat_rate: %v", err)
	}

	if !peak.GreaterThan(offPeak) {
		return pricing.Rates{}, fmt.Errorf("pricing.peak_rate (%s) must be greater than off_peak_rate (%s)", peak, offPeak)
	}
	if offPeak.IsNegative() || vat.IsNegative() {
		return pricing.Rates{}, errors.New("pricing rates must not be negative")
	}
	if c.PeakStartHour < 0 || c.PeakStartHour > 23 {
		return pricing.Rates{}, fmt.Errorf("pricing.peak_start_hour out of range: %d", c.PeakStartHour)
	}

	discounts := make(map[domain.MembershipTier]int, len(c.Discounts))
	for tier, percent := range c.Discounts {
		if percent < 0 || percent > 100 {
			return pricing.Rates{}, fmt.Errorf("pricing.discounts.%s out of range: %d", tier, percent)
		}
		discounts[domain.MembershipTier(strings.ToUpper(tier))] = percent
	}

	return pricing.Rates{
		PeakRate:                peak,
		OffPeakRate:             offPeak,
		PeakStartHour:           c.PeakStartHour,
		VATRate:                 vat,
		Discounts:               discounts,
		ChronologicalAllocation: c.ChronologicalAllocation,
	}, nil
}
