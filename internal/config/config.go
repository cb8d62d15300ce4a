package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig      `toml:"server"`
	Logs            LogsConfig        `toml:"logs"`
	Metrics         MetricsConfig     `toml:"metrics"`
	ScheduleService IntegrationConfig `toml:"schedule_service"`
	Calendar        CalendarConfig    `toml:"calendar"`
}

// ServerConfig конфигурация HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig конфигурация логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig конфигурация prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig конфигурация клиента внешнего сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// CalendarConfig конфигурация календарного движка
// ReferenceTimezone - единая референсная таймзона для всех сравнений "сегодня/прошлое".
// Она фиксирована конфигурацией и никогда не выводится из локальных часов клиента
type CalendarConfig struct {
	ReferenceTimezone string `toml:"reference_timezone"`
	WeekStart         string `toml:"week_start"` // sunday | monday | ...
}

// Load загружает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "smc-calendar-service"
	}
	if cfg.ScheduleService.Timeout == 0 {
		cfg.ScheduleService.Timeout = 10
	}
	if cfg.Calendar.ReferenceTimezone == "" {
		cfg.Calendar.ReferenceTimezone = "UTC"
	}
	if cfg.Calendar.WeekStart == "" {
		cfg.Calendar.WeekStart = "sunday"
	}
}

func validate(cfg *Config) error {
	if cfg.ScheduleService.URL == "" {
		return fmt.Errorf("schedule_service.url is required")
	}
	return nil
}
