package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Availability AvailabilityConfig `toml:"availability"`
	Migrations   MigrationsConfig   `toml:"migrations"`
}

// ServerConfig HTTP сервер. Таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig подключение к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AvailabilityConfig параметры движка доступности
type AvailabilityConfig struct {
	SlotGranularityMinutes int `toml:"slot_granularity_minutes"`
	DefaultDurationMinutes int `toml:"default_duration_minutes"`
}

type MigrationsConfig struct {
	Enabled bool `toml:"enabled"`
}

// Переменные окружения, которые перекрывают значения из файла
const (
	envDBHost     = "DB_HOST"
	envDBPort     = "DB_PORT"
	envDBUser     = "DB_USER"
	envDBPassword = "DB_PASSWORD"
	envDBName     = "DB_NAME"
	envHTTPPort   = "HTTP_PORT"
	envLogLevel   = "LOG_LEVEL"
)

var ErrInvalidConfig = errors.New("invalid config")

// Load читает .env (если есть), затем TOML файл, затем переменные окружения.
// Незаданные значения заполняются значениями по умолчанию
func Load(path string) (*Config, error) {
	// .env необязателен: в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(envDBHost); ok {
		c.Database.Host = v
	}
	if v, ok := os.LookupEnv(envDBUser); ok {
		c.Database.User = v
	}
	if v, ok := os.LookupEnv(envDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(envDBName); ok {
		c.Database.DBName = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		c.Logs.Level = v
	}

	if v, ok := os.LookupEnv(envDBPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, envDBPort, v, err)
		}
		c.Database.Port = port
	}
	if v, ok := os.LookupEnv(envHTTPPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, envHTTPPort, v, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 10)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 15)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "availability-service"
	}

	setDefault(&c.Availability.SlotGranularityMinutes, 30)
	setDefault(&c.Availability.DefaultDurationMinutes, 60)
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

// Validate проверяет значения после применения окружения и значений по умолчанию
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("%w: database.port %d out of range", ErrInvalidConfig, c.Database.Port)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Availability.SlotGranularityMinutes <= 0 || 24*60%c.Availability.SlotGranularityMinutes != 0 {
		return fmt.Errorf("%w: availability.slot_granularity_minutes %d must divide a day",
			ErrInvalidConfig, c.Availability.SlotGranularityMinutes)
	}
	if c.Availability.DefaultDurationMinutes <= 0 {
		return fmt.Errorf("%w: availability.default_duration_minutes %d must be positive",
			ErrInvalidConfig, c.Availability.DefaultDurationMinutes)
	}
	return nil
}
