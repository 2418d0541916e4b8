package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

// ErrInvalidConfig возвращается, если значение в конфигурации недопустимо
var ErrInvalidConfig = errors.New("config: invalid value")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Auth         AuthConfig         `toml:"auth"`
	Session      SessionConfig      `toml:"session"`
	Redis        RedisConfig        `toml:"redis"`
	RabbitMQ     RabbitMQConfig     `toml:"rabbitmq"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
	Availability AvailabilityConfig `toml:"availability"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто = только stdout
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки проверки JWT от провайдера аутентификации
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"` // пусто = не проверяется
}

// SessionConfig настройки хранилища сессий выбора дат
type SessionConfig struct {
	Store string `toml:"store"` // memory | redis
	TTL   int    `toml:"ttl"`   // секунды
}

// TTLDuration время жизни сессии
func (c SessionConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// RedisConfig настройки Redis
type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// RabbitMQConfig настройки публикации событий
type RabbitMQConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

// RateLimitConfig ограничение частоты кликов по календарю с одного IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	// CIDR или адреса балансировщиков, от которых принимается X-Forwarded-For.
	// Пусто = заголовок игнорируется, лимит по адресу соединения.
	TrustedProxies []string `toml:"trusted_proxies"`
}

// AvailabilityConfig настройки календаря доступности
type AvailabilityConfig struct {
	CheckoutDayBlocked *bool `toml:"checkout_day_blocked"` // nil = по умолчанию занят
	CalendarDays       int   `toml:"calendar_days"`
}

// CheckoutPolicy политика дня выезда
func (c AvailabilityConfig) CheckoutPolicy() domain.CheckoutPolicy {
	if c.CheckoutDayBlocked == nil || *c.CheckoutDayBlocked {
		return domain.CheckoutDayBlocked
	}
	return domain.CheckoutDayFree
}

// Load читает конфигурацию из TOML файла, подгружает .env и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	// .env опционален: в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "hotel_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "hotel_booking_service",
		},
		Session: SessionConfig{
			Store: "memory",
			TTL:   1800,
		},
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			KeyPrefix: "selection:",
		},
		RabbitMQ: RabbitMQConfig{
			Exchange: "hotel.bookings",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 5,
			Burst:             10,
		},
		Availability: AvailabilityConfig{
			CalendarDays: domain.DefaultCalendarDays,
		},
	}
}

// applyEnv переопределяет секреты значениями из окружения
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		c.RabbitMQ.URL = v
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is empty", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is empty", ErrInvalidConfig)
	}

	switch strings.ToLower(c.Logs.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logs.level=%q", ErrInvalidConfig, c.Logs.Level)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path=%q must start with /", ErrInvalidConfig, c.Metrics.Path)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is empty (set JWT_SECRET)", ErrInvalidConfig)
	}

	switch c.Session.Store {
	case "memory":
	case "redis":
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is empty", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: session.store=%q", ErrInvalidConfig, c.Session.Store)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("%w: session.ttl=%d", ErrInvalidConfig, c.Session.TTL)
	}

	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		return fmt.Errorf("%w: rabbitmq.url is empty (set RABBITMQ_URL)", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}
	for _, proxy := range c.RateLimit.TrustedProxies {
		if net.ParseIP(proxy) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil {
			return fmt.Errorf("%w: rate_limit.trusted_proxies contains %q", ErrInvalidConfig, proxy)
		}
	}

	if c.Availability.CalendarDays <= 0 || c.Availability.CalendarDays > domain.MaxCalendarDays {
		return fmt.Errorf("%w: availability.calendar_days=%d", ErrInvalidConfig, c.Availability.CalendarDays)
	}

	return nil
}
