package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
)

// Политики поведения при отсутствии свободных столов
const (
	PolicyPending = "pending" // создать бронь в ожидании без стола
	PolicyReject  = "reject"  // отклонить запрос сразу
)

// Режимы доставки уведомлений
const (
	NotifyModeLog  = "log"
	NotifyModeAMQP = "amqp"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Auth          AuthConfig          `toml:"auth"`
	Booking       BookingConfig       `toml:"booking"`
	RateLimit     RateLimitConfig     `toml:"ratelimit"`
	Cache         CacheConfig         `toml:"cache"`
	Notifications NotificationsConfig `toml:"notifications"`
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
	Migrate         bool   `toml:"migrate"`           // применять миграции при старте
}

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AuthConfig общий секрет административных операций
type AuthConfig struct {
	AdminToken string `toml:"admin_token"`
}

// BookingConfig параметры планирования броней
type BookingConfig struct {
	DurationMinutes  int    `toml:"duration_minutes"`
	OnNoAvailability string `toml:"on_no_availability"` // pending | reject
}

// RateLimitConfig ограничение частоты публичных запросов (per-IP)
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// CacheConfig кэширование ответа списка столов
type CacheConfig struct {
	Enabled   bool `toml:"enabled"`
	TablesTTL int  `toml:"tables_ttl"` // секунды
}

// NotificationsConfig настройки доставки уведомлений
type NotificationsConfig struct {
	Enabled   bool       `toml:"enabled"`
	Mode      string     `toml:"mode"` // log | amqp
	Workers   int        `toml:"workers"`
	QueueSize int        `toml:"queue_size"`
	AMQP      AMQPConfig `toml:"amqp"`
}

// AMQPConfig параметры подключения к RabbitMQ
type AMQPConfig struct {
	URL   string `toml:"url"`
	Queue string `toml:"queue"`
}

// Load читает конфигурацию из файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 25
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "ctrs-reservation-service"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Booking.DurationMinutes == 0 {
		c.Booking.DurationMinutes = domain.DefaultReservationDurationMinutes
	}
	if c.Booking.OnNoAvailability == "" {
		c.Booking.OnNoAvailability = PolicyPending
	}

	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 5
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 10
	}

	if c.Cache.TablesTTL == 0 {
		c.Cache.TablesTTL = 60
	}

	if c.Notifications.Mode == "" {
		c.Notifications.Mode = NotifyModeLog
	}
	if c.Notifications.Workers == 0 {
		c.Notifications.Workers = 2
	}
	if c.Notifications.QueueSize == 0 {
		c.Notifications.QueueSize = 64
	}
	if c.Notifications.AMQP.Queue == "" {
		c.Notifications.AMQP.Queue = "reservation.events"
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if c.Database.User == "" {
		return fmt.Errorf("%w: database.user is required", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}

	if c.Auth.AdminToken == "" {
		return fmt.Errorf("%w: auth.admin_token is required", ErrInvalidConfig)
	}

	if c.Booking.DurationMinutes < domain.MinReservationDurationMinutes ||
		c.Booking.DurationMinutes > domain.MaxReservationDurationMinutes {
		return fmt.Errorf("%w: booking.duration_minutes out of range: %d", ErrInvalidConfig, c.Booking.DurationMinutes)
	}

	if c.Booking.OnNoAvailability != PolicyPending && c.Booking.OnNoAvailability != PolicyReject {
		return fmt.Errorf("%w: booking.on_no_availability must be %q or %q, got %q",
			ErrInvalidConfig, PolicyPending, PolicyReject, c.Booking.OnNoAvailability)
	}

	if c.Notifications.Mode != NotifyModeLog && c.Notifications.Mode != NotifyModeAMQP {
		return fmt.Errorf("%w: notifications.mode must be %q or %q, got %q",
			ErrInvalidConfig, NotifyModeLog, NotifyModeAMQP, c.Notifications.Mode)
	}

	if c.Notifications.Enabled && c.Notifications.Mode == NotifyModeAMQP && c.Notifications.AMQP.URL == "" {
		return fmt.Errorf("%w: notifications.amqp.url is required for amqp mode", ErrInvalidConfig)
	}

	return nil
}
