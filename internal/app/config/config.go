package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

const (
	StoreDriverRedis  = "redis"
	StoreDriverMemory = "memory"
)

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Store    Store      `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Catalog  Catalog    `mapstructure:",squash"`
	Auth     Auth       `mapstructure:",squash"`
	Kafka    Kafka      `mapstructure:",squash"`
}

type HTTP struct {
	Port           int           `mapstructure:"HTTP_PORT"`
	Timeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	AllowedOrigins []string      `mapstructure:"HTTP_ALLOWED_ORIGINS"`
}

type Store struct {
	Driver string `mapstructure:"STORE_DRIVER"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Catalog drives the single auto refresh loop.
type Catalog struct {
	RefreshInterval time.Duration `mapstructure:"CATALOG_REFRESH_INTERVAL"`
	RefreshCount    int           `mapstructure:"CATALOG_REFRESH_COUNT"`
	AutoRefresh     bool          `mapstructure:"CATALOG_AUTO_REFRESH"`
}

type Auth struct {
	LoginRateLimit int `mapstructure:"AUTH_LOGIN_RATE_LIMIT"`
	BcryptCost     int `mapstructure:"AUTH_BCRYPT_COST"`
}

// Kafka is optional: without brokers events are dropped.
type Kafka struct {
	Brokers            []string      `mapstructure:"KAFKA_BROKERS"`
	CatalogTopic       string        `mapstructure:"KAFKA_CATALOG_TOPIC"`
	ReservationTopic   string        `mapstructure:"KAFKA_RESERVATION_TOPIC"`
	NotificationsTopic string        `mapstructure:"KAFKA_NOTIFICATIONS_TOPIC"`
	BatchTimeout       time.Duration `mapstructure:"KAFKA_BATCH_TIMEOUT"`
}
