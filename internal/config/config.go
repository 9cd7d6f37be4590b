// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the full application configuration.
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	DB    DBConfig
	Redis RedisConfig
	Kafka KafkaConfig
	Auth  AuthConfig
	Log   LogConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" env-default:"development"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"15s"`
}

// Addr returns the listen address.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig holds PostgreSQL settings.
type DBConfig struct {
	URL      string `env:"DATABASE_URL" env-required:"true"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS" env-default:"25"`
	MinConns int32  `env:"DATABASE_MIN_CONNS" env-default:"5"`
}

// RedisConfig holds Redis settings. When Addr is empty the trash ledger
// falls back to the in-memory store.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" env-default:""`
	Password string `env:"REDIS_PASSWORD" env-default:""`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

// KafkaConfig holds activity-stream settings. When Brokers is empty the
// activity events go to the log instead.
type KafkaConfig struct {
	Brokers []string `env:"KAFKA_BROKERS" env-default:""`
	Topic   string   `env:"KAFKA_TOPIC" env-default:"crmdesk.activity"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET" env-required:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}
