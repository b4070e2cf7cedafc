package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Debug       bool   `env:"DEBUG" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"catsgram"`

	Server struct {
		Port            int           `env:"PORT" envDefault:"8080"`
		Origins         []string      `env:"ORIGIN" envSeparator:"," envDefault:"*"`
		ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
		WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
		IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
		SwaggerEnabled  bool          `env:"SWAGGER_ENABLED" envDefault:"true"`
	}

	Storage struct {
		// memory, redis, postgres, sqlite
		Driver string `env:"STORAGE_DRIVER" envDefault:"memory"`
	}

	Redis struct {
		Host      string `env:"REDIS_HOST" envDefault:"localhost"`
		Port      int    `env:"REDIS_PORT" envDefault:"6379"`
		Password  string `env:"REDIS_PASSWORD" envDefault:""`
		DB        int    `env:"REDIS_DB" envDefault:"0"`
		KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"catsgram"`
	}

	Database struct {
		// postgres URL or sqlite file path
		DSN         string `env:"DATABASE_DSN" envDefault:"catsgram.db"`
		AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	}
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// .env is optional; in production variables are set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverRedis, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q: expected memory, redis, postgres or sqlite", c.Storage.Driver)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Server.Port)
	}
	return nil
}

// RedisAddr returns host:port of the redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// UsesSQL reports whether the configured driver is backed by gorm.
func (c *Config) UsesSQL() bool {
	return c.Storage.Driver == DriverPostgres || c.Storage.Driver == DriverSQLite
}
