package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"catsgram-backend/internal/common/logger"
	postmodels "catsgram-backend/internal/features/post/models"
	usermodels "catsgram-backend/internal/features/user/models"
)

const slowQueryThreshold = 200 * time.Millisecond

type Client struct {
	db     *gorm.DB
	driver string
}

// Open connects to postgres or sqlite through gorm and pings the connection.
func Open(ctx context.Context, driver, dsn string, debug bool) (*Client, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty %s DSN", driver)
	}

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported SQL driver %q", driver)
	}

	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}
	gormLog := gormlogger.New(logger.NewPrinter("gorm", zerolog.InfoLevel), gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})

	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	if driver == "sqlite" {
		// a single connection keeps ":memory:" databases shared and serializes writers
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("driver", driver).Msg("SQL client initialized")

	return &Client{db: gdb, driver: driver}, nil
}

// GetDB возвращает экземпляр базы данных
func (c *Client) GetDB() *gorm.DB {
	return c.db
}

// Migrate creates or updates the users and posts tables.
func (c *Client) Migrate() error {
	if err := c.db.AutoMigrate(&usermodels.User{}, &postmodels.Post{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	logger.Info().Str("driver", c.driver).Msg("Database schema migrated")
	return nil
}

// Close закрывает соединение с базой данных
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck проверяет здоровье базы данных
func (c *Client) HealthCheck(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
