package db

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds database connection configuration
type Config struct {
	// URL is the database connection URL (defaults to DATABASE_URL env var)
	URL string
	// LogLevel is "debug" for SQL logging, "info" for slow queries and
	// errors, anything else for silence.
	LogLevel string
	// MaxOpenConns caps the pool; zero keeps the driver default.
	MaxOpenConns int
	// ConnMaxLifetime recycles pooled connections; zero keeps them forever.
	ConnMaxLifetime time.Duration
}

// Connect establishes a database connection.
// If no URL is provided, it reads from DATABASE_URL environment variable.
func Connect(cfg Config) (*gorm.DB, error) {
	dbURL := cfg.URL
	if dbURL == "" {
		dbURL = URL()
	}
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := gorm.Open(
		postgres.New(postgres.Config{
			DSN:                  dbURL,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(LogMode(cfg.LogLevel)),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// LogMode maps a configured log level to a GORM logger level.
func LogMode(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "info":
		return logger.Warn
	default:
		return logger.Silent
	}
}

// URL returns the database URL from environment.
// Returns empty string if DATABASE_URL is not set.
func URL() string {
	return os.Getenv("DATABASE_URL")
}
