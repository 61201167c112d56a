package app

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DriverMemory   = "memory"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config holds the settings for one service process.
type Config struct {
	HTTPAddr        string        `validate:"required"`
	DBDriver        string        `validate:"oneof=memory mysql postgres"`
	MySQLDSN        string        `validate:"required_if=DBDriver mysql"`
	PostgresDSN     string        `validate:"required_if=DBDriver postgres"`
	JWTSecret       string        `validate:"omitempty,min=8"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

func DefaultConfig() Config {
	return Config{
		HTTPAddr:        ":8080",
		DBDriver:        DriverMemory,
		ShutdownTimeout: 5 * time.Second,
	}
}

// LoadConfig overlays environment values on DefaultConfig.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	if v := getenv("APP_PORT"); v != "" {
		cfg.HTTPAddr = ":" + v
	}
	if v := getenv("DB_DRIVER"); v != "" {
		cfg.DBDriver = v
	}
	cfg.MySQLDSN = getenv("MYSQL_DSN")
	cfg.PostgresDSN = getenv("PG_DSN")
	cfg.JWTSecret = getenv("JWT_SECRET")
	if v := getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
