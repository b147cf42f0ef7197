package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
)

// Config is read from the environment at startup
type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	GinMode       string        `env:"GIN_MODE" envDefault:"debug"`
	JWTSecret     string        `env:"JWT_SECRET" envDefault:"restaurant_pos_dev_secret"`
	JWTTTL        time.Duration `env:"JWT_TTL" envDefault:"24h"`
	DBDriver      string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabaseURL   string        `env:"DATABASE_URL" envDefault:"pos.db"`
	DefaultLocale string        `env:"DEFAULT_LOCALE" envDefault:"fr"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	SeedDemo      bool          `env:"SEED_DEMO" envDefault:"true"`
	LoginPerMin   int           `env:"LOGIN_RATE_PER_MIN" envDefault:"20"`
	LoginBurst    int           `env:"LOGIN_BURST" envDefault:"5"`
}

// Load parses the environment into a validated Config
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", c.DBDriver, DriverSQLite, DriverPostgres)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("unsupported GIN_MODE %q", c.GinMode)
	}
	if c.LoginPerMin <= 0 || c.LoginBurst <= 0 {
		return errors.New("LOGIN_RATE_PER_MIN and LOGIN_BURST must be positive")
	}
	return nil
}
