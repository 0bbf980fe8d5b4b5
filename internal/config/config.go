package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort    string
	AppVersion string

	DatabaseURL string
	AutoMigrate bool

	RedisURL string

	SessionTTLSecs int
	IdempTTLSecs   int

	LogLevel  string
	LogFormat string
}

func defaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("SESSION_TTL_SECONDS", 86400)
	v.SetDefault("IDEMPOTENCY_TTL_SECONDS", 300)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Load reads the environment. When CONFIG_FILE is set, that file (any format
// viper understands, .env included) is read first and the environment wins over it.
func Load() (*Config, error) {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	return &Config{
		AppPort:        v.GetString("APP_PORT"),
		AppVersion:     v.GetString("APP_VERSION"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		AutoMigrate:    v.GetBool("AUTO_MIGRATE"),
		RedisURL:       v.GetString("REDIS_URL"),
		SessionTTLSecs: v.GetInt("SESSION_TTL_SECONDS"),
		IdempTTLSecs:   v.GetInt("IDEMPOTENCY_TTL_SECONDS"),
		LogLevel:       strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:      strings.ToLower(v.GetString("LOG_FORMAT")),
	}, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("missing DATABASE_URL")
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.AppPort); err != nil {
		return fmt.Errorf("invalid APP_PORT %q: %w", c.AppPort, err)
	}
	if c.RedisURL == "" {
		return errors.New("missing REDIS_URL")
	}
	if c.SessionTTLSecs <= 0 {
		return fmt.Errorf("invalid SESSION_TTL_SECONDS %d", c.SessionTTLSecs)
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("invalid IDEMPOTENCY_TTL_SECONDS %d", c.IdempTTLSecs)
	}
	return nil
}

func (c *Config) Addr() string { return ":" + c.AppPort }

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSecs) * time.Second
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}
