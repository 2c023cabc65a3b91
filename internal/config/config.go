package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	MigrationsPath string `toml:"migrations_path"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// workout session
	CatalogPath              string        `toml:"catalog_path"`
	RestTimerTick            time.Duration `toml:"rest_timer_tick"`
	DefaultBodyweight        float64       `toml:"default_bodyweight"`
	HistoryCacheSizeMB       int           `toml:"history_cache_size_mb"`
	HistoryCacheTTL          time.Duration `toml:"history_cache_ttl"`
	CuePublishEnabled        bool          `toml:"cue_publish_enabled"`
	WriteRateLimitAllowedMin int           `toml:"write_rate_limit_allowed_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for env, with defaults applied.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GYMSESSION_POSTGRES_HOST"); v != "" {
		c.PostgresHost = v
	}
	if v := os.Getenv("GYMSESSION_REDIS_HOST"); v != "" {
		c.RedisHost = v
	}
}

func (c *Config) applyDefaults() {
	if c.RestTimerTick <= 0 {
		c.RestTimerTick = time.Second
	}
	if c.HistoryCacheSizeMB <= 0 {
		c.HistoryCacheSizeMB = 10
	}
	if c.HistoryCacheTTL <= 0 {
		c.HistoryCacheTTL = 10 * time.Minute
	}
	if c.WriteRateLimitAllowedMin <= 0 {
		c.WriteRateLimitAllowedMin = 120
	}
	if c.MigrationsPath == "" {
		c.MigrationsPath = "./migrations"
	}
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.PostgresHost == "" || c.PostgresDBName == "" {
		return errors.New("postgres host and db name are required")
	}
	if c.DefaultBodyweight < 0 {
		return fmt.Errorf("invalid default bodyweight: %f", c.DefaultBodyweight)
	}
	return nil
}
