package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// storage
	StorageBackend string `toml:"storage_backend"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// http
	AllowedOrigins        []string          `toml:"allowed_origins"`
	RateLimitPerMin       int               `toml:"rate_limit_per_min"`
	CatalogCacheSizeMB    int               `toml:"catalog_cache_size_mb"`
	SessionTTLHours       int               `toml:"session_ttl_hours"`
	PrometheusMetricsHost string            `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string            `toml:"prometheus_metrics_port"`
	DevSessions           map[string]string `toml:"dev_sessions"`
}

// Secrets never live in the toml file, they come from the environment (or a .env file).
type Secrets struct {
	RedisPassword    string `env:"FITTRACKER_REDIS_PASS"`
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME, default=fittracker"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
		if cfg != nil {
			cfg.Environment = "development"
		}
	case "prod", "production":
		cfg = t.Production
		if cfg != nil {
			cfg.Environment = "production"
		}
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the toml file at path, picks the section for env, fills defaults
// and validates the result.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for in-memory toml content.
func Parse(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.StorageBackend == "" {
		c.StorageBackend = StorageMemory
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.RateLimitPerMin <= 0 {
		c.RateLimitPerMin = 120
	}
	if c.CatalogCacheSizeMB <= 0 {
		c.CatalogCacheSizeMB = 1
	}
	if c.SessionTTLHours <= 0 {
		c.SessionTTLHours = 24 * 7
	}
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	switch c.StorageBackend {
	case StorageMemory:
	case StorageRedis:
		if c.RedisHost == "" || c.RedisPort == "" {
			return errors.New("redis storage requires redis_host and redis_port")
		}
	case StoragePostgres:
		if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
			return errors.New("postgres storage requires postgres_host, postgres_port and postgres_db_name")
		}
		// sessions and rate limiting live in redis
		if c.RedisHost == "" || c.RedisPort == "" {
			return errors.New("postgres storage requires redis_host and redis_port for sessions")
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}
	return nil
}

func (c *Config) UsesRedis() bool {
	return c.StorageBackend == StorageRedis || c.StorageBackend == StoragePostgres
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	var s Secrets
	if err := envconfig.Process(ctx, &s); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &s, nil
}

func LoadSecretsFrom(ctx context.Context, env map[string]string) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: envconfig.MapLookuper(env),
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &s, nil
}
