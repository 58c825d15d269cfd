package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StorageMemory   = "memory"
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

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// storage
	Storage        string `toml:"storage"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis (sessions, rate limiting)
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// activity
	LogActivityRateLimitPerMin int      `toml:"log_activity_rate_limit_per_min"`
	SummaryCacheTTL            Duration `toml:"summary_cache_ttl"`
	KafkaBrokers               []string `toml:"kafka_brokers"`
	KafkaActivityTopic         string   `toml:"kafka_activity_topic"`

	// social
	SocialBaseURL       string   `toml:"social_base_url"`
	SocialSourceTimeout Duration `toml:"social_source_timeout"`

	AllowedOrigins []string `toml:"allowed_origins"`
}

// Duration wraps time.Duration so it can be written as "5s" in TOML
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
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
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not found", env)
	}
	return cfg, nil
}

func Load(env, configPath string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(configPath, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", configPath, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.Storage == "" {
		c.Storage = StoragePostgres
	}
	if c.LogActivityRateLimitPerMin == 0 {
		c.LogActivityRateLimitPerMin = 60
	}
	if c.SummaryCacheTTL.Duration == 0 {
		c.SummaryCacheTTL.Duration = time.Minute
	}
	if c.KafkaActivityTopic == "" {
		c.KafkaActivityTopic = "fitstats.activity.logged"
	}
	if c.SocialSourceTimeout.Duration == 0 {
		c.SocialSourceTimeout.Duration = 5 * time.Second
	}
}

func (c *Config) Validate() error {
	if c.Storage != StorageMemory && c.Storage != StoragePostgres {
		return fmt.Errorf("unknown storage [%s]", c.Storage)
	}
	if c.Storage == StoragePostgres && (c.PostgresHost == "" || c.PostgresDBName == "") {
		return errors.New("postgres host and db name must be set for postgres storage")
	}
	if c.SocialBaseURL == "" {
		return errors.New("social base url not set")
	}
	if c.SocialSourceTimeout.Duration < 0 {
		return errors.New("social source timeout must not be negative")
	}
	return nil
}
