package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Event bus
	NATS NATSConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NATSConfig is optional: an empty URL disables publishing.
type NATSConfig struct {
	URL           string
	SubjectPrefix string
}

type WebhookConfig struct {
	DedupEnabled bool
	DedupSize    int
	DedupTTL     time.Duration

	// NgrokAPI is the local ngrok API base (http://ngrok:4040). When set, the
	// public webhook URL is detected and logged at startup.
	NgrokAPI string
}

// Load loads configuration using Viper. A .env file in the working directory is
// applied first without overriding variables already set in the environment.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Platform-style variables take precedence over the namespaced ones.
	_ = v.BindEnv("http_server.port", "PORT", "HTTP_SERVER_PORT")
	_ = v.BindEnv("database.url", "DATABASE_URL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.URL = v.GetString("database.url")
	cfg.Database.MaxOpenConns = v.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = v.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = v.GetDuration("database.conn_max_lifetime")

	// Event bus
	cfg.NATS.URL = v.GetString("nats.url")
	cfg.NATS.SubjectPrefix = v.GetString("nats.subject_prefix")

	// Webhooks
	cfg.Webhook.DedupEnabled = v.GetBool("webhook.dedup_enabled")
	cfg.Webhook.DedupSize = v.GetInt("webhook.dedup_size")
	cfg.Webhook.DedupTTL = v.GetDuration("webhook.dedup_ttl")
	cfg.Webhook.NgrokAPI = v.GetString("webhook.ngrok_api")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http_server.port %d", c.HTTPServer.Port)
	}
	if c.Database.URL == "" {
		return errors.New("database.url is required")
	}
	if c.Webhook.DedupEnabled && c.Webhook.DedupSize <= 0 {
		return fmt.Errorf("invalid webhook.dedup_size %d", c.Webhook.DedupSize)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.url", "postgres://localhost:5432/github?sslmode=disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "5m")

	v.SetDefault("nats.subject_prefix", "github.events")

	v.SetDefault("webhook.dedup_enabled", true)
	v.SetDefault("webhook.dedup_size", 1024)
	v.SetDefault("webhook.dedup_ttl", "1h")
}
