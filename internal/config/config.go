// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Cookies   CookiesConfig   `yaml:"cookies"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// CatalogConfig defines the remote catalog API settings.
type CatalogConfig struct {
	BaseURLs   BaseURLsConfig   `yaml:"base_urls"`
	ClientInfo ClientInfoConfig `yaml:"client_info"`
	Timeout    time.Duration    `yaml:"timeout"`
}

// BaseURLsConfig lists the catalog endpoints. URLs that take an id are
// prefixes and must end with the separator the API expects.
type BaseURLsConfig struct {
	TokenURL         string `yaml:"token_url"`
	IndexViewURL     string `yaml:"index_view_url"`
	DetailViewURL    string `yaml:"detail_view_url"`
	BrandProductsURL string `yaml:"brand_products_url"`
	BrandURL         string `yaml:"brand_url"`
	BinaryURL        string `yaml:"binary_url"`
	AuthURL          string `yaml:"auth_url"`
	RedirectURI      string `yaml:"redirect_uri"`
}

// ClientInfoConfig holds both OAuth client registrations.
type ClientInfoConfig struct {
	ClientID      string `yaml:"client_id"`
	ClientSecret  string `yaml:"client_secret"`
	ClientID2     string `yaml:"client_id2"`
	ClientSecret2 string `yaml:"client_secret2"`
}

// CookiesConfig defines how download cookies are issued.
type CookiesConfig struct {
	Secure bool `yaml:"secure"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// TelemetryConfig defines the OTLP exporter settings.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"`
	Insecure    bool   `yaml:"insecure"`
	ServiceName string `yaml:"service_name"`
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. Variables are taken from the process
// environment first, then from a .env file next to the config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	dotenv, err := readDotEnv(filepath.Join(filepath.Dir(path), ".env"))
	if err != nil {
		return nil, fmt.Errorf("reading .env file: %w", err)
	}

	expanded := os.Expand(string(data), func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	})

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func readDotEnv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	return godotenv.Read(path)
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyCatalogDefaults(&cfg.Catalog)
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "catalog-gateway"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Catalog.BaseURLs.TokenURL == "" {
		errs = append(errs, fmt.Errorf("catalog.base_urls.token_url is required"))
	}
	if cfg.Catalog.ClientInfo.ClientID == "" {
		errs = append(errs, fmt.Errorf("catalog.client_info.client_id is required"))
	}
	if cfg.Catalog.ClientInfo.ClientSecret == "" {
		errs = append(errs, fmt.Errorf("catalog.client_info.client_secret is required"))
	}
	if cfg.Catalog.Timeout < 0 {
		errs = append(errs, fmt.Errorf("catalog.timeout must not be negative (got %s)", cfg.Catalog.Timeout))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(
			errs,
			fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format),
		)
	}

	return errors.Join(errs...)
}
