package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Catalog CatalogConfig
	Account AccountConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ATELIER_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"ATELIER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ATELIER_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig points the client at the storefront backend. The session
// cookie is scoped to BaseURL's origin.
type APIConfig struct {
	BaseURL string        `envconfig:"ATELIER_API_BASE_URL" default:"http://localhost:8000"`
	Timeout time.Duration `envconfig:"ATELIER_API_TIMEOUT" default:"15s"`
}

func (a APIConfig) validate() error {
	parsed, err := url.Parse(a.BaseURL)
	if err != nil {
		return fmt.Errorf("parsing api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("api base url must be http or https, got %q", a.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("api base url missing host: %q", a.BaseURL)
	}
	return nil
}

type CatalogConfig struct {
	PageLimit        int `envconfig:"ATELIER_CATALOG_PAGE_LIMIT" default:"100"`
	TopProductsLimit int `envconfig:"ATELIER_STATS_TOP_LIMIT" default:"10"`
}

// AccountConfig carries optional credentials for the smoke CLI so it
// can establish a session before running a command.
type AccountConfig struct {
	Email    string `envconfig:"ATELIER_ACCOUNT_EMAIL"`
	Password string `envconfig:"ATELIER_ACCOUNT_PASSWORD"`
}
