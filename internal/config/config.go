// Package config loads server settings from the environment once, at
// startup. Validation failures are reported before any network activity.
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Config is the resolved server configuration
type Config struct {
	// BaseURL of the Firefly III instance
	BaseURL string

	// Token is the personal access token used when no credential store is
	// configured
	Token string

	// CredentialFile enables the encrypted on-disk token store when set
	CredentialFile string

	// CredentialSecret seals the credential file
	CredentialSecret string

	// Timeout for upstream HTTP calls
	Timeout time.Duration

	// MaxRetries for transient upstream failures
	MaxRetries int

	// SentryDSN enables error tracking when set
	SentryDSN string

	// HTTPAddr enables the streamable HTTP transport when set; empty means
	// stdio only
	HTTPAddr string

	// LogLevel is debug, info, warn, or error
	LogLevel string
}

// Load reads configuration from the environment and validates it
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:          strings.TrimRight(os.Getenv("FIREFLY_BASE_URL"), "/"),
		Token:            os.Getenv("FIREFLY_TOKEN"),
		CredentialFile:   os.Getenv("FIREFLY_CREDENTIAL_FILE"),
		CredentialSecret: os.Getenv("FIREFLY_CREDENTIAL_SECRET"),
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		HTTPAddr:         os.Getenv("MCP_HTTP_ADDR"),
		LogLevel:         strings.ToLower(os.Getenv("LOG_LEVEL")),
		Timeout:          30 * time.Second,
		MaxRetries:       3,
	}

	if v := os.Getenv("FIREFLY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid FIREFLY_TIMEOUT")
		}
		cfg.Timeout = d
	}

	if v := os.Getenv("FIREFLY_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, errors.New("invalid FIREFLY_MAX_RETRIES")
		}
		cfg.MaxRetries = n
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return errors.New("FIREFLY_BASE_URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("FIREFLY_BASE_URL must be an absolute URL")
	}

	if c.Token == "" && c.CredentialFile == "" {
		return errors.New("either FIREFLY_TOKEN or FIREFLY_CREDENTIAL_FILE is required")
	}
	if c.CredentialFile != "" && c.CredentialSecret == "" {
		return errors.New("FIREFLY_CREDENTIAL_SECRET is required with FIREFLY_CREDENTIAL_FILE")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}

	return nil
}
