// Package config loads the soundctl configuration file.
//
// The file is HCL:
//
//	api {
//	  base_url    = "https://discord.com/api/v10"
//	  token_env   = "DISCORD_TOKEN"
//	  timeout     = "30s"
//	  max_retries = 3
//	  retry_delay = "500ms"
//	}
//
//	log {
//	  level = "info"
//	}
//
//	tracing {
//	  enabled = true
//	  service = "soundctl"
//	}
//
// Every block and attribute is optional.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/hashicorp-forge/soundboard/pkg/rest"
)

// DefaultTokenEnv is the environment variable read for the bot token when
// the file sets neither token nor token_env.
const DefaultTokenEnv = "DISCORD_TOKEN"

// Config represents the soundctl configuration from HCL.
type Config struct {
	API     *APIConfig     `hcl:"api,block"`
	Log     *LogConfig     `hcl:"log,block"`
	Tracing *TracingConfig `hcl:"tracing,block"`
}

// APIConfig configures the REST client.
type APIConfig struct {
	BaseURL    string `hcl:"base_url,optional"`
	Token      string `hcl:"token,optional"`
	TokenEnv   string `hcl:"token_env,optional"`
	UserAgent  string `hcl:"user_agent,optional"`
	Timeout    string `hcl:"timeout,optional"`     // e.g., "30s"
	RetryDelay string `hcl:"retry_delay,optional"` // e.g., "500ms"
	MaxRetries *int   `hcl:"max_retries,optional"`
	TLSVerify  *bool  `hcl:"tls_verify,optional"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level string `hcl:"level,optional"` // trace, debug, info, warn, error
}

// TracingConfig configures Datadog APM.
type TracingConfig struct {
	Enabled bool   `hcl:"enabled,optional"`
	Service string `hcl:"service,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile loads the configuration from an HCL file and applies defaults.
func LoadFile(filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration file path is required")
	}

	// Check if file exists
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", filename)
	}

	var cfg Config
	if err := hclsimple.DecodeFile(filename, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := rest.DefaultConfig()

	if c.API == nil {
		c.API = &APIConfig{}
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.BaseURL
	}
	if c.API.Token == "" && c.API.TokenEnv == "" {
		c.API.TokenEnv = DefaultTokenEnv
	}
	if c.API.Timeout == "" {
		c.API.Timeout = defaults.Timeout.String()
	}
	if c.API.RetryDelay == "" {
		c.API.RetryDelay = defaults.RetryDelay.String()
	}
	if c.API.MaxRetries == nil {
		maxRetries := defaults.MaxRetries
		c.API.MaxRetries = &maxRetries
	}

	if c.Log == nil {
		c.Log = &LogConfig{}
	}

	if c.Tracing == nil {
		c.Tracing = &TracingConfig{}
	}
	if c.Tracing.Service == "" {
		c.Tracing.Service = "soundctl"
	}
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if _, err := url.Parse(c.API.BaseURL); err != nil {
		result = multierror.Append(result, fmt.Errorf("api.base_url: %w", err))
	}
	if _, err := time.ParseDuration(c.API.Timeout); err != nil {
		result = multierror.Append(result, fmt.Errorf("api.timeout: %w", err))
	}
	if _, err := time.ParseDuration(c.API.RetryDelay); err != nil {
		result = multierror.Append(result, fmt.Errorf("api.retry_delay: %w", err))
	}
	if c.API.MaxRetries != nil && *c.API.MaxRetries < 0 {
		result = multierror.Append(result, fmt.Errorf("api.max_retries must be non-negative, got: %d", *c.API.MaxRetries))
	}
	if c.Log.Level != "" && hclog.LevelFromString(c.Log.Level) == hclog.NoLevel {
		result = multierror.Append(result, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	return result.ErrorOrNil()
}

// Token returns the inline token, or the value of the token environment
// variable.
func (c *Config) Token() string {
	if c.API.Token != "" {
		return c.API.Token
	}
	return os.Getenv(c.API.TokenEnv)
}

// LogLevel returns the configured log level, or hclog.NoLevel when the
// file leaves it to the environment.
func (c *Config) LogLevel() hclog.Level {
	return hclog.LevelFromString(c.Log.Level)
}

// RESTConfig converts the API block into a rest.Config. Call Validate first.
func (c *Config) RESTConfig(logger hclog.Logger) (*rest.Config, error) {
	timeout, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return nil, fmt.Errorf("api.timeout: %w", err)
	}
	retryDelay, err := time.ParseDuration(c.API.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("api.retry_delay: %w", err)
	}

	return &rest.Config{
		BaseURL:    c.API.BaseURL,
		Token:      c.Token(),
		UserAgent:  c.API.UserAgent,
		TLSVerify:  c.API.TLSVerify,
		Timeout:    timeout,
		MaxRetries: *c.API.MaxRetries,
		RetryDelay: retryDelay,
		Tracing:    c.Tracing.Enabled,
		Logger:     logger,
	}, nil
}
