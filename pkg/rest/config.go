package rest

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	httptrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/net/http"
)

// DefaultBaseURL is the versioned API root of the remote service.
const DefaultBaseURL = "https://discord.com/api/v10"

// DefaultUserAgent identifies this client to the remote service.
const DefaultUserAgent = "DiscordBot (https://github.com/hashicorp-forge/soundboard, 1)"

// Config contains configuration for the REST client.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	// Example: "https://discord.com/api/v10"
	BaseURL string `json:"baseUrl"`

	// Token is the bot token sent in the Authorization header.
	Token string `json:"-"` // Don't marshal token to JSON

	// UserAgent is sent with every request.
	// Default: DefaultUserAgent
	UserAgent string `json:"userAgent,omitempty"`

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs.
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Timeout for a single HTTP attempt.
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout,omitempty"`

	// MaxRetries for network failures and 5xx responses. Zero disables retries.
	// Default: 3
	MaxRetries int `json:"maxRetries,omitempty"`

	// RetryDelay is the initial backoff interval; it grows exponentially.
	// Default: 500 milliseconds
	RetryDelay time.Duration `json:"retryDelay,omitempty"`

	// Tracing wraps the HTTP client with Datadog APM spans.
	Tracing bool `json:"tracing,omitempty"`

	// HTTPClient overrides the client built by NewHTTPClient.
	HTTPClient *http.Client `json:"-"`

	// Logger receives request logs. Default: null logger.
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		BaseURL:    DefaultBaseURL,
		UserAgent:  DefaultUserAgent,
		TLSVerify:  &tlsVerify,
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: 500 * time.Millisecond,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}

	parsedURL, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("base_url must use http or https scheme, got: %s", parsedURL.Scheme)
	}

	if c.Token == "" {
		return fmt.Errorf("token is required: set a bot token in the api block or its token_env variable")
	}

	// The client adds the "Bot " scheme itself.
	if strings.HasPrefix(c.Token, "Bot ") || strings.HasPrefix(c.Token, "Bearer ") {
		return fmt.Errorf("token must be the bare bot token, without an authorization scheme")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %v", c.Timeout)
	}

	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative, got: %d", c.MaxRetries)
	}

	if c.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be non-negative, got: %v", c.RetryDelay)
	}

	return nil
}

// NewHTTPClient creates a configured HTTP client for this config.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	client := &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}

	if c.Tracing {
		client = httptrace.WrapClient(client)
	}

	return client
}
