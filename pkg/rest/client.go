package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// AuditLogReasonHeader carries the audit log reason of a mutating request.
const AuditLogReasonHeader = "X-Audit-Log-Reason"

// Request is a single call to the remote API.
type Request struct {
	// Method is the HTTP method, e.g. http.MethodPatch.
	Method string

	// Path is appended to Config.BaseURL. Build it with the route helpers.
	Path string

	// Body is encoded as the JSON request body. Nil sends no body.
	Body any

	// AuditLogReason is sent as request metadata, never in the body.
	AuditLogReason string
}

// Submitter sends a Request and returns the raw response body.
type Submitter interface {
	Submit(ctx context.Context, req *Request) ([]byte, error)
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, req *Request) ([]byte, error)

// Submit calls f(ctx, req).
func (f SubmitterFunc) Submit(ctx context.Context, req *Request) ([]byte, error) {
	return f(ctx, req)
}

// Client is the HTTP Submitter for the remote API.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     hclog.Logger
}

var _ Submitter = (*Client)(nil)

// NewClient creates a new REST client. Zero-valued optional fields of cfg
// take their DefaultConfig values, except MaxRetries where zero disables
// retries.
func NewClient(cfg *Config) (*Client, error) {
	defaults := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.TLSVerify == nil {
		cfg.TLSVerify = defaults.TLSVerify
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = defaults.RetryDelay
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid REST client config: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = cfg.NewHTTPClient()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Client{
		config:     cfg,
		httpClient: httpClient,
		logger:     logger.Named("rest"),
	}, nil
}

// CloseIdleConnections closes idle connections in the underlying transport.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// Submit sends req, retrying network failures and 5xx responses with
// exponential backoff. The body is encoded once, so every attempt sends
// identical bytes.
func (c *Client) Submit(ctx context.Context, req *Request) ([]byte, error) {
	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	requestID := uuid.New().String()
	logger := c.logger.With(
		"request_id", requestID,
		"method", req.Method,
		"path", req.Path,
	)

	attempt := 0
	var respBody []byte
	operation := func() error {
		attempt++
		body, err := c.do(ctx, req, bodyBytes, logger.With("attempt", attempt))
		if err != nil {
			return err
		}
		respBody = body
		return nil
	}

	notify := func(err error, wait time.Duration) {
		logger.Warn("retrying request", "attempt", attempt, "backoff", wait, "error", err)
	}

	if err := backoff.RetryNotify(operation, c.newBackOff(ctx), notify); err != nil {
		if attempt > 1 {
			return nil, fmt.Errorf("request failed after %d attempts: %w", attempt, err)
		}
		return nil, err
	}

	return respBody, nil
}

func (c *Client) newBackOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.config.RetryDelay
	exp.MaxInterval = 30 * time.Second
	// Attempts are bounded by MaxRetries rather than elapsed time.
	exp.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(c.config.MaxRetries)), ctx)
}

// do performs one HTTP attempt. Errors wrapped in backoff.Permanent stop the
// retry loop.
func (c *Client) do(ctx context.Context, req *Request, bodyBytes []byte, logger hclog.Logger) ([]byte, error) {
	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.config.BaseURL+req.Path, bodyReader)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	httpReq.Header.Set("Authorization", "Bot "+c.config.Token)
	httpReq.Header.Set("User-Agent", c.config.UserAgent)
	httpReq.Header.Set("Accept", "application/json")
	if bodyBytes != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.AuditLogReason != "" {
		httpReq.Header.Set(AuditLogReasonHeader, url.PathEscape(req.AuditLogReason))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		logger.Debug("request failed", "duration", time.Since(start), "error", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	logger.Debug("request completed",
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"has_audit_reason", req.AuditLogReason != "",
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBody, nil
	}

	apiErr := newAPIError(resp.StatusCode, respBody)
	if apiErr.Temporary() {
		return nil, apiErr
	}
	return nil, backoff.Permanent(apiErr)
}
