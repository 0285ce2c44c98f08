// Package forwarder relays demo-form submissions to the configured
// spreadsheet-script endpoint. It is the only outbound network call the
// service makes; the query engines never block on I/O.
package forwarder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"scout-data-service/internal/logging"
	"scout-data-service/internal/metrics"
)

const (
	defaultMaxAttempts = 3
	defaultTimeout     = 10 * time.Second
	retryBackoff       = 200 * time.Millisecond
)

// ErrNotConfigured is returned when no forwarding endpoint is set.
var ErrNotConfigured = errors.New("forwarder: endpoint not configured")

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the upstream endpoint.
type Config struct {
	Endpoint    string
	HTTPClient  *http.Client
	MaxAttempts int
	Timeout     time.Duration
}

// Client forwards JSON payloads upstream with bounded retries.
type Client struct {
	endpoint    string
	httpClient  httpDoer
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxAttempts int
	backoffFn   func(attempt int) time.Duration
}

// New constructs a forwarding client with the provided configuration.
func New(cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Client {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		endpoint:    cfg.Endpoint,
		httpClient:  httpClient,
		logger:      logger,
		metrics:     recorder,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * retryBackoff
		},
	}
}

// Forward posts the payload to the upstream endpoint, retrying transient
// failures with context-aware backoff.
func (c *Client) Forward(ctx context.Context, payload json.RawMessage) error {
	if c.endpoint == "" {
		return ErrNotConfigured
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		start := time.Now()
		err := c.post(ctx, payload)
		c.metrics.RecordForwardAttempt(time.Since(start), err)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == c.maxAttempts {
			break
		}
		logging.Warn(c.logger, "forward retry", "attempt", attempt, "max_attempts", c.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.backoffFn(attempt)):
		}
	}

	logging.Warn(c.logger, "forward failed", "attempts", c.maxAttempts, "err", lastErr)
	return lastErr
}

func (c *Client) post(ctx context.Context, payload json.RawMessage) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("forwarder: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
