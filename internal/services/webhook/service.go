// Package webhook posts JSON events to an external endpoint with bounded, linearly backed-off retries.
package webhook

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/voicewatcher/internal/models"
)

const (
	// SecretHeader carries the shared secret when one is configured
	SecretHeader = "X-Webhook-Secret"

	defaultTimeout = 10 * time.Second
	excerptLimit   = 300
)

type service struct {
	config *Config
	logger *slog.Logger

	delivered atomic.Int64
	failed    atomic.Int64
}

// New creates a new webhook dispatcher
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.URL == "" {
		return nil, ErrInvalidURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Policy == nil {
		cfg.Policy = DefaultPolicy(DefaultMaxAttempts)
	}
	if cfg.Policy.MaxAttempts < 1 {
		cfg.Policy.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Policy.Backoff == nil {
		cfg.Policy.Backoff = LinearBackoff
	}
	if cfg.Sleeper == nil {
		cfg.Sleeper = TimerSleeper{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &service{
		config: cfg,
		logger: cfg.Logger.With("component", "webhook", "url", cfg.URL),
	}, nil
}

// Send posts event, retrying failed attempts after the policy's backoff
func (s *service) Send(ctx context.Context, event *models.WebhookEvent) bool {
	body, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed to encode webhook event", "error", err)
		s.failed.Add(1)
		return false
	}

	maxAttempts := s.config.Policy.MaxAttempts
	for n := 1; n <= maxAttempts; n++ {
		attempt := s.attempt(ctx, n, body)
		if attempt.Succeeded() {
			s.logger.Info("webhook event sent successfully", "attempt", n)
			s.delivered.Add(1)
			return true
		}

		s.logger.Warn("webhook delivery failed",
			"attempt", n,
			"max_retries", maxAttempts,
			"status", attempt.StatusCode,
			"body", attempt.BodyExcerpt,
			"error", attempt.Err)

		if n == maxAttempts {
			break
		}
		if err := s.config.Sleeper.Sleep(ctx, s.config.Policy.Backoff(n)); err != nil {
			s.logger.Error("webhook delivery interrupted before retrying",
				"attempt", n,
				"max_retries", maxAttempts,
				"error", err)
			s.failed.Add(1)
			return false
		}
	}

	s.logger.Error("webhook delivery exhausted retries", "max_retries", maxAttempts)
	s.failed.Add(1)
	return false
}

// Stats returns delivery counters since startup
func (s *service) Stats() Stats {
	return Stats{
		Delivered: s.delivered.Load(),
		Failed:    s.failed.Load(),
	}
}

// attempt makes one POST on a client that is discarded afterwards
func (s *service) attempt(ctx context.Context, n int, body []byte) *models.DeliveryAttempt {
	result := &models.DeliveryAttempt{Attempt: n}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.URL, bytes.NewReader(body))
	if err != nil {
		result.Err = err
		return result
	}
	req.Header.Set("Content-Type", "application/json")
	if s.config.Secret != "" {
		req.Header.Set(SecretHeader, s.config.Secret)
	}

	client, transport := s.newClient()
	defer transport.CloseIdleConnections()

	resp, err := client.Do(req)
	if err != nil {
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, excerptLimit))
		result.BodyExcerpt = string(excerpt)
		result.Err = fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return result
}

func (s *service) newClient() (*http.Client, *http.Transport) {
	transport := &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		DisableKeepAlives: true,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: s.config.InsecureSkipVerify,
		},
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   s.config.Timeout,
	}
	if s.config.DisableRedirects {
		client.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return client, transport
}
