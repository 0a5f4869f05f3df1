// Package notifier delivers notification emails through the email provider API.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fortizbank/fortiz/pkg/config"
)

// HTTPSender posts template emails to a transactional email API.
type HTTPSender struct {
	apiKey     string
	apiURL     string
	from       string
	maxElapsed time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

type sendRequest struct {
	From     string            `json:"from"`
	To       []string          `json:"to"`
	Template string            `json:"template"`
	Params   map[string]string `json:"params"`
}

// NewHTTPSender creates a sender from the email configuration.
func NewHTTPSender(cfg *config.Email, logger *slog.Logger) *HTTPSender {
	return &HTTPSender{
		apiKey:     cfg.ApiKey,
		apiURL:     cfg.ApiUrl,
		from:       cfg.From,
		maxElapsed: cfg.MaxElapsed,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger.With("component", "notifier"),
	}
}

// Send delivers one email. Network errors, 429 and 5xx responses are retried
// with exponential backoff until maxElapsed; other 4xx responses fail at once.
func (s *HTTPSender) Send(ctx context.Context, to, template string, params map[string]string) error {
	body, err := json.Marshal(sendRequest{
		From:     s.from,
		To:       []string{to},
		Template: template,
		Params:   params,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = s.maxElapsed

	attempt := 0
	op := func() error {
		attempt++
		return s.post(ctx, body)
	}
	notify := func(err error, wait time.Duration) {
		s.logger.Warn("email delivery failed, retrying",
			"template", template, "attempt", attempt, "wait", wait, "error", err)
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(policy, ctx), notify); err != nil {
		return err
	}
	s.logger.Info("email delivered", "template", template, "attempts", attempt)
	return nil
}

func (s *HTTPSender) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	statusErr := fmt.Errorf("email API returned status %d: %s", resp.StatusCode, string(respBody))
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return statusErr
	}
	return backoff.Permanent(statusErr)
}
