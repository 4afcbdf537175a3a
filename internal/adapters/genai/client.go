// Package genai implements the generative text provider port against a
// Gemini-style generateContent HTTP API.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"nexpo/internal/domain"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Config holds configuration for the provider client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // overridable for tests
	Timeout time.Duration
}

type client struct {
	httpClient *http.Client
	logger     *slog.Logger
	apiKey     string
	url        string
	timeout    time.Duration
	breaker    *gobreaker.CircuitBreaker[string]
	sleep      func(time.Duration)
}

// NewClient returns a TextCompleter backed by the configured provider, or nil
// when no API key is configured. A nil completer selects the deterministic
// fallback path everywhere.
func NewClient(cfg Config, httpClient *http.Client, logger *slog.Logger) domain.TextCompleter {
	if cfg.APIKey == "" {
		return nil
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	breaker := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name: "genai",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		Timeout: 60 * time.Second,
	})
	return &client{
		httpClient: httpClient,
		logger:     logger,
		apiKey:     cfg.APIKey,
		url:        fmt.Sprintf("%s/%s:generateContent", base, cfg.Model),
		timeout:    timeout,
		breaker:    breaker,
		sleep:      time.Sleep,
	}
}

// generateContent request/response wire shapes (subset).
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// maxAttempts bounds rate-limit retries; backoff grows 2s, 4s, 6s.
const maxAttempts = 4

func (c *client) Complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := c.breaker.Execute(func() (string, error) {
			return c.completeOnce(ctx, prompt)
		})
		if err == nil {
			return text, nil
		}
		lastErr = err
		// Only rate limiting is worth retrying; everything else falls
		// through to the caller's deterministic fallback.
		if !errors.Is(err, domain.ErrRateLimited) || attempt == maxAttempts {
			return "", lastErr
		}
		wait := time.Duration(attempt) * 2 * time.Second
		c.logger.Warn("provider rate limited, backing off", "attempt", attempt, "wait", wait)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		c.sleep(wait)
	}
	return "", lastErr
}

func (c *client) completeOnce(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		return "", domain.ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode provider response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("provider returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
