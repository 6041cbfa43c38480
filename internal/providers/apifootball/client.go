package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	domainmatch "livescore-service/internal/domain/match"
	"livescore-service/internal/logging"
	"livescore-service/internal/providers"
	"livescore-service/internal/timeutil"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches matches from the football scores API and maps them to
// the canonical domain shape.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     logger,
		now:        time.Now,
	}
}

// FetchMatches retrieves matches within the [from, to] date window.
// A non-array payload (the upstream reports errors as a JSON object)
// is treated as zero matches, not as a failure.
func (c *Client) FetchMatches(ctx context.Context, from, to string) ([]domainmatch.Match, error) {
	req, err := c.buildRequest(ctx, from, to)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("apifootball: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload any
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, decodeErr
	}

	records, ok := payload.([]any)
	if !ok {
		logging.Warn(c.logger, "non-array payload treated as zero matches",
			slog.String(logging.FieldProvider, providerName))
		return []domainmatch.Match{}, nil
	}

	matches, skipped := NormalizeAll(records)
	if skipped > 0 {
		logging.Warn(c.logger, "skipped malformed match records",
			slog.String(logging.FieldProvider, providerName),
			slog.Int(logging.FieldSkipped, skipped))
	}
	return matches, nil
}

func (c *Client) buildRequest(ctx context.Context, from, to string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return nil, err
	}

	today := timeutil.FormatDate(c.now().UTC())
	q := req.URL.Query()
	q.Set("action", actionEvents)
	q.Set("from", c.resolveDate(from, today))
	q.Set("to", c.resolveDate(to, today))
	if c.apiKey != "" {
		q.Set("APIkey", c.apiKey)
	}
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func (c *Client) resolveDate(date, fallback string) string {
	if date != "" {
		if _, err := timeutil.ParseDate(date); err == nil {
			return date
		}
	}
	return fallback
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
