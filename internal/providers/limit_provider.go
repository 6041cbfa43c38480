package providers

import (
	"context"
	"log/slog"
	"time"

	domainmatch "livescore-service/internal/domain/match"
)

// rateLimitedProvider wraps a MatchProvider and enforces a minimum
// interval between calls to respect upstream quotas.
type rateLimitedProvider struct {
	next     MatchProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a MatchProvider that limits calls to the
// given interval. Calls block until the interval elapses.
func NewRateLimitedProvider(next MatchProvider, interval time.Duration, logger *slog.Logger) MatchProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchMatches(ctx context.Context, from, to string) ([]domainmatch.Match, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"))
		}
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	return p.next.FetchMatches(ctx, from, to)
}

// Close stops the pacing ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
