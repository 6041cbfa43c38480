package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	domainmatch "livescore-service/internal/domain/match"
	"livescore-service/internal/logging"
	"livescore-service/internal/metrics"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingProvider wraps a MatchProvider with retry/backoff behavior.
type retryingProvider struct {
	inner           MatchProvider
	logger          *slog.Logger
	metrics         *metrics.Recorder
	name            string
	maxAttempts     int
	initialInterval time.Duration
}

// NewRetryingProvider wraps the given provider with exponential-backoff
// retries. If maxAttempts/initialInterval are <= 0, defaults are used.
func NewRetryingProvider(inner MatchProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initialInterval time.Duration) MatchProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:           inner,
		logger:          logger,
		metrics:         recorder,
		name:            name,
		maxAttempts:     maxAttempts,
		initialInterval: initialInterval,
	}
}

func (r *retryingProvider) FetchMatches(ctx context.Context, from, to string) ([]domainmatch.Match, error) {
	var matches []domainmatch.Match
	attempt := 0

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialInterval
	bo.MaxElapsedTime = 0 // bounded by attempt count, not wall clock

	op := func() error {
		attempt++
		start := time.Now()
		fetched, err := r.inner.FetchMatches(ctx, from, to)
		if r.metrics != nil {
			r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		}
		if err != nil {
			if rle, ok := IsRateLimit(err); ok && r.metrics != nil {
				r.metrics.RecordRateLimit(r.name, rle.RetryAfter)
			}
			if attempt < r.maxAttempts {
				r.logWarn(ctx, "provider fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)
			}
			return err
		}
		matches = fetched
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(r.maxAttempts-1)), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		r.logWarn(ctx, "provider fetch failed", "attempts", attempt, "err", err)
		return nil, err
	}
	return matches, nil
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
