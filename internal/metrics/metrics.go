package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls
// and the poll loop, mirroring everything into OpenTelemetry when
// instruments are configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats

	pollerCycles int
	pollerErrors int

	sitemapRuns int
	sitemapURLs int

	otel *otelInstruments
}

// NewRecorder builds a Recorder without telemetry export.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and
// stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks an upstream rate limit hit and the advertised Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordPollerCycle tracks one poll cycle and whether it failed.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.pollerCycles++
	if err != nil {
		r.pollerErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPoller(duration, err)
	}
}

// RecordSitemapRun tracks one sitemap generation run and the URL count
// it produced.
func (r *Recorder) RecordSitemapRun(files, urls int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.sitemapRuns++
	r.sitemapURLs += urls
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSitemapRun(files, urls)
	}
}

// RecordHTTPRequest tracks one served request.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// ProviderSnapshot returns a copy of the current stats for the provider.
func (r *Recorder) ProviderSnapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[provider]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// PollerCycles returns the total poll cycles recorded.
func (r *Recorder) PollerCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pollerCycles
}

// PollerErrors returns the total failed poll cycles recorded.
func (r *Recorder) PollerErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pollerErrors
}

// SitemapRuns returns the total sitemap generation runs recorded.
func (r *Recorder) SitemapRuns() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sitemapRuns
}

// SitemapURLs returns the total sitemap URLs emitted across runs.
func (r *Recorder) SitemapURLs() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sitemapURLs
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
