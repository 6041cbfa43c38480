package poller

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	domainmatch "livescore-service/internal/domain/match"
	"livescore-service/internal/logging"
	"livescore-service/internal/metrics"
	"livescore-service/internal/providers"
	"livescore-service/internal/timeutil"
)

const defaultInterval = 180 * time.Second

// MatchSink receives the result of a successful fetch cycle. The
// snapshot is replaced wholesale so readers never observe a partial
// cycle.
type MatchSink interface {
	ReplaceMatches(matches []domainmatch.Match)
}

// SnapshotWriter persists match snapshots to disk.
type SnapshotWriter interface {
	WriteMatchesSnapshot(date string, snapshot domainmatch.DayResponse) error
}

// Window bounds the from/to fetch dates around today.
type Window struct {
	PastDays   int
	FutureDays int
}

// Poller fetches matches on an interval and feeds the sink and the
// snapshot writer. A tick that arrives while the previous cycle is
// still in flight is skipped, so a slow upstream can never stack
// cycles or let a stale response overwrite a newer one.
type Poller struct {
	provider providers.MatchProvider
	sink     MatchSink
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	window   Window
	now      func() time.Time

	inFlight atomic.Bool

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	SkippedTicks        int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is
// not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.MatchProvider, sink MatchSink, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration, window Window) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if window.PastDays < 0 {
		window.PastDays = 0
	}
	if window.FutureDays < 0 {
		window.FutureDays = 0
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		window:   window,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// fetchOnce runs one fetch-normalize-swap cycle. Only one cycle runs
// at a time; overlapping invocations are counted and dropped.
func (p *Poller) fetchOnce(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.recordSkip()
		p.logInfo("poller tick skipped, previous cycle still running")
		return
	}
	defer p.inFlight.Store(false)

	start := time.Now()
	p.recordAttempt(start)

	today := p.now().UTC()
	from := timeutil.FormatDate(today.AddDate(0, 0, -p.window.PastDays))
	to := timeutil.FormatDate(today.AddDate(0, 0, p.window.FutureDays))

	matches, err := p.provider.FetchMatches(ctx, from, to)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		// Keep serving the previous snapshot; the frontend shows stale
		// data over a blank screen.
		p.logError("poller fetch failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	if p.sink != nil {
		p.sink.ReplaceMatches(matches)
	}

	if p.writer != nil {
		date := timeutil.FormatDate(today)
		snap := domainmatch.NewDayResponse(date, matchesForDate(matches, date))
		if writeErr := p.writer.WriteMatchesSnapshot(date, snap); writeErr != nil {
			p.logError("poller snapshot write failed", writeErr)
		}
	}

	p.recordSuccess(start)
	p.logInfo("poller refreshed matches",
		logging.FieldCount, len(matches),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

// matchesForDate filters the window down to one day's fixtures for the
// daily snapshot file. Matches without a parsable date are kept; the
// snapshot is a best-effort SEO/content aid, not a ledger.
func matchesForDate(matches []domainmatch.Match, date string) []domainmatch.Match {
	var out []domainmatch.Match
	for _, m := range matches {
		if m.Date == "" || m.Date == date {
			out = append(out, m)
		}
	}
	return out
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSkip() {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.SkippedTicks++
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.MatchProvider {
	return p.provider
}
