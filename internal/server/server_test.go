package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"livescore-service/internal/app/matches"
	"livescore-service/internal/config"
	domainmatch "livescore-service/internal/domain/match"
	"livescore-service/internal/poller"
	"livescore-service/internal/providers/apifootball"
	"livescore-service/internal/store"
)

type stubProvider struct {
	matches []domainmatch.Match
	notify  chan struct{}
}

func (s *stubProvider) FetchMatches(ctx context.Context, from, to string) ([]domainmatch.Match, error) {
	_ = ctx
	_ = from
	_ = to
	if s.notify != nil {
		select {
		case <-s.notify:
		default:
			close(s.notify)
		}
	}
	return s.matches, nil
}

type errProvider struct{}

func (e *errProvider) FetchMatches(ctx context.Context, from, to string) ([]domainmatch.Match, error) {
	_ = ctx
	_ = from
	_ = to
	return nil, context.DeadlineExceeded
}

type stubPoller struct {
	startCalls int
	stopCalls  int
	err        error
	status     poller.Status
}

func (p *stubPoller) Start(ctx context.Context) {
	_ = ctx
	p.startCalls++
}

func (p *stubPoller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopCalls++
	return p.err
}

func (p *stubPoller) Status() poller.Status {
	return p.status
}

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string {
	return s.addr
}

func (s *stubHTTPServer) Handler() http.Handler {
	return s.handler
}

type blockingHTTPServer struct {
	addr          string
	handler       http.Handler
	shutdownCalls int
	unblock       chan struct{}
}

func (s *blockingHTTPServer) ListenAndServe() error {
	return nil
}

func (s *blockingHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.unblock:
		return nil
	}
}

func (s *blockingHTTPServer) Addr() string {
	return s.addr
}

func (s *blockingHTTPServer) Handler() http.Handler {
	return s.handler
}

func TestServerServesHealthAndMatches(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := domainmatch.Match{
		ID:        "stub-1",
		League:    "Premier League",
		Country:   "England",
		Status:    domainmatch.StatusLive,
		Minute:    "12'",
		Date:      "2025-08-24",
		HomeTeam:  domainmatch.Team{Name: "Arsenal"},
		AwayTeam:  domainmatch.Team{Name: "Chelsea"},
		HomeScore: 1,
	}

	provider := &stubProvider{
		matches: []domainmatch.Match{m},
		notify:  make(chan struct{}),
	}

	cfg := config.Config{PollInterval: 5 * time.Millisecond}
	srv := newServerWithProvider(cfg, nil, provider)
	srv.poller.Start(ctx)

	select {
	case <-provider.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for poller to fetch")
	}

	router := srv.Handler()

	healthReq := httptest.NewRequest(http.MethodGet, "/health", nil)
	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, healthReq)

	if healthRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", healthRec.Code)
	}

	matchesReq := httptest.NewRequest(http.MethodGet, "/matches", nil)
	matchesRec := httptest.NewRecorder()
	router.ServeHTTP(matchesRec, matchesReq)

	if matchesRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /matches, got %d", matchesRec.Code)
	}

	var resp struct {
		Matches []domainmatch.Match `json:"matches"`
	}
	if err := json.NewDecoder(matchesRec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode matches response: %v", err)
	}

	if len(resp.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(resp.Matches))
	}
	if resp.Matches[0].ID != "stub-1" {
		t.Fatalf("unexpected match id %s", resp.Matches[0].ID)
	}
}

func TestSelectProviderFallsBackToAPIFootball(t *testing.T) {
	provider := selectProvider(config.Config{Provider: "unknown"}, nil)
	if _, ok := provider.(*apifootball.Client); !ok {
		t.Fatalf("expected apifootball fallback, got %T", provider)
	}
}

func TestSelectProviderChoosesAPIFootball(t *testing.T) {
	provider := selectProvider(config.Config{
		Provider: "apifootball",
		APIFootball: config.APIFootballConfig{
			BaseURL: "http://example.com",
			APIKey:  "key",
		},
	}, nil)
	if _, ok := provider.(*apifootball.Client); !ok {
		t.Fatalf("expected apifootball provider, got %T", provider)
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := config.Config{
		Port:     "0",
		Provider: "apifootball",
		Metrics: config.MetricsConfig{
			Enabled: false,
		},
	}
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
}

func TestServerHandlesProviderErrorGracefully(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Config{PollInterval: 5 * time.Millisecond}
	srv := newServerWithProvider(cfg, nil, &errProvider{})
	srv.poller.Start(ctx)

	// Give the poller a moment to attempt a fetch.
	time.Sleep(20 * time.Millisecond)

	router := srv.Handler()
	matchesReq := httptest.NewRequest(http.MethodGet, "/matches", nil)
	matchesRec := httptest.NewRecorder()
	router.ServeHTTP(matchesRec, matchesReq)

	if matchesRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /matches, got %d", matchesRec.Code)
	}

	var resp struct {
		Matches []domainmatch.Match `json:"matches"`
	}
	if err := json.NewDecoder(matchesRec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode matches response: %v", err)
	}

	if len(resp.Matches) != 0 {
		t.Fatalf("expected no matches when provider errors, got %d", len(resp.Matches))
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	svc := matches.NewService(store.NewMemoryStore())
	p := &stubPoller{}
	httpSrv := &stubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, svc, httpSrv, p)
	srv.gracefulShutdown()

	if p.stopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.shutdownCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	svc := matches.NewService(store.NewMemoryStore())
	p := &stubPoller{}

	blocking := &blockingHTTPServer{
		addr:    ":0",
		handler: http.NewServeMux(),
		unblock: make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, svc, blocking, p)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.shutdownCalls)
	}
	if p.stopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.stopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenPollerStopErrors(t *testing.T) {
	svc := matches.NewService(store.NewMemoryStore())
	p := &stubPoller{err: errors.New("stop failure")}
	httpSrv := &stubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, svc, httpSrv, p)
	srv.gracefulShutdown()

	if p.stopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.shutdownCalls)
	}
}

type errHTTPServer struct {
	shutdownCalls int
}

func (e *errHTTPServer) ListenAndServe() error {
	return errors.New("listen failure")
}

func (e *errHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	e.shutdownCalls++
	return nil
}

func (e *errHTTPServer) Addr() string {
	return ":0"
}

func (e *errHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	svc := matches.NewService(store.NewMemoryStore())
	plr := &stubPoller{}
	httpSrv := &errHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, svc, httpSrv, plr)

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

type closeableHTTPServer struct {
	shutdownCalls int
}

func (c *closeableHTTPServer) ListenAndServe() error {
	return http.ErrServerClosed
}

func (c *closeableHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	c.shutdownCalls++
	return nil
}

func (c *closeableHTTPServer) Addr() string {
	return ":0"
}

func (c *closeableHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := matches.NewService(store.NewMemoryStore())
	plr := &stubPoller{}
	httpSrv := &closeableHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, svc, httpSrv, plr)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// Let Start be invoked.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.startCalls != 1 {
		t.Fatalf("expected poller Start called once, got %d", plr.startCalls)
	}
	if plr.stopCalls != 1 {
		t.Fatalf("expected poller Stop called once, got %d", plr.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.shutdownCalls)
	}
}
