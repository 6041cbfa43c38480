package http

import (
	"bytes"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"livescore-service/internal/metrics"
)

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	var seenID string
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(nethttp.StatusTeapot)
	})
	handler := LoggingMiddleware(logger, metrics.NewRecorder(), inner)

	req := httptest.NewRequest(nethttp.MethodGet, "/matches", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seenID == "" {
		t.Fatal("expected request id in context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seenID {
		t.Fatalf("header id %q != context id %q", got, seenID)
	}
	if !strings.Contains(buf.String(), "status_code=418") {
		t.Fatalf("expected logged status, got %s", buf.String())
	}
}

func TestLoggingMiddlewarePropagatesIncomingID(t *testing.T) {
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {})
	handler := LoggingMiddleware(nil, nil, inner)

	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc123" {
		t.Fatalf("expected incoming id to round-trip, got %q", got)
	}
}
