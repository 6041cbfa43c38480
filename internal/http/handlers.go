package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/gorilla/mux"

	"livescore-service/internal/app/matches"
	domainmatch "livescore-service/internal/domain/match"
	"livescore-service/internal/i18n"
	"livescore-service/internal/poller"
)

type nowFunc func() time.Time

// Readiness reports whether the data pipeline behind the API is healthy.
type Readiness interface {
	Status() poller.Status
}

// Handler wires HTTP routes to the match service.
type Handler struct {
	svc      *matches.Service
	resolver *i18n.Resolver
	ready    Readiness
	logger   *slog.Logger
	now      nowFunc
}

// NewHandler constructs a Handler with defaults. The readiness source
// may be nil, in which case /ready always reports ok.
func NewHandler(svc *matches.Service, resolver *i18n.Resolver, ready Readiness, logger *slog.Logger) *Handler {
	return &Handler{
		svc:      svc,
		resolver: resolver,
		ready:    ready,
		logger:   logger,
		now:      time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the poller has warmed the snapshot.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.ready == nil || h.ready.Status().IsReady() {
		h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
		return
	}
	h.writeJSON(w, nethttp.StatusServiceUnavailable, map[string]string{"status": "not ready"})
}

type matchesResponse struct {
	Date     string              `json:"date"`
	Language string              `json:"language"`
	Matches  []domainmatch.Match `json:"matches"`
}

// Matches returns the current snapshot of matches.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, matchesResponse{
		Date:     h.now().UTC().Format("2006-01-02"),
		Language: h.language(r),
		Matches:  h.svc.Matches(),
	})
}

// LiveMatches returns only matches currently in play.
func (h *Handler) LiveMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, matchesResponse{
		Date:     h.now().UTC().Format("2006-01-02"),
		Language: h.language(r),
		Matches:  h.svc.Live(),
	})
}

type groupedResponse struct {
	Date     string                `json:"date"`
	Language string                `json:"language"`
	Leagues  []matches.LeagueGroup `json:"leagues"`
}

// GroupedMatches returns the snapshot bucketed by league in display order.
func (h *Handler) GroupedMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, groupedResponse{
		Date:     h.now().UTC().Format("2006-01-02"),
		Language: h.language(r),
		Leagues:  h.svc.Grouped(),
	})
}

// MatchByID returns a specific match if present.
func (h *Handler) MatchByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing match id")
		return
	}

	m, ok := h.svc.MatchByID(id)
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "match not found")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, m)
}

type languagePayload struct {
	Code      string `json:"code"`
	Subdomain string `json:"subdomain"`
	Name      string `json:"name"`
	RTL       bool   `json:"rtl"`
}

// Languages lists every supported language and marks the one resolved
// for the caller.
func (h *Handler) Languages(w nethttp.ResponseWriter, r *nethttp.Request) {
	langs := i18n.Languages()
	payload := make([]languagePayload, 0, len(langs))
	for _, lang := range langs {
		payload = append(payload, languagePayload{
			Code:      lang.Code,
			Subdomain: lang.Subdomain,
			Name:      lang.Name,
			RTL:       lang.RTL,
		})
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]any{
		"current":   h.language(r),
		"languages": payload,
	})
}

// SelectLanguage stores the caller's preferred language for hosts that
// carry no language subdomain.
func (h *Handler) SelectLanguage(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Code == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing language code")
		return
	}
	lang, ok := i18n.ByCode(body.Code)
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "unknown language code")
		return
	}
	if h.resolver != nil {
		h.resolver.Remember(lang.Code)
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"language": lang.Code})
}

func (h *Handler) language(r *nethttp.Request) string {
	if h.resolver == nil {
		return i18n.DefaultCode
	}
	return h.resolver.Resolve(r.Host).Code
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
