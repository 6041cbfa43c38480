package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter registers routes and wraps them with CORS. The frontend is
// served from the language subdomains, so cross-origin reads are open.
func NewRouter(handler *Handler, metricsHandler nethttp.Handler) nethttp.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	r.HandleFunc("/matches", handler.Matches).Methods(nethttp.MethodGet)
	r.HandleFunc("/matches/live", handler.LiveMatches).Methods(nethttp.MethodGet)
	r.HandleFunc("/matches/grouped", handler.GroupedMatches).Methods(nethttp.MethodGet)
	r.HandleFunc("/matches/{id}", handler.MatchByID).Methods(nethttp.MethodGet)
	r.HandleFunc("/languages", handler.Languages).Methods(nethttp.MethodGet)
	r.HandleFunc("/languages/preferred", handler.SelectLanguage).Methods(nethttp.MethodPost)
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler).Methods(nethttp.MethodGet)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(r)
}
