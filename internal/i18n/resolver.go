package i18n

import (
	"net"
	"strings"

	"livescore-service/internal/prefs"
)

// Resolver picks the language for a request. Host subdomain wins,
// then the injected preference store, then the default language.
type Resolver struct {
	prefs prefs.Store
}

// NewResolver constructs a Resolver. A nil store is allowed and simply
// disables the preference fallback.
func NewResolver(store prefs.Store) *Resolver {
	return &Resolver{prefs: store}
}

// Resolve returns the language for an HTTP Host header.
func (r *Resolver) Resolve(host string) Language {
	if lang, ok := FromHost(host); ok {
		return lang
	}
	if r != nil && r.prefs != nil {
		if code, ok := r.prefs.Get(prefs.KeyLanguage); ok {
			if lang, found := ByCode(code); found {
				return lang
			}
		}
	}
	return Default()
}

// Remember persists the preferred language code for future fallbacks.
// Unknown codes are ignored.
func (r *Resolver) Remember(code string) {
	if r == nil || r.prefs == nil {
		return
	}
	if _, ok := ByCode(code); !ok {
		return
	}
	r.prefs.Set(prefs.KeyLanguage, code)
}

// FromHost extracts the leading DNS label of host and looks it up as a
// language subdomain. Ports are stripped; bare domains resolve to nothing.
func FromHost(host string) (Language, bool) {
	if host == "" {
		return Language{}, false
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	label, rest, found := strings.Cut(host, ".")
	if !found || rest == "" {
		return Language{}, false
	}
	return BySubdomain(strings.ToLower(label))
}
