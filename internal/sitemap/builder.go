package sitemap

import (
	"fmt"
	"strings"

	"livescore-service/internal/i18n"
)

// Builder assembles absolute URLs for every language subdomain of the
// site. The base domain carries no scheme and no subdomain, e.g.
// "livescores.example.com".
type Builder struct {
	baseDomain string
}

// NewBuilder returns a Builder rooted at the given base domain.
func NewBuilder(baseDomain string) Builder {
	return Builder{baseDomain: strings.Trim(baseDomain, "/")}
}

// BuildURL returns the absolute URL for a path on one language
// subdomain. Exactly one slash separates host and path regardless of
// how the caller spells the path.
func (b Builder) BuildURL(subdomain, path string) string {
	path = strings.TrimLeft(path, "/")
	return fmt.Sprintf("https://%s.%s/%s", subdomain, b.baseDomain, path)
}

// ExpandForAllLanguages returns the URL for the path on every language
// subdomain, in the stable order of the language table.
func (b Builder) ExpandForAllLanguages(path string) []string {
	langs := i18n.Languages()
	out := make([]string, 0, len(langs))
	for _, lang := range langs {
		out = append(out, b.BuildURL(lang.Subdomain, path))
	}
	return out
}
