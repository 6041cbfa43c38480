package sitemap

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"

	"livescore-service/internal/timeutil"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
)

// MatchSlug builds the canonical match page slug:
// "{home}-vs-{away}-{YYYY-MM-DD}". Team names are lowercased, stripped
// of everything outside letters, digits and spaces, and space runs
// collapse to single hyphens. The date part is the first ten characters
// of the scheduled timestamp; URLs must stay byte-stable across
// releases, so this transform is frozen here rather than delegated to
// a slug library.
func MatchSlug(home, away, scheduledAt string) string {
	return slugifyName(home) + "-vs-" + slugifyName(away) + "-" + timeutil.DatePart(scheduledAt)
}

func slugifyName(name string) string {
	s := strings.ToLower(name)
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// PageSlug slugifies a league, team or betting-site name for its page
// path. Unlike match slugs these have no compatibility freeze, so the
// full unicode-aware transliteration is fine.
func PageSlug(name string) string {
	return slug.Make(name)
}
