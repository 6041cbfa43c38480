package providers

import (
	"context"

	domainmatch "livescore-service/internal/domain/match"
)

// MatchProvider defines how upstream match data is fetched and normalized.
// from/to are YYYY-MM-DD strings bounding the fixture window, inclusive.
// Providers should interpret empty bounds as "today".
type MatchProvider interface {
	FetchMatches(ctx context.Context, from, to string) ([]domainmatch.Match, error)
}
