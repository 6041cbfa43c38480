package server

import (
	"fmt"
	"strings"

	"livescore-service/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving
// from the instance type when not explicitly configured. Keeps naming
// consistent in metrics and logs.
func normalizeProviderName(raw string, provider providers.MatchProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
