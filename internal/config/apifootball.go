package config

import "time"

// APIFootballConfig controls the upstream football scores API client.
type APIFootballConfig struct {
	BaseURL string
	APIKey  string
	Timeout Duration
	// PastDays/FutureDays widen the from/to window around today.
	PastDays   int
	FutureDays int
}

func loadAPIFootball() APIFootballConfig {
	return APIFootballConfig{
		BaseURL:    envOrDefault(envAPIFootballBaseURL, ""),
		APIKey:     envOrDefault(envAPIFootballAPIKey, ""),
		Timeout:    durationEnvOrDefault(envAPIFootballTimeout, 10*time.Second),
		PastDays:   intEnvOrDefault(envAPIFootballPastDays, 1),
		FutureDays: intEnvOrDefault(envAPIFootballFutureDays, 1),
	}
}
