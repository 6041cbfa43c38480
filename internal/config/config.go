package config

// Config holds runtime configuration for the service binaries.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	APIFootball  APIFootballConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotsConfig
	Sitemap      SitemapConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		APIFootball:  loadAPIFootball(),
		Metrics:      loadMetrics(),
		Snapshots:    loadSnapshots(),
		Sitemap:      loadSitemap(),
	}
}
