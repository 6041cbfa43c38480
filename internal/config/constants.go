package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"

	envAPIFootballBaseURL    = "APIFOOTBALL_BASE_URL"
	envAPIFootballAPIKey     = "APIFOOTBALL_API_KEY"
	envAPIFootballTimeout    = "APIFOOTBALL_TIMEOUT"
	envAPIFootballPastDays   = "APIFOOTBALL_PAST_DAYS"
	envAPIFootballFutureDays = "APIFOOTBALL_FUTURE_DAYS"

	envMetricsEnabled      = "METRICS_ENABLED"
	envMetricsPort         = "METRICS_PORT"
	envMetricsServiceName  = "METRICS_SERVICE_NAME"
	envMetricsOtlpEndpoint = "METRICS_OTLP_ENDPOINT"
	envMetricsOtlpInsecure = "METRICS_OTLP_INSECURE"

	envSnapshotsEnabled   = "SNAPSHOTS_ENABLED"
	envSnapshotsFolder    = "SNAPSHOTS_FOLDER"
	envSnapshotsRetention = "SNAPSHOTS_RETENTION_DAYS"

	envSitemapBaseDomain = "SITEMAP_BASE_DOMAIN"
	envSitemapOutputDir  = "SITEMAP_OUTPUT_DIR"
)

const (
	defaultPort         = "8080"
	defaultPollInterval = 180 * time.Second
	defaultProvider     = "apifootball"

	defaultMetricsPort        = "9090"
	defaultMetricsServiceName = "livescore-service"

	defaultSnapshotsFolder    = "data/snapshots"
	defaultSnapshotsRetention = 14

	defaultSitemapBaseDomain = "livescores.example.com"
	defaultSitemapOutputDir  = "public/sitemaps"
)
