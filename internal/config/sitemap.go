package config

// SitemapConfig controls sitemap generation output.
type SitemapConfig struct {
	// BaseDomain is the apex domain; language subdomains hang off it.
	BaseDomain string
	OutputDir  string
}

func loadSitemap() SitemapConfig {
	return SitemapConfig{
		BaseDomain: envOrDefault(envSitemapBaseDomain, defaultSitemapBaseDomain),
		OutputDir:  envOrDefault(envSitemapOutputDir, defaultSitemapOutputDir),
	}
}
