package server

import (
	"log/slog"

	"livescore-service/internal/config"
	"livescore-service/internal/providers"
	"livescore-service/internal/providers/apifootball"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.MatchProvider {
	switch cfg.Provider {
	case "apifootball", "":
		return apifootball.NewClient(apifootball.Config{
			BaseURL: cfg.APIFootball.BaseURL,
			APIKey:  cfg.APIFootball.APIKey,
		}, logger)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to apifootball", slog.String("provider", cfg.Provider))
		}
		return apifootball.NewClient(apifootball.Config{
			BaseURL: cfg.APIFootball.BaseURL,
			APIKey:  cfg.APIFootball.APIKey,
		}, logger)
	}
}
