package main

import (
	"net/http"

	"presskit/internal/config"
	"presskit/internal/http/middleware"
	"presskit/internal/httpapi"
	"presskit/internal/logging"
	"presskit/internal/presskitapi"
)

func newHTTPHandler(cfg *config.Config, logger *logging.Logger) http.Handler {
	client := presskitapi.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	source := presskitapi.NewCachedSource(client, cfg.Cache.Size, cfg.Cache.TTL)

	if cfg.Cache.TTL > 0 {
		logger.Zerolog().Info().
			Int("size", cfg.Cache.Size).
			Dur("ttl", cfg.Cache.TTL).
			Msg("presskit cache enabled")
	} else {
		logger.Info("presskit cache disabled")
	}

	routes := httpapi.New(source, logger, cfg.DefaultLang).Routes()

	var handler http.Handler = routes
	handler = middleware.CORS(cfg.CORS.AllowedOrigins)(handler)
	handler = middleware.RequestLogging(logger.Zerolog())(handler)
	handler = middleware.Recovery(logger.Zerolog())(handler)
	return handler
}
