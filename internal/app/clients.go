package app

import (
	redisclient "github.com/wellpulse/wellpulse-backend/internal/clients/redis"
	"github.com/wellpulse/wellpulse-backend/internal/logger"
)

type Clients struct {
	ScoreCache redisclient.ScoreCache
}

// wireClients connects external backends. Redis is optional: when disabled
// or unreachable the app runs without caching.
func wireClients(log *logger.Logger, cfg Config) Clients {
	log.Info("Wiring clients...")
	var clients Clients
	if cfg.RedisEnabled {
		cache, err := redisclient.NewScoreCache(log)
		if err != nil {
			log.Warn("redis unavailable, running without score cache", "error", err)
		} else {
			clients.ScoreCache = cache
		}
	}
	return clients
}
