package app

import (
	"github.com/wellpulse/wellpulse-backend/internal/logger"
	"github.com/wellpulse/wellpulse-backend/internal/utils"
)

type Config struct {
	Address          string
	RedisEnabled     bool
	BatchConcurrency int
}

func LoadConfig(log *logger.Logger) Config {
	address := utils.GetEnv("HTTP_ADDR", ":8080", log)
	redisEnabled := utils.GetEnvAsBool("REDIS_ENABLED", false, log)
	batchConcurrency := utils.GetEnvAsInt("BATCH_CONCURRENCY", 8, log)
	return Config{
		Address:          address,
		RedisEnabled:     redisEnabled,
		BatchConcurrency: batchConcurrency,
	}
}
