package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/wellpulse/wellpulse-backend/internal/logger"
	"github.com/wellpulse/wellpulse-backend/internal/modules/scoring"
	"github.com/wellpulse/wellpulse-backend/internal/utils"
)

// ScoreCache caches computed score results for a short window so dashboard
// refreshes don't recompute an unchanged day. The cache is best-effort:
// callers treat a miss and an error the same way and recompute.
type ScoreCache interface {
	Get(ctx context.Context, employeeID uuid.UUID, date time.Time) (*scoring.ScoreResult, bool, error)
	Set(ctx context.Context, result *scoring.ScoreResult) error
	Invalidate(ctx context.Context, employeeID uuid.UUID) error
	Close() error
}

type scoreCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewScoreCache(log *logger.Logger) (ScoreCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ttlSeconds := utils.GetEnvAsInt("SCORE_CACHE_TTL_SECONDS", 300, log)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &scoreCache{
		log: log.With("service", "RedisScoreCache"),
		rdb: rdb,
		ttl: time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func scoreKey(employeeID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("score:%s:%s", employeeID, date.Format("2006-01-02"))
}

func (c *scoreCache) Get(ctx context.Context, employeeID uuid.UUID, date time.Time) (*scoring.ScoreResult, bool, error) {
	if c == nil || c.rdb == nil {
		return nil, false, fmt.Errorf("score cache not initialized")
	}
	raw, err := c.rdb.Get(ctx, scoreKey(employeeID, date)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var result scoring.ScoreResult
	if err := json.Unmarshal(raw, &result); err != nil {
		// A stale or corrupt entry is a miss, not a failure.
		c.log.Warn("dropping undecodable cache entry", "employee_id", employeeID, "error", err)
		_ = c.rdb.Del(ctx, scoreKey(employeeID, date)).Err()
		return nil, false, nil
	}
	return &result, true, nil
}

func (c *scoreCache) Set(ctx context.Context, result *scoring.ScoreResult) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("score cache not initialized")
	}
	if result == nil {
		return nil
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, scoreKey(result.EmployeeID, result.Date), raw, c.ttl).Err()
}

// Invalidate drops every cached day for the employee. Called after writes
// that change scoring inputs (metrics, check-ins, consent, preferences,
// life events, threshold overrides).
func (c *scoreCache) Invalidate(ctx context.Context, employeeID uuid.UUID) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("score cache not initialized")
	}
	pattern := fmt.Sprintf("score:%s:*", employeeID)
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (c *scoreCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
