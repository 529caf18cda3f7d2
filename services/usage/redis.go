// File: services/usage/redis.go
package usage

import (
	"context"
	"fmt"
	"time"

	"servicebuddy/models"
	"servicebuddy/utils"

	"github.com/go-redis/redis/v8"
)

// RedisLimiter counts usage in date-scoped Redis keys, so the quota is
// correct across server instances and counters expire on their own
// instead of accumulating per anonymous session id.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, limit int) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, now: time.Now}
}

func (l *RedisLimiter) key(sessionID string) string {
	return fmt.Sprintf("%s%s:%s", utils.UsageCachePrefix, sessionID, dateKey(l.now()))
}

func (l *RedisLimiter) Allow(ctx context.Context, sessionID string) (bool, error) {
	count, err := l.client.Get(ctx, l.key(sessionID)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return count < l.limit, nil
}

func (l *RedisLimiter) Record(ctx context.Context, sessionID string) error {
	key := l.key(sessionID)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		// First hit today: give the key its lifetime.
		return l.client.Expire(ctx, key, utils.UsageCacheTTL).Err()
	}
	return nil
}

func (l *RedisLimiter) Status(ctx context.Context, sessionID string) (models.UsageInfo, error) {
	count, err := l.client.Get(ctx, l.key(sessionID)).Int()
	if err == redis.Nil {
		count = 0
	} else if err != nil {
		return models.UsageInfo{}, err
	}
	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return models.UsageInfo{Used: count, Remaining: remaining, Limit: l.limit}, nil
}
