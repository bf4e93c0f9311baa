package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether another request for key fits in the budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// incrWindow bumps the counter and starts the window on the first hit. A key
// left without a TTL is re-armed so it cannot block a client forever.
var incrWindow = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 or redis.call("PTTL", KEYS[1]) == -1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RedisLimiter is a fixed-window counter shared through Redis.
type RedisLimiter struct {
	client redis.Scripter
	limit  int
	window time.Duration
}

// NewRedisLimiter allows limit requests per key in each window.
func NewRedisLimiter(client redis.Scripter, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window}
}

// Allow increments the counter for key and reports whether it is within limit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := incrWindow.Run(ctx, l.client, []string{Key(key)}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}
	return count <= int64(l.limit), nil
}

// Key namespaces a client key.
func Key(key string) string {
	return "rl:tickets:" + key
}
