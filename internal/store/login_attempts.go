package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/voy/internal/config"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/redis/go-redis/v9"
)

const loginAttemptsKeyPrefix = "voy:login:"

// registerAttemptScript increments the counter and opens the window in one
// step. A counter left without a TTL gets one on its next attempt.
var registerAttemptScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// redisLoginAttempts counts login attempts in fixed windows that start with
// the first attempt.
type redisLoginAttempts struct {
	client *redis.Client
	window time.Duration
	logger *logger.Logger
}

// NewRedisLoginAttempts connects to Redis and pings it.
func NewRedisLoginAttempts(ctx context.Context, cfg config.Limiter, logger *logger.Logger) (LoginAttempts, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Debug().Str("address", cfg.RedisAddress).Msg("creating redis login limiter")
	return newRedisLoginAttempts(client, cfg.Window, logger), client, nil
}

func newRedisLoginAttempts(client *redis.Client, window time.Duration, logger *logger.Logger) *redisLoginAttempts {
	return &redisLoginAttempts{client: client, window: window, logger: logger}
}

func (l *redisLoginAttempts) Register(ctx context.Context, email string) (int64, error) {
	count, err := registerAttemptScript.Run(ctx, l.client, []string{loginAttemptsKey(email)}, l.window.Milliseconds()).Int64()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisLoginAttempts.Register").Msg("failed to count login attempt")
		return 0, fmt.Errorf("count login attempt: %w", err)
	}

	return count, nil
}

func (l *redisLoginAttempts) Reset(ctx context.Context, email string) error {
	if err := l.client.Del(ctx, loginAttemptsKey(email)).Err(); err != nil {
		return fmt.Errorf("reset login attempts: %w", err)
	}
	return nil
}

func loginAttemptsKey(email string) string {
	return loginAttemptsKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}

// nopLoginAttempts never throttles. It is used when Redis is not configured.
type nopLoginAttempts struct{}

// NewNopLoginAttempts returns a [LoginAttempts] that always reports zero attempts.
func NewNopLoginAttempts() LoginAttempts {
	return nopLoginAttempts{}
}

func (nopLoginAttempts) Register(context.Context, string) (int64, error) { return 0, nil }

func (nopLoginAttempts) Reset(context.Context, string) error { return nil }
