package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	defaultWindow      = 15 * time.Minute
)

// SigninThrottle counts failed signin attempts per username in Redis.
// Key format: signin_attempts:<username>, expiring after the window so
// a cold username always starts clean.
type SigninThrottle struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewSigninThrottle(client *redis.Client, maxAttempts int, window time.Duration) *SigninThrottle {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &SigninThrottle{client: client, maxAttempts: maxAttempts, window: window}
}

// Blocked reports whether the username has reached the attempt limit.
func (t *SigninThrottle) Blocked(ctx context.Context, username string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(username)).Int()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.maxAttempts, nil
}

// RecordFailure bumps the counter and refreshes its expiry window.
func (t *SigninThrottle) RecordFailure(ctx context.Context, username string) error {
	key := t.key(username)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful signin.
func (t *SigninThrottle) Reset(ctx context.Context, username string) error {
	return t.client.Del(ctx, t.key(username)).Err()
}

func (t *SigninThrottle) key(username string) string {
	return fmt.Sprintf("signin_attempts:%s", username)
}
