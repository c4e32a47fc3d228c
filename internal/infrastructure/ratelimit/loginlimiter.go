package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles login attempts per email|ip key with a fixed
// window counter. Both failed and successful attempts count; a successful
// login clears its key.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewLoginLimiter(client *redis.Client, maxAttempts, windowMinutes int) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if windowMinutes <= 0 {
		windowMinutes = 15
	}
	return &LoginLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      time.Duration(windowMinutes) * time.Minute,
	}
}

// Allow records one attempt and reports whether it may proceed. When
// denied, retryAfter is the time until the window expires.
func (l *LoginLimiter) Allow(ctx context.Context, email, ip string) (bool, time.Duration, error) {
	key := l.key(email, ip)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment login counter: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("failed to set login counter expiry: %w", err)
		}
	}

	if count > int64(l.maxAttempts) {
		ttl, err := l.client.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = l.window
		}
		return false, ttl, nil
	}

	return true, 0, nil
}

// Clear removes the counter after a successful login so earlier failed
// attempts stop counting against the user.
func (l *LoginLimiter) Clear(ctx context.Context, email, ip string) error {
	if err := l.client.Del(ctx, l.key(email, ip)).Err(); err != nil {
		return fmt.Errorf("failed to clear login counter: %w", err)
	}
	return nil
}

// key lowercases the email so "User@x.com" and "user@x.com" share one
// counter.
func (l *LoginLimiter) key(email, ip string) string {
	return "loginlimit:" + strings.ToLower(strings.TrimSpace(email)) + "|" + ip
}
