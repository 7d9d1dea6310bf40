package lock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"concert-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "lock:"

	DefaultTTL = 30 * time.Second

	// release must still reach the store after the caller's context is cancelled
	releaseTimeout = 2 * time.Second
)

// Token-checked delete. A holder whose lock expired and was re-acquired by
// someone else must not delete the new holder's record.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`)

var extendScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
else
	return 0
end
`)

var ErrEmptyKey = errs.New("lock key must not be empty")

type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// About a 5s ceiling under contention.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 100, Delay: 50 * time.Millisecond}
}

type RedisLock struct {
	client     redis.UniversalClient
	retry      RetryPolicy
	defaultTTL time.Duration
	metrics    *Metrics
	logger     *slog.Logger
	newToken   func() string
}

type Option func(*RedisLock)

func WithRetryPolicy(p RetryPolicy) Option {
	return func(l *RedisLock) {
		if p.MaxAttempts > 0 {
			l.retry.MaxAttempts = p.MaxAttempts
		}
		if p.Delay >= 0 {
			l.retry.Delay = p.Delay
		}
	}
}

// WithDefaultTTL sets the TTL used when a caller passes ttl <= 0.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(l *RedisLock) {
		if ttl > 0 {
			l.defaultTTL = ttl
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(l *RedisLock) { l.metrics = m }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *RedisLock) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewRedisLock(client redis.UniversalClient, opts ...Option) *RedisLock {
	l := &RedisLock{
		client:     client,
		retry:      DefaultRetryPolicy(),
		defaultTTL: DefaultTTL,
		logger:     slog.Default(),
		newToken:   newToken,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func newToken() string {
	return fmt.Sprintf("%d:%s", time.Now().UnixMilli(), uuid.NewString())
}

func storeKey(key string) string {
	return keyPrefix + key
}

// Acquire makes a single set-if-absent attempt. ok is false when another holder owns the key.
func (l *RedisLock) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	if ttl <= 0 {
		ttl = l.defaultTTL
	}

	token := l.newToken()
	ok, err := l.client.SetNX(ctx, storeKey(key), token, ttl).Result()
	if err != nil {
		return "", false, errs.Wrapf(err, "acquire lock %q", key)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// AcquireWithRetry polls Acquire. Exhausting the attempts is reported as ok=false
// with a nil error; only store failures and context cancellation are errors.
func (l *RedisLock) AcquireWithRetry(ctx context.Context, key string, ttl time.Duration, policy RetryPolicy) (string, bool, error) {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}

	start := time.Now()
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		token, ok, err := l.Acquire(ctx, key, ttl)
		if err != nil {
			l.metrics.observeAcquire(outcomeError, time.Since(start))
			return "", false, err
		}
		if ok {
			l.metrics.observeAcquire(outcomeAcquired, time.Since(start))
			return token, true, nil
		}
		if attempt == policy.MaxAttempts {
			break
		}

		timer := time.NewTimer(policy.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			l.metrics.observeAcquire(outcomeError, time.Since(start))
			return "", false, ctx.Err()
		case <-timer.C:
		}
	}

	l.metrics.observeAcquire(outcomeContended, time.Since(start))
	l.logger.Debug("lock not acquired", "key", key, "attempts", policy.MaxAttempts)
	return "", false, nil
}

// Release deletes the lock only if token still owns it.
func (l *RedisLock) Release(ctx context.Context, key, token string) (bool, error) {
	n, err := releaseScript.Run(ctx, l.client, []string{storeKey(key)}, token).Int64()
	if err != nil {
		l.metrics.observeRelease(outcomeError)
		return false, errs.Wrapf(err, "release lock %q", key)
	}
	if n == 0 {
		l.metrics.observeRelease(outcomeLost)
		return false, nil
	}
	l.metrics.observeRelease(outcomeReleased)
	return true, nil
}

// Extend resets the TTL if token still owns the lock.
func (l *RedisLock) Extend(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = l.defaultTTL
	}
	n, err := extendScript.Run(ctx, l.client, []string{storeKey(key)}, token, ttl.Milliseconds()).Int64()
	if err != nil {
		return false, errs.Wrapf(err, "extend lock %q", key)
	}
	return n == 1, nil
}

// IsLocked is advisory; the answer may be stale by the time it is used.
func (l *RedisLock) IsLocked(ctx context.Context, key string) (bool, error) {
	n, err := l.client.Exists(ctx, storeKey(key)).Result()
	if err != nil {
		return false, errs.Wrapf(err, "check lock %q", key)
	}
	return n > 0, nil
}

// ExecuteWithLock runs fn while holding key. acquired=false means fn never ran
// because the lock stayed contended for the whole retry policy. The lock is
// released on every exit path of fn, panics included. A failed release is
// logged and left to expire by TTL.
func (l *RedisLock) ExecuteWithLock(ctx context.Context, key string, ttl time.Duration, fn func(ctx context.Context) error) (acquired bool, err error) {
	token, ok, err := l.AcquireWithRetry(ctx, key, ttl, l.retry)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	defer l.releaseDetached(ctx, key, token)

	return true, fn(ctx)
}

func (l *RedisLock) releaseDetached(ctx context.Context, key, token string) {
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	released, err := l.Release(rctx, key, token)
	switch {
	case err != nil:
		l.logger.Warn("failed to release lock, leaving it to expire", "key", key, "error", err.Error())
	case !released:
		l.logger.Warn("lock expired before release", "key", key)
	}
}
