//go:build unit

package lock_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"concert-reservation/internal/infra/lock"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLock(t *testing.T, opts ...lock.Option) (*miniredis.Miniredis, *lock.RedisLock) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return mr, lock.NewRedisLock(client, opts...)
}

func fastRetry(attempts int) lock.Option {
	return lock.WithRetryPolicy(lock.RetryPolicy{MaxAttempts: attempts, Delay: 5 * time.Millisecond})
}

func TestRedisLock_Acquire(t *testing.T) {
	ctx := context.Background()

	t.Run("success: writes prefixed key with token and ttl", func(t *testing.T) {
		mr, l := setupLock(t)

		token, ok, err := l.Acquire(ctx, "concert:1:reservation", 5*time.Second)
		require.NoError(t, err)
		require.True(t, ok)
		require.NotEmpty(t, token)

		stored, err := mr.Get("lock:concert:1:reservation")
		require.NoError(t, err)
		assert.Equal(t, token, stored)
		assert.Equal(t, 5*time.Second, mr.TTL("lock:concert:1:reservation"))
	})

	t.Run("contended: second acquire fails without error", func(t *testing.T) {
		_, l := setupLock(t)

		_, ok, err := l.Acquire(ctx, "k", time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		token, ok, err := l.Acquire(ctx, "k", time.Second)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, token)
	})

	t.Run("tokens are unique per acquisition", func(t *testing.T) {
		_, l := setupLock(t)

		first, ok, err := l.Acquire(ctx, "a", time.Second)
		require.NoError(t, err)
		require.True(t, ok)
		second, ok, err := l.Acquire(ctx, "b", time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		assert.NotEqual(t, first, second)
	})

	t.Run("expired lock can be re-acquired", func(t *testing.T) {
		mr, l := setupLock(t)

		_, ok, err := l.Acquire(ctx, "k", time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		mr.FastForward(2 * time.Second)

		_, ok, err = l.Acquire(ctx, "k", time.Second)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("zero ttl falls back to default", func(t *testing.T) {
		mr, l := setupLock(t)

		_, ok, err := l.Acquire(ctx, "k", 0)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, lock.DefaultTTL, mr.TTL("lock:k"))
	})

	t.Run("configured default ttl is used for zero ttl", func(t *testing.T) {
		mr, l := setupLock(t, lock.WithDefaultTTL(7*time.Second))

		_, ok, err := l.Acquire(ctx, "k", 0)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 7*time.Second, mr.TTL("lock:k"))
	})

	t.Run("error: empty key", func(t *testing.T) {
		_, l := setupLock(t)

		_, ok, err := l.Acquire(ctx, "", time.Second)
		assert.False(t, ok)
		assert.ErrorIs(t, err, lock.ErrEmptyKey)
	})

	t.Run("error: store unreachable is reported, not treated as held", func(t *testing.T) {
		mr, l := setupLock(t)
		mr.Close()

		_, ok, err := l.Acquire(ctx, "k", time.Second)
		assert.False(t, ok)
		assert.Error(t, err)
	})
}

func TestRedisLock_AcquireWithRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("exhaustion returns not acquired without error", func(t *testing.T) {
		_, l := setupLock(t)

		_, ok, err := l.Acquire(ctx, "k", 10*time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		start := time.Now()
		_, ok, err = l.AcquireWithRetry(ctx, "k", time.Second, lock.RetryPolicy{MaxAttempts: 3, Delay: 10 * time.Millisecond})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond, "should sleep between attempts")
	})

	t.Run("succeeds once holder releases", func(t *testing.T) {
		_, l := setupLock(t)

		holder, ok, err := l.Acquire(ctx, "k", 10*time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		go func() {
			time.Sleep(30 * time.Millisecond)
			_, _ = l.Release(context.Background(), "k", holder)
		}()

		token, ok, err := l.AcquireWithRetry(ctx, "k", time.Second, lock.RetryPolicy{MaxAttempts: 50, Delay: 10 * time.Millisecond})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NotEqual(t, holder, token)
	})

	t.Run("context cancellation aborts the wait", func(t *testing.T) {
		_, l := setupLock(t)

		_, ok, err := l.Acquire(ctx, "k", 10*time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		cctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		_, ok, err = l.AcquireWithRetry(cctx, "k", time.Second, lock.RetryPolicy{MaxAttempts: 1000, Delay: 10 * time.Millisecond})
		assert.False(t, ok)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestRedisLock_Release(t *testing.T) {
	ctx := context.Background()

	t.Run("owner releases", func(t *testing.T) {
		mr, l := setupLock(t)

		token, ok, err := l.Acquire(ctx, "k", time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		released, err := l.Release(ctx, "k", token)
		require.NoError(t, err)
		assert.True(t, released)
		assert.False(t, mr.Exists("lock:k"))
	})

	t.Run("stale token does not delete new holder's lock", func(t *testing.T) {
		mr, l := setupLock(t)

		stale, ok, err := l.Acquire(ctx, "k", time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		mr.FastForward(2 * time.Second)

		fresh, ok, err := l.Acquire(ctx, "k", time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		released, err := l.Release(ctx, "k", stale)
		require.NoError(t, err)
		assert.False(t, released)

		stored, err := mr.Get("lock:k")
		require.NoError(t, err)
		assert.Equal(t, fresh, stored)
	})

	t.Run("missing key returns false", func(t *testing.T) {
		_, l := setupLock(t)

		released, err := l.Release(ctx, "nothing", "token")
		require.NoError(t, err)
		assert.False(t, released)
	})
}

func TestRedisLock_Extend(t *testing.T) {
	ctx := context.Background()

	t.Run("owner extends ttl", func(t *testing.T) {
		mr, l := setupLock(t)

		token, ok, err := l.Acquire(ctx, "k", time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		extended, err := l.Extend(ctx, "k", token, 10*time.Second)
		require.NoError(t, err)
		assert.True(t, extended)
		assert.Equal(t, 10*time.Second, mr.TTL("lock:k"))
	})

	t.Run("wrong token cannot extend", func(t *testing.T) {
		mr, l := setupLock(t)

		_, ok, err := l.Acquire(ctx, "k", time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		extended, err := l.Extend(ctx, "k", "someone-else", 10*time.Second)
		require.NoError(t, err)
		assert.False(t, extended)
		assert.Equal(t, time.Second, mr.TTL("lock:k"))
	})
}

func TestRedisLock_IsLocked(t *testing.T) {
	ctx := context.Background()
	_, l := setupLock(t)

	locked, err := l.IsLocked(ctx, "k")
	require.NoError(t, err)
	assert.False(t, locked)

	token, ok, err := l.Acquire(ctx, "k", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	locked, err = l.IsLocked(ctx, "k")
	require.NoError(t, err)
	assert.True(t, locked)

	_, err = l.Release(ctx, "k", token)
	require.NoError(t, err)

	locked, err = l.IsLocked(ctx, "k")
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestRedisLock_ExecuteWithLock(t *testing.T) {
	ctx := context.Background()

	t.Run("runs body and releases", func(t *testing.T) {
		mr, l := setupLock(t)

		executed := false
		acquired, err := l.ExecuteWithLock(ctx, "k", time.Second, func(context.Context) error {
			executed = true
			assert.True(t, mr.Exists("lock:k"), "lock must be held while body runs")
			return nil
		})

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.True(t, executed)
		assert.False(t, mr.Exists("lock:k"))
	})

	t.Run("body error is propagated and lock still released", func(t *testing.T) {
		mr, l := setupLock(t)

		boom := errors.New("boom")
		acquired, err := l.ExecuteWithLock(ctx, "k", time.Second, func(context.Context) error {
			return boom
		})

		assert.True(t, acquired)
		assert.ErrorIs(t, err, boom)
		assert.False(t, mr.Exists("lock:k"))
	})

	t.Run("panic in body still releases", func(t *testing.T) {
		mr, l := setupLock(t)

		require.Panics(t, func() {
			_, _ = l.ExecuteWithLock(ctx, "k", time.Second, func(context.Context) error {
				panic("panic inside lock")
			})
		})
		assert.False(t, mr.Exists("lock:k"))
	})

	t.Run("not acquired is distinct from body failure", func(t *testing.T) {
		_, l := setupLock(t, fastRetry(2))

		_, ok, err := l.Acquire(ctx, "k", 10*time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		executed := false
		acquired, err := l.ExecuteWithLock(ctx, "k", time.Second, func(context.Context) error {
			executed = true
			return nil
		})

		require.NoError(t, err)
		assert.False(t, acquired)
		assert.False(t, executed)
	})

	t.Run("cancelled caller context still releases", func(t *testing.T) {
		mr, l := setupLock(t)

		cctx, cancel := context.WithCancel(ctx)
		acquired, err := l.ExecuteWithLock(cctx, "k", time.Second, func(context.Context) error {
			cancel()
			return nil
		})

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.False(t, mr.Exists("lock:k"))
	})
}

func TestRedisLock_MutualExclusion(t *testing.T) {
	_, l := setupLock(t, lock.WithRetryPolicy(lock.RetryPolicy{MaxAttempts: 200, Delay: 5 * time.Millisecond}))

	ctx := context.Background()
	var current, maxConcurrent, total int32

	const workers = 10
	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()

			acquired, err := l.ExecuteWithLock(ctx, "concert:shared:reservation", 5*time.Second, func(context.Context) error {
				active := atomic.AddInt32(&current, 1)
				for {
					seen := atomic.LoadInt32(&maxConcurrent)
					if active <= seen || atomic.CompareAndSwapInt32(&maxConcurrent, seen, active) {
						break
					}
				}
				atomic.AddInt32(&total, 1)
				time.Sleep(2 * time.Millisecond)
				atomic.AddInt32(&current, -1)
				return nil
			})
			if err != nil {
				errCh <- err
				return
			}
			if !acquired {
				errCh <- errors.New("lock not acquired")
			}
		}()
	}

	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Equal(t, int32(workers), total)
	assert.Equal(t, int32(1), maxConcurrent)
}

func TestRedisLock_Metrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	metrics := lock.NewMetrics(reg)
	_, l := setupLock(t, lock.WithMetrics(metrics), fastRetry(2))

	_, err := l.ExecuteWithLock(ctx, "k", time.Second, func(context.Context) error { return nil })
	require.NoError(t, err)

	_, ok, err := l.Acquire(ctx, "k", 10*time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	acquired, err := l.ExecuteWithLock(ctx, "k", time.Second, func(context.Context) error { return nil })
	require.NoError(t, err)
	require.False(t, acquired)

	for name, want := range map[string]int{
		"lock_acquire_total": 2, // acquired + contended
		"lock_release_total": 1,
		"lock_wait_seconds":  1,
	} {
		got, err := testutil.GatherAndCount(reg, name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}
