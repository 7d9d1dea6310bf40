//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"concert-reservation/internal/domain/reservation"
	"concert-reservation/internal/infra/lock"
	"concert-reservation/internal/pkg/clock"
	"concert-reservation/internal/pkg/errs"
	"concert-reservation/internal/usecase/commands"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLocker(t *testing.T) *lock.RedisLock {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return lock.NewRedisLock(client, lock.WithRetryPolicy(lock.RetryPolicy{
		MaxAttempts: 2000,
		Delay:       time.Millisecond,
	}))
}

type reserveOutcome struct {
	userID uuid.UUID
	result *commands.ReserveResult
	err    error
}

func reserveConcurrently(t *testing.T, cmds commands.ReservationCommands, concertID uuid.UUID, users []uuid.UUID) []reserveOutcome {
	t.Helper()

	outcomes := make([]reserveOutcome, len(users))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, userID := range users {
		wg.Add(1)
		go func(i int, userID uuid.UUID) {
			defer wg.Done()
			<-start
			result, err := cmds.Reserve(context.Background(), concertID, userID)
			outcomes[i] = reserveOutcome{userID: userID, result: result, err: err}
		}(i, userID)
	}
	close(start)
	wg.Wait()

	return outcomes
}

func newUsers(n int) []uuid.UUID {
	users := make([]uuid.UUID, n)
	for i := range users {
		users[i] = uuid.New()
	}
	return users
}

func TestReservationCommands_ConcurrentReserve(t *testing.T) {
	t.Run("同時予約でも座席は重複せず1から詰めて割り当てられる", func(t *testing.T) {
		store := newMemStore()
		concertID := store.addConcert(50)
		cmds := commands.NewReservationCommands(store, newRedisLocker(t), clock.NewRealClock())

		outcomes := reserveConcurrently(t, cmds, concertID, newUsers(30))

		seen := map[int]bool{}
		for _, o := range outcomes {
			require.NoError(t, o.err)
			assert.False(t, seen[o.result.SeatNumber], "seat %d assigned twice", o.result.SeatNumber)
			seen[o.result.SeatNumber] = true
		}

		want := make([]int, 30)
		for i := range want {
			want[i] = i + 1
		}
		assert.Equal(t, want, store.seats(concertID))
	})

	t.Run("定員を超える同時予約は満席エラーになる", func(t *testing.T) {
		store := newMemStore()
		concertID := store.addConcert(10)
		cmds := commands.NewReservationCommands(store, newRedisLocker(t), clock.NewRealClock())

		outcomes := reserveConcurrently(t, cmds, concertID, newUsers(25))

		succeeded, fullyBooked := 0, 0
		for _, o := range outcomes {
			switch {
			case o.err == nil:
				succeeded++
			case errs.Is(o.err, errs.ErrConcertFullyBooked):
				fullyBooked++
			default:
				t.Fatalf("unexpected error: %v", o.err)
			}
		}
		assert.Equal(t, 10, succeeded)
		assert.Equal(t, 15, fullyBooked)
		assert.Len(t, store.seats(concertID), 10)
	})

	t.Run("残り1席には1人だけが予約できる", func(t *testing.T) {
		store := newMemStore()
		concertID := store.addConcert(1)
		cmds := commands.NewReservationCommands(store, newRedisLocker(t), clock.NewRealClock())

		outcomes := reserveConcurrently(t, cmds, concertID, newUsers(8))

		var winners []reserveOutcome
		for _, o := range outcomes {
			if o.err == nil {
				winners = append(winners, o)
				continue
			}
			assert.True(t, errs.Is(o.err, errs.ErrConcertFullyBooked), "got %v", o.err)
		}
		require.Len(t, winners, 1)
		assert.Equal(t, 1, winners[0].result.SeatNumber)
	})

	t.Run("同一ユーザーの同時予約は1件だけ成功する", func(t *testing.T) {
		store := newMemStore()
		concertID := store.addConcert(10)
		cmds := commands.NewReservationCommands(store, newRedisLocker(t), clock.NewRealClock())

		userID := uuid.New()
		users := []uuid.UUID{userID, userID, userID, userID, userID}

		outcomes := reserveConcurrently(t, cmds, concertID, users)

		succeeded := 0
		for _, o := range outcomes {
			if o.err == nil {
				succeeded++
				continue
			}
			assert.True(t, errs.Is(o.err, errs.ErrAlreadyReserved), "got %v", o.err)
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, []int{1}, store.seats(concertID))
	})

	t.Run("予約とキャンセルが混在しても履歴は成功した操作と一致する", func(t *testing.T) {
		store := newMemStore()
		concertID := store.addConcert(5)
		cmds := commands.NewReservationCommands(store, newRedisLocker(t), clock.NewRealClock())

		users := newUsers(5)
		for _, o := range reserveConcurrently(t, cmds, concertID, users) {
			require.NoError(t, o.err)
		}

		var wg sync.WaitGroup
		for _, userID := range users[:3] {
			wg.Add(1)
			go func(userID uuid.UUID) {
				defer wg.Done()
				assert.NoError(t, cmds.Cancel(context.Background(), concertID, userID))
			}(userID)
		}
		wg.Wait()

		outcomes := reserveConcurrently(t, cmds, concertID, newUsers(4))
		succeeded := 0
		for _, o := range outcomes {
			if o.err == nil {
				succeeded++
			}
		}
		assert.Equal(t, 3, succeeded)

		reserved, cancelled := 0, 0
		for _, h := range store.journal(concertID) {
			switch h.Action() {
			case reservation.ActionReserved:
				reserved++
			case reservation.ActionCancelled:
				cancelled++
			}
		}
		assert.Equal(t, 8, reserved)
		assert.Equal(t, 3, cancelled)
		assert.Len(t, store.seats(concertID), 5)
	})
}
