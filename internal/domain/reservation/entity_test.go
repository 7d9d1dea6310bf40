//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"concert-reservation/internal/domain/reservation"
	"concert-reservation/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(now time.Time) *reservation.Services {
	return &reservation.Services{Clock: clock.NewMockClock(now)}
}

func TestNewReservation(t *testing.T) {
	now := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	concertID := uuid.New()
	userID := uuid.New()

	t.Run("基本成功ケース", func(t *testing.T) {
		r, err := reservation.NewReservation(newServices(now), concertID, userID, 7)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, concertID, r.ConcertID())
		assert.Equal(t, userID, r.UserID())
		assert.Equal(t, reservation.SeatNumber(7), r.SeatNumber())
		assert.Equal(t, now, r.CreatedAt())
	})

	tests := []struct {
		name      string
		concertID uuid.UUID
		userID    uuid.UUID
		seat      reservation.SeatNumber
		errIs     error
	}{
		{name: "コンサートID無しNG", concertID: uuid.Nil, userID: userID, seat: 1, errIs: reservation.ErrInvalidConcertID},
		{name: "ユーザーID無しNG", concertID: concertID, userID: uuid.Nil, seat: 1, errIs: reservation.ErrInvalidUserID},
		{name: "座席番号0NG", concertID: concertID, userID: userID, seat: 0, errIs: reservation.ErrInvalidSeatNumber},
		{name: "負の座席番号NG", concertID: concertID, userID: userID, seat: -3, errIs: reservation.ErrInvalidSeatNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := reservation.NewReservation(newServices(now), tt.concertID, tt.userID, tt.seat)

			require.Nil(t, r)
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestReservationHistory(t *testing.T) {
	now := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	mockClock := clock.NewMockClock(now)
	services := &reservation.Services{Clock: mockClock}

	r, err := reservation.NewReservation(services, uuid.New(), uuid.New(), 3)
	require.NoError(t, err)

	reserved := r.Reserved(services)
	mockClock.Add(time.Minute)
	cancelled := r.Cancelled(services)

	for _, h := range []*reservation.HistoryEntry{reserved, cancelled} {
		assert.Equal(t, r.ConcertID(), h.ConcertID())
		assert.Equal(t, r.UserID(), h.UserID())
		assert.Equal(t, r.SeatNumber(), h.SeatNumber())
	}
	assert.Equal(t, reservation.ActionReserved, reserved.Action())
	assert.Equal(t, reservation.ActionCancelled, cancelled.Action())
	assert.Equal(t, now, reserved.CreatedAt())
	assert.Equal(t, now.Add(time.Minute), cancelled.CreatedAt())
	assert.NotEqual(t, reserved.ID(), cancelled.ID())
}
