//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"concert-reservation/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDBTX implements db.DBTX
type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// fakeRow copies values into Scan destinations positionally.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = r.values[i].(uuid.UUID)
		case *string:
			*p = r.values[i].(string)
		case *bool:
			*p = r.values[i].(bool)
		case *int:
			*p = r.values[i].(int)
		case **time.Time:
			*p = r.values[i].(*time.Time)
		}
	}
	return nil
}

func TestFindByID(t *testing.T) {
	userID := uuid.New()
	lastLogin := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		row       fakeRow
		wantUser  bool
		wantError infra.RepositoryErrorKind
	}{
		{
			name:     "success - active user",
			row:      fakeRow{values: []any{userID, "taro@example.com", "Taro", "Yamada", true, &lastLogin}},
			wantUser: true,
		},
		{
			name:     "success - inactive user (for validation)",
			row:      fakeRow{values: []any{userID, "taro@example.com", "Taro", "Yamada", false, (*time.Time)(nil)}},
			wantUser: true,
		},
		{
			name:      "user not found",
			row:       fakeRow{err: pgx.ErrNoRows},
			wantError: infra.KindNotFound,
		},
		{
			name:      "user not found via database/sql sentinel",
			row:       fakeRow{err: sql.ErrNoRows},
			wantError: infra.KindNotFound,
		},
		{
			name:      "database error",
			row:       fakeRow{err: assert.AnError},
			wantError: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := new(MockDBTX)
			mockDB.On("QueryRow", mock.Anything, findUserByIDSQL, []any{userID}).Return(tt.row)

			view, err := NewUserReadStore(mockDB).FindByID(context.Background(), userID)

			if tt.wantError != "" {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantError), "got %v", err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, userID, view.ID)
				assert.Equal(t, "taro@example.com", view.Email)
				assert.Equal(t, tt.row.values[4], view.IsActive)
				assert.Equal(t, tt.row.values[5], view.LastLogin)
			}
			mockDB.AssertExpectations(t)
		})
	}
}

func TestUserCredentialsByEmail(t *testing.T) {
	userID := uuid.New()

	t.Run("success - returns hash for verification", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("QueryRow", mock.Anything, findUserCredentialsByEmailSQL, []any{"taro@example.com"}).
			Return(fakeRow{values: []any{userID, "taro@example.com", "$2a$10$hash", true}})

		creds, err := NewCommandReadStore(mockDB).UserCredentialsByEmail(context.Background(), "taro@example.com")

		assert.NoError(t, err)
		assert.Equal(t, userID, creds.ID)
		assert.Equal(t, "$2a$10$hash", creds.PasswordHash)
		assert.True(t, creds.IsActive)
	})

	t.Run("user not found", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("QueryRow", mock.Anything, findUserCredentialsByEmailSQL, mock.Anything).
			Return(fakeRow{err: pgx.ErrNoRows})

		creds, err := NewCommandReadStore(mockDB).UserCredentialsByEmail(context.Background(), "missing@example.com")

		assert.Nil(t, creds)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestActiveConcertByID(t *testing.T) {
	concertID := uuid.New()
	creatorID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("QueryRow", mock.Anything, findActiveConcertSnapshotSQL, []any{concertID}).
			Return(fakeRow{values: []any{concertID, "Summer Live", 120, creatorID}})

		snap, err := NewCommandReadStore(mockDB).ActiveConcertByID(context.Background(), concertID)

		assert.NoError(t, err)
		assert.Equal(t, 120, snap.TotalSeats)
		assert.Equal(t, creatorID, snap.CreatorID)
	})

	t.Run("soft-deleted or missing concert", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("QueryRow", mock.Anything, findActiveConcertSnapshotSQL, []any{concertID}).
			Return(fakeRow{err: pgx.ErrNoRows})

		_, err := NewCommandReadStore(mockDB).ActiveConcertByID(context.Background(), concertID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("count failure is a db failure", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("QueryRow", mock.Anything, countReservationsByConcertSQL, []any{concertID}).
			Return(fakeRow{err: assert.AnError})

		n, err := NewCommandReadStore(mockDB).CountReservations(context.Background(), concertID)
		assert.Zero(t, n)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
