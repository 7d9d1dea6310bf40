//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"concert-reservation/internal/domain/user"
	"concert-reservation/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		tag      pgconn.CommandTag
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			tag:  pgconn.NewCommandTag("UPDATE 1"),
		},
		{
			name:     "user not found",
			tag:      pgconn.NewCommandTag("UPDATE 0"),
			wantKind: infra.KindNotFound,
		},
		{
			name:     "database error",
			tag:      pgconn.CommandTag{},
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := new(MockDBTX)
			mockDB.On("Exec", mock.Anything, updateUserLastLoginSQL, []any{testUserID, at}).
				Return(tt.tag, tt.mockErr)

			repo := NewUserRepository(mockDB)
			err := repo.UpdateLastLogin(context.Background(), testUserID, at)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			mockDB.AssertExpectations(t)
		})
	}
}

func TestCreateUser(t *testing.T) {
	email, err := user.NewEmail("Taro@Example.com")
	require.NoError(t, err)
	u, err := user.NewUser(email, "$2a$10$hash", "Taro", "Yamada")
	require.NoError(t, err)

	t.Run("success: writes normalized email", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("Exec", mock.Anything, insertUserSQL,
			[]any{u.ID(), "taro@example.com", "$2a$10$hash", "Taro", "Yamada", true}).
			Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

		require.NoError(t, NewUserRepository(mockDB).Create(context.Background(), u))
		mockDB.AssertExpectations(t)
	})

	t.Run("error: duplicate email", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("Exec", mock.Anything, insertUserSQL, mock.Anything).
			Return(pgconn.CommandTag{}, uniqueViolation("users_email_key"))

		err := NewUserRepository(mockDB).Create(context.Background(), u)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "users_email_key", infra.ViolatedConstraint(err))
	})
}
