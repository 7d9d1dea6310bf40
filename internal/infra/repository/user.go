package repository

import (
	"context"
	"time"

	"concert-reservation/internal/domain/user"
	"concert-reservation/internal/infra"
	"concert-reservation/internal/infra/db"

	"github.com/google/uuid"
)

const (
	insertUserSQL = `
INSERT INTO users (id, email, password_hash, first_name, last_name, is_active)
VALUES ($1, $2, $3, $4, $5, $6)`

	updateUserLastLoginSQL = `UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1`
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, insertUserSQL,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.FirstName(),
		u.LastName(),
		u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, updateUserLastLoginSQL, userID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
