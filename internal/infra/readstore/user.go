package readstore

import (
	"context"

	"github.com/google/uuid"

	"concert-reservation/internal/infra"
	"concert-reservation/internal/infra/db"
	"concert-reservation/internal/pkg/pgconv"
	"concert-reservation/internal/usecase/queries"
)

const findUserByIDSQL = `
SELECT id, email, first_name, last_name, is_active, last_login
FROM users
WHERE id = $1`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&v.ID,
		&v.Email,
		&v.FirstName,
		&v.LastName,
		&v.IsActive,
		&v.LastLogin,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}
