package writerepo

import (
	"context"

	"localshop-api/internal/domain/user"
	"localshop-api/internal/infra"
	"localshop-api/internal/infra/db"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO users (id, name, email, phone, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
		u.ID(), u.Name(), u.Email().Value(), u.Phone().Value(), u.PasswordHash(), u.Role().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err, classifyPgErr(err))
	}
	return nil
}
