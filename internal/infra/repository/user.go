package repository

import (
	"context"

	"flash-coupon/internal/domain/user"
	"flash-coupon/internal/infra"
	sqlc "flash-coupon/internal/infra/sqlc/generated"
	"flash-coupon/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.queries.CreateUser(ctx, r.db, sqlc.CreateUserParams{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Name:      u.Name().String(),
		CreatedAt: pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}
