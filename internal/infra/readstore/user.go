package readstore

import (
	"context"

	"flash-coupon/internal/infra"
	sqlc "flash-coupon/internal/infra/sqlc/generated"
	"flash-coupon/internal/pkg/pgconv"
	"flash-coupon/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	ExistsUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.queries.ExistsUser(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}

func (r *UserReadStore) List(ctx context.Context) ([]queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.UserView{
			ID:        row.ID,
			Email:     row.Email,
			Name:      row.Name,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}
