package readstore

import (
	"context"

	"flash-coupon/internal/infra"
	sqlc "flash-coupon/internal/infra/sqlc/generated"
	"flash-coupon/internal/pkg/pgconv"
	"flash-coupon/internal/usecase/queries"

	"github.com/google/uuid"
)

type IssuedCouponReadQueries interface {
	ListIssuedCouponsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListIssuedCouponsByUserParams) ([]sqlc.ListIssuedCouponsByUserRow, error)
	CountIssuedCouponsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CountIssuedCouponsByUserParams) (int64, error)
}

type IssuedCouponReadStore struct {
	queries IssuedCouponReadQueries
	db      sqlc.DBTX
}

func NewIssuedCouponReadStore(queries IssuedCouponReadQueries, db sqlc.DBTX) *IssuedCouponReadStore {
	return &IssuedCouponReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByUser returns rows newest first. IsExpired is left for the caller to derive.
func (r *IssuedCouponReadStore) ListByUser(ctx context.Context, userID uuid.UUID, status *string, offset, limit int) ([]queries.IssuedCouponView, error) {
	rows, err := r.queries.ListIssuedCouponsByUser(ctx, r.db, sqlc.ListIssuedCouponsByUserParams{
		UserID: userID,
		Status: pgconv.StringPtrToPgtype(status),
		Offset: int32(offset), // #nosec G115 -- capped at queries.MaxOffset
		Limit:  int32(limit),  // #nosec G115 -- bounded by MaxLimit
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list issued coupons", err)
	}

	views := make([]queries.IssuedCouponView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.IssuedCouponView{
			ID:            row.ID,
			CouponID:      row.CouponID,
			CouponName:    row.CouponName,
			DiscountType:  row.DiscountType,
			DiscountValue: row.DiscountValue,
			Status:        row.Status,
			IssuedAt:      pgconv.TimeFromPgtype(row.IssuedAt),
			UsedAt:        pgconv.TimePtrFromPgtype(row.UsedAt),
			ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
		})
	}
	return views, nil
}

func (r *IssuedCouponReadStore) CountByUser(ctx context.Context, userID uuid.UUID, status *string) (int64, error) {
	count, err := r.queries.CountIssuedCouponsByUser(ctx, r.db, sqlc.CountIssuedCouponsByUserParams{
		UserID: userID,
		Status: pgconv.StringPtrToPgtype(status),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count issued coupons", err)
	}
	return count, nil
}
