package readstore

import (
	"context"

	"flash-coupon/internal/infra"
	sqlc "flash-coupon/internal/infra/sqlc/generated"
	"flash-coupon/internal/pkg/pgconv"
	"flash-coupon/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponReadQueries interface {
	GetCouponByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Coupons, error)
	ListCoupons(ctx context.Context, db sqlc.DBTX) ([]sqlc.Coupons, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	row, err := r.queries.GetCouponByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}

	view := toCouponView(row)
	return &view, nil
}

func (r *CouponReadStore) List(ctx context.Context) ([]queries.CouponView, error) {
	rows, err := r.queries.ListCoupons(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}

	views := make([]queries.CouponView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toCouponView(row))
	}
	return views, nil
}

func toCouponView(row sqlc.Coupons) queries.CouponView {
	return queries.CouponView{
		ID:            row.ID,
		Name:          row.Name,
		Type:          row.Type,
		DiscountType:  row.DiscountType,
		DiscountValue: row.DiscountValue,
		TotalQuantity: row.TotalQuantity,
		StartAt:       pgconv.TimeFromPgtype(row.StartAt),
		EndAt:         pgconv.TimeFromPgtype(row.EndAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
