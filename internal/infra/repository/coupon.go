package repository

import (
	"context"

	"flash-coupon/internal/domain/coupon"
	"flash-coupon/internal/infra"
	sqlc "flash-coupon/internal/infra/sqlc/generated"
	"flash-coupon/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CouponWriteQueries interface {
	CreateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponParams) (sqlc.Coupons, error)
	GetCouponByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Coupons, error)
	UpdateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCouponParams) (sqlc.Coupons, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	_, err := r.queries.CreateCoupon(ctx, r.db, sqlc.CreateCouponParams{
		ID:            c.ID(),
		Name:          c.Name().String(),
		Type:          c.Type().String(),
		DiscountType:  c.Discount().Type().String(),
		DiscountValue: c.Discount().Value(),
		TotalQuantity: c.TotalQuantity(),
		StartAt:       pgconv.TimeToPgtype(c.StartAt()),
		EndAt:         pgconv.TimeToPgtype(c.EndAt()),
		CreatedAt:     pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(c.UpdatedAt()),
	})
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("coupon already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *CouponRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return toCouponDomain(row), nil
}

func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	_, err := r.queries.UpdateCoupon(ctx, r.db, sqlc.UpdateCouponParams{
		ID:            c.ID(),
		Name:          c.Name().String(),
		DiscountType:  c.Discount().Type().String(),
		DiscountValue: c.Discount().Value(),
		StartAt:       pgconv.TimeToPgtype(c.StartAt()),
		EndAt:         pgconv.TimeToPgtype(c.EndAt()),
		UpdatedAt:     pgconv.TimeToPgtype(c.UpdatedAt()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	return nil
}

func toCouponDomain(row sqlc.Coupons) *coupon.Coupon {
	return coupon.ReconstructCoupon(
		row.ID,
		row.Name,
		row.Type,
		row.DiscountType,
		row.DiscountValue,
		row.TotalQuantity,
		pgconv.TimeFromPgtype(row.StartAt),
		pgconv.TimeFromPgtype(row.EndAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
