package repository

import (
	"context"

	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/infra"
	sqlc "flash-coupon/internal/infra/sqlc/generated"
	"flash-coupon/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type IssuedCouponWriteQueries interface {
	CreateIssuedCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateIssuedCouponParams) (sqlc.IssuedCoupons, error)
	GetIssuedCouponByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.IssuedCoupons, error)
	MarkIssuedCouponUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkIssuedCouponUsedParams) (sqlc.IssuedCoupons, error)
}

type IssuedCouponRepository struct {
	queries IssuedCouponWriteQueries
	db      sqlc.DBTX
}

func NewIssuedCouponRepository(queries IssuedCouponWriteQueries, db sqlc.DBTX) *IssuedCouponRepository {
	return &IssuedCouponRepository{
		queries: queries,
		db:      db,
	}
}

// Create maps the (user_id, coupon_id) unique violation to KindDuplicateKey.
func (r *IssuedCouponRepository) Create(ctx context.Context, ic *issuance.IssuedCoupon) error {
	_, err := r.queries.CreateIssuedCoupon(ctx, r.db, sqlc.CreateIssuedCouponParams{
		ID:        ic.ID(),
		CouponID:  ic.CouponID(),
		UserID:    ic.UserID(),
		IssuedAt:  pgconv.TimeToPgtype(ic.IssuedAt()),
		ExpiresAt: pgconv.TimeToPgtype(ic.ExpiresAt()),
	})
	if err != nil {
		switch {
		case pgconv.IsUniqueViolation(err):
			return infra.WrapRepoErr("coupon already issued to user", err, infra.KindDuplicateKey)
		case pgconv.IsForeignKeyViolation(err):
			return infra.WrapRepoErr("coupon or user does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create issued coupon", err)
	}
	return nil
}

func (r *IssuedCouponRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*issuance.IssuedCoupon, error) {
	row, err := r.queries.GetIssuedCouponByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("issued coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find issued coupon by ID", err)
	}
	return toIssuedCouponDomain(row), nil
}

// MarkUsed only transitions rows still ISSUED; anything else reads as not found.
func (r *IssuedCouponRepository) MarkUsed(ctx context.Context, ic *issuance.IssuedCoupon) error {
	_, err := r.queries.MarkIssuedCouponUsed(ctx, r.db, sqlc.MarkIssuedCouponUsedParams{
		ID:     ic.ID(),
		UsedAt: pgconv.TimePtrToPgtype(ic.UsedAt()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("issued coupon not in ISSUED state", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to mark issued coupon used", err)
	}
	return nil
}

func toIssuedCouponDomain(row sqlc.IssuedCoupons) *issuance.IssuedCoupon {
	return issuance.ReconstructIssuedCoupon(
		row.ID,
		row.CouponID,
		row.UserID,
		issuance.Status(row.Status),
		pgconv.TimeFromPgtype(row.IssuedAt),
		pgconv.TimePtrFromPgtype(row.UsedAt),
		pgconv.TimeFromPgtype(row.ExpiresAt),
	)
}
