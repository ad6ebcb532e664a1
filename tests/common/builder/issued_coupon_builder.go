//go:build unit || e2e

package builder

import (
	"time"

	"flash-coupon/internal/domain/issuance"
	sqlc "flash-coupon/internal/infra/sqlc/generated"
	"flash-coupon/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IssuedCouponBuilder struct {
	ID        uuid.UUID
	CouponID  uuid.UUID
	UserID    uuid.UUID
	Status    issuance.Status
	IssuedAt  time.Time
	UsedAt    *time.Time
	ExpiresAt time.Time
}

func NewIssuedCouponBuilder() *IssuedCouponBuilder {
	now := Now()
	return &IssuedCouponBuilder{
		ID:        uuid.New(),
		CouponID:  uuid.New(),
		UserID:    uuid.New(),
		Status:    issuance.StatusIssued,
		IssuedAt:  now.Add(-time.Minute),
		ExpiresAt: now.Add(24 * time.Hour),
	}
}

func (b *IssuedCouponBuilder) With(mutate func(*IssuedCouponBuilder)) *IssuedCouponBuilder {
	mutate(b)
	return b
}

func (b *IssuedCouponBuilder) WithUser(userID uuid.UUID) *IssuedCouponBuilder {
	b.UserID = userID
	return b
}

func (b *IssuedCouponBuilder) Used(at time.Time) *IssuedCouponBuilder {
	b.Status = issuance.StatusUsed
	b.UsedAt = &at
	return b
}

// Build methods
func (b *IssuedCouponBuilder) BuildDomain() *issuance.IssuedCoupon {
	return issuance.ReconstructIssuedCoupon(b.ID, b.CouponID, b.UserID, b.Status, b.IssuedAt, b.UsedAt, b.ExpiresAt)
}

func (b *IssuedCouponBuilder) BuildInfra() sqlc.IssuedCoupons {
	var usedAt pgtype.Timestamptz
	if b.UsedAt != nil {
		usedAt = pgtype.Timestamptz{Time: *b.UsedAt, Valid: true}
	}
	return sqlc.IssuedCoupons{
		ID:        b.ID,
		CouponID:  b.CouponID,
		UserID:    b.UserID,
		Status:    b.Status.String(),
		IssuedAt:  pgtype.Timestamptz{Time: b.IssuedAt, Valid: true},
		UsedAt:    usedAt,
		ExpiresAt: pgtype.Timestamptz{Time: b.ExpiresAt, Valid: true},
	}
}

func (b *IssuedCouponBuilder) BuildView() queries.IssuedCouponView {
	return queries.IssuedCouponView{
		ID:            b.ID,
		CouponID:      b.CouponID,
		CouponName:    "Spring Flash Sale",
		DiscountType:  "RATE",
		DiscountValue: 10,
		Status:        b.Status.String(),
		IssuedAt:      b.IssuedAt,
		UsedAt:        b.UsedAt,
		ExpiresAt:     b.ExpiresAt,
	}
}
