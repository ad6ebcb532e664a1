//go:build unit || e2e

package builder

import (
	"time"

	"flash-coupon/internal/domain/coupon"
	reqdto "flash-coupon/internal/handler/dto/request"
	sqlc "flash-coupon/internal/infra/sqlc/generated"
	"flash-coupon/internal/usecase/commands"
	"flash-coupon/internal/usecase/queries"
	"flash-coupon/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponBuilder struct {
	ID            uuid.UUID
	Name          string
	Type          string
	DiscountType  string
	DiscountValue int32
	TotalQuantity int32
	StartAt       time.Time
	EndAt         time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCouponBuilder returns a coupon whose window is open around Now.
func NewCouponBuilder() *CouponBuilder {
	now := Now()
	return &CouponBuilder{
		ID:            uuid.New(),
		Name:          "Spring Flash Sale",
		Type:          "FCFS",
		DiscountType:  "RATE",
		DiscountValue: 10,
		TotalQuantity: 100,
		StartAt:       now.Add(-time.Hour),
		EndAt:         now.Add(24 * time.Hour),
		CreatedAt:     now.Add(-2 * time.Hour),
		UpdatedAt:     now.Add(-2 * time.Hour),
	}
}

// Now is the fixed instant builders are anchored to.
func Now() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) WithQuantity(n int32) *CouponBuilder {
	b.TotalQuantity = n
	return b
}

func (b *CouponBuilder) WithWindow(startAt, endAt time.Time) *CouponBuilder {
	b.StartAt = startAt
	b.EndAt = endAt
	return b
}

// Build methods
func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(
		b.Name, b.Type, b.DiscountType,
		b.DiscountValue, b.TotalQuantity,
		b.StartAt, b.EndAt, b.CreatedAt,
	)
}

func (b *CouponBuilder) BuildReconstructed() *coupon.Coupon {
	return coupon.ReconstructCoupon(
		b.ID, b.Name, b.Type, b.DiscountType,
		b.DiscountValue, b.TotalQuantity,
		b.StartAt, b.EndAt, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *CouponBuilder) BuildInfra() sqlc.Coupons {
	return sqlc.Coupons{
		ID:            b.ID,
		Name:          b.Name,
		Type:          b.Type,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		TotalQuantity: b.TotalQuantity,
		StartAt:       pgtype.Timestamptz{Time: b.StartAt, Valid: true},
		EndAt:         pgtype.Timestamptz{Time: b.EndAt, Valid: true},
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:            b.ID,
		Name:          b.Name,
		Type:          b.Type,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		TotalQuantity: b.TotalQuantity,
		StartAt:       b.StartAt,
		EndAt:         b.EndAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *CouponBuilder) BuildView() queries.CouponView {
	return queries.CouponView{
		ID:            b.ID,
		Name:          b.Name,
		Type:          b.Type,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		TotalQuantity: b.TotalQuantity,
		StartAt:       b.StartAt,
		EndAt:         b.EndAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *CouponBuilder) BuildCommand() commands.CreateCouponRequest {
	return commands.CreateCouponRequest{
		Name:          b.Name,
		Type:          b.Type,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		TotalQuantity: b.TotalQuantity,
		StartAt:       b.StartAt,
		EndAt:         b.EndAt,
	}
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Name:          b.Name,
		Type:          b.Type,
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		TotalQuantity: b.TotalQuantity,
		StartAt:       b.StartAt,
		EndAt:         b.EndAt,
	}
}
