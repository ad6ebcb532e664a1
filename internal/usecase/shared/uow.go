package shared

import (
	"context"

	"flash-coupon/internal/domain/coupon"
	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/domain/user"
	sqlc "flash-coupon/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Coupons() CouponRepository
	IssuedCoupons() IssuedCouponRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	CouponByID(ctx context.Context, id uuid.UUID) (*CouponSnapshot, error)
	AllCoupons(ctx context.Context) ([]CouponSnapshot, error)
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
	LedgerAggregate(ctx context.Context, couponID uuid.UUID) (LedgerAggregate, error)
}

type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	Update(ctx context.Context, c *coupon.Coupon) error
}

type IssuedCouponRepository interface {
	Create(ctx context.Context, ic *issuance.IssuedCoupon) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*issuance.IssuedCoupon, error)
	MarkUsed(ctx context.Context, ic *issuance.IssuedCoupon) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
}
