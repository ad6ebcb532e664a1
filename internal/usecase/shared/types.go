package shared

import (
	"time"

	"flash-coupon/internal/domain/coupon"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type CouponSnapshot struct {
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

func (s CouponSnapshot) ToDomain() *coupon.Coupon {
	return coupon.ReconstructCoupon(
		s.ID, s.Name, s.Type, s.DiscountType,
		s.DiscountValue, s.TotalQuantity,
		s.StartAt, s.EndAt, s.CreatedAt, s.UpdatedAt,
	)
}

// LedgerAggregate counts ledger rows of one coupon by status.
type LedgerAggregate struct {
	Issued  int64
	Used    int64
	Expired int64
}

// Total is every allocation the ledger knows about, whatever its status.
func (a LedgerAggregate) Total() int64 {
	return a.Issued + a.Used + a.Expired
}
