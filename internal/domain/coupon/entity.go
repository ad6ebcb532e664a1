package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponNotStarted     = errors.New("coupon issuance has not started")
	ErrCouponExpired        = errors.New("coupon issuance has ended")
	ErrInvalidDateRange     = errors.New("startAt must be before endAt")
	ErrInvalidTotalQuantity = errors.New("total quantity must be at least 1")
)

// Coupon is an offer with a fixed supply handed out during [startAt, endAt].
type Coupon struct {
	id            uuid.UUID
	name          Name
	couponType    Type
	discount      Discount
	totalQuantity int32
	startAt       time.Time
	endAt         time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewCoupon(
	name, couponType, discountType string,
	discountValue, totalQuantity int32,
	startAt, endAt, now time.Time,
) (*Coupon, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	t, err := NewType(couponType)
	if err != nil {
		return nil, err
	}
	dt, err := NewDiscountType(discountType)
	if err != nil {
		return nil, err
	}
	discount, err := NewDiscount(dt, discountValue)
	if err != nil {
		return nil, err
	}
	if totalQuantity < 1 {
		return nil, ErrInvalidTotalQuantity
	}
	if !startAt.Before(endAt) {
		return nil, ErrInvalidDateRange
	}

	return &Coupon{
		id:            uuid.New(),
		name:          n,
		couponType:    t,
		discount:      discount,
		totalQuantity: totalQuantity,
		startAt:       startAt,
		endAt:         endAt,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructCoupon(
	id uuid.UUID,
	name, couponType, discountType string,
	discountValue, totalQuantity int32,
	startAt, endAt, createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:            id,
		name:          Name(name),
		couponType:    Type(couponType),
		discount:      Discount{kind: DiscountType(discountType), value: discountValue},
		totalQuantity: totalQuantity,
		startAt:       startAt,
		endAt:         endAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ValidateWindow is inclusive at both ends.
func (c *Coupon) ValidateWindow(now time.Time) error {
	if now.Before(c.startAt) {
		return ErrCouponNotStarted
	}
	if now.After(c.endAt) {
		return ErrCouponExpired
	}
	return nil
}

// Remaining derives the counter value from how many ledger rows exist.
func (c *Coupon) Remaining(allocated int64) int64 {
	return max(0, int64(c.totalQuantity)-allocated)
}

func (c *Coupon) ID() uuid.UUID        { return c.id }
func (c *Coupon) Name() Name           { return c.name }
func (c *Coupon) Type() Type           { return c.couponType }
func (c *Coupon) Discount() Discount   { return c.discount }
func (c *Coupon) TotalQuantity() int32 { return c.totalQuantity }
func (c *Coupon) StartAt() time.Time   { return c.startAt }
func (c *Coupon) EndAt() time.Time     { return c.endAt }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time { return c.updatedAt }
