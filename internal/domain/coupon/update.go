package coupon

import (
	"time"

	"flash-coupon/internal/pkg/patch"
)

// UpdateCoupon lists every field an admin may change. Supply and type are fixed at creation.
type UpdateCoupon struct {
	Name          *string
	DiscountType  *string
	DiscountValue *int32
	StartAt       *time.Time
	EndAt         *time.Time
}

func (u UpdateCoupon) IsEmpty() bool {
	return u.Name == nil && u.DiscountType == nil && u.DiscountValue == nil &&
		u.StartAt == nil && u.EndAt == nil
}

// Apply validates the merged state before mutating; on error c is unchanged.
func (c *Coupon) Apply(u UpdateCoupon, now time.Time) error {
	name := c.name
	if u.Name != nil {
		n, err := NewName(*u.Name)
		if err != nil {
			return err
		}
		name = n
	}

	kind := c.discount.kind
	if u.DiscountType != nil {
		dt, err := NewDiscountType(*u.DiscountType)
		if err != nil {
			return err
		}
		kind = dt
	}
	discount, err := NewDiscount(kind, patch.Coalesce(u.DiscountValue, c.discount.value))
	if err != nil {
		return err
	}

	startAt := patch.Coalesce(u.StartAt, c.startAt)
	endAt := patch.Coalesce(u.EndAt, c.endAt)
	if !startAt.Before(endAt) {
		return ErrInvalidDateRange
	}

	c.name = name
	c.discount = discount
	c.startAt = startAt
	c.endAt = endAt
	c.updatedAt = now
	return nil
}
