package issuance

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotOwner      = errors.New("issued coupon belongs to another user")
	ErrAlreadyUsed   = errors.New("issued coupon has already been used")
	ErrExpired       = errors.New("issued coupon has expired")
	ErrInvalidStatus = errors.New("status must be ISSUED, USED or EXPIRED")
)

// IssuedCoupon is one ledger row: a coupon handed to a user.
// ISSUED moves to USED exactly once; EXPIRED is derived from expiresAt at check time.
type IssuedCoupon struct {
	id        uuid.UUID
	couponID  uuid.UUID
	userID    uuid.UUID
	status    Status
	issuedAt  time.Time
	usedAt    *time.Time
	expiresAt time.Time
}

func NewIssuedCoupon(couponID, userID uuid.UUID, issuedAt, expiresAt time.Time) *IssuedCoupon {
	return &IssuedCoupon{
		id:        uuid.New(),
		couponID:  couponID,
		userID:    userID,
		status:    StatusIssued,
		issuedAt:  issuedAt,
		expiresAt: expiresAt,
	}
}

func ReconstructIssuedCoupon(
	id, couponID, userID uuid.UUID,
	status Status,
	issuedAt time.Time,
	usedAt *time.Time,
	expiresAt time.Time,
) *IssuedCoupon {
	return &IssuedCoupon{
		id:        id,
		couponID:  couponID,
		userID:    userID,
		status:    status,
		issuedAt:  issuedAt,
		usedAt:    usedAt,
		expiresAt: expiresAt,
	}
}

func (ic *IssuedCoupon) IsExpiredAt(now time.Time) bool {
	return ic.status == StatusExpired || now.After(ic.expiresAt)
}

// Use redeems the coupon for userID. Checks run owner, used, expired in that order.
func (ic *IssuedCoupon) Use(userID uuid.UUID, now time.Time) error {
	if ic.userID != userID {
		return ErrNotOwner
	}
	if ic.status == StatusUsed {
		return ErrAlreadyUsed
	}
	if ic.IsExpiredAt(now) {
		return ErrExpired
	}

	ic.status = StatusUsed
	ic.usedAt = &now
	return nil
}

func (ic *IssuedCoupon) ID() uuid.UUID        { return ic.id }
func (ic *IssuedCoupon) CouponID() uuid.UUID  { return ic.couponID }
func (ic *IssuedCoupon) UserID() uuid.UUID    { return ic.userID }
func (ic *IssuedCoupon) Status() Status       { return ic.status }
func (ic *IssuedCoupon) IssuedAt() time.Time  { return ic.issuedAt }
func (ic *IssuedCoupon) UsedAt() *time.Time   { return ic.usedAt }
func (ic *IssuedCoupon) ExpiresAt() time.Time { return ic.expiresAt }
