package queries

import (
	"time"

	"github.com/google/uuid"
)

// CouponView represents read-optimized coupon data
type CouponView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	DiscountType  string    `json:"discountType"`
	DiscountValue int32     `json:"discountValue"`
	TotalQuantity int32     `json:"totalQuantity"`
	StartAt       time.Time `json:"startAt"`
	EndAt         time.Time `json:"endAt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CouponStats combines ledger counts with the live Redis counter
type CouponStats struct {
	CouponID       uuid.UUID `json:"couponId"`
	IssuedCount    int64     `json:"issuedCount"`
	UsedCount      int64     `json:"usedCount"`
	ExpiredCount   int64     `json:"expiredCount"`
	RemainingCount int64     `json:"remainingCount"`
}

type CouponWithStatsView struct {
	CouponView
	Stats CouponStats `json:"stats"`
}

// IssuedCouponView is one ledger row joined with its coupon's terms
type IssuedCouponView struct {
	ID            uuid.UUID  `json:"id"`
	CouponID      uuid.UUID  `json:"couponId"`
	CouponName    string     `json:"couponName"`
	DiscountType  string     `json:"discountType"`
	DiscountValue int32      `json:"discountValue"`
	Status        string     `json:"status"`
	IssuedAt      time.Time  `json:"issuedAt"`
	UsedAt        *time.Time `json:"usedAt"`
	ExpiresAt     time.Time  `json:"expiresAt"`
	IsExpired     bool       `json:"isExpired"`
}

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type IssuedCouponPage struct {
	Items []IssuedCouponView `json:"data"`
	Meta  PageMeta           `json:"meta"`
}

// UserView represents read-optimized user data
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
