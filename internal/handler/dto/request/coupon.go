package request

import (
	"time"

	"flash-coupon/internal/domain/coupon"
	"flash-coupon/internal/usecase/commands"
)

type CreateCouponRequest struct {
	Name          string    `json:"name" binding:"required,max=100"`
	Type          string    `json:"type" binding:"required,oneof=FCFS LOTTERY CODE"`
	DiscountType  string    `json:"discountType" binding:"required,oneof=RATE AMOUNT"`
	DiscountValue int32     `json:"discountValue" binding:"required,min=1"`
	TotalQuantity int32     `json:"totalQuantity" binding:"required,min=1"`
	StartAt       time.Time `json:"startAt" binding:"required"`
	EndAt         time.Time `json:"endAt" binding:"required,gtfield=StartAt"`
}

func (r *CreateCouponRequest) ToCommand() commands.CreateCouponRequest {
	return commands.CreateCouponRequest{
		Name:          r.Name,
		Type:          r.Type,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		TotalQuantity: r.TotalQuantity,
		StartAt:       r.StartAt,
		EndAt:         r.EndAt,
	}
}

// UpdateCouponRequest has no totalQuantity or type: both are fixed once a coupon exists.
type UpdateCouponRequest struct {
	Name          *string    `json:"name" binding:"omitempty,max=100"`
	DiscountType  *string    `json:"discountType" binding:"omitempty,oneof=RATE AMOUNT"`
	DiscountValue *int32     `json:"discountValue" binding:"omitempty,min=1"`
	StartAt       *time.Time `json:"startAt"`
	EndAt         *time.Time `json:"endAt"`
}

func (r *UpdateCouponRequest) ToDomain() coupon.UpdateCoupon {
	return coupon.UpdateCoupon{
		Name:          r.Name,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		StartAt:       r.StartAt,
		EndAt:         r.EndAt,
	}
}
