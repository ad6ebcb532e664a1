package request

import "github.com/google/uuid"

type IssueCouponRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}

type UseCouponRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}

type MyCouponsQuery struct {
	UserID string `form:"userId" binding:"required,uuid"`
	Status string `form:"status" binding:"omitempty,oneof=ISSUED USED EXPIRED"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
