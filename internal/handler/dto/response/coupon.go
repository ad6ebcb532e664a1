package response

import (
	"time"

	"flash-coupon/internal/domain/coupon"
	"flash-coupon/internal/usecase/queries"
)

type CouponResponse struct {
	ID            string    `json:"id"`
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

func FromCoupon(c *coupon.Coupon) *CouponResponse {
	return &CouponResponse{
		ID:            c.ID().String(),
		Name:          c.Name().String(),
		Type:          c.Type().String(),
		DiscountType:  c.Discount().Type().String(),
		DiscountValue: c.Discount().Value(),
		TotalQuantity: c.TotalQuantity(),
		StartAt:       c.StartAt(),
		EndAt:         c.EndAt(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

type CouponStatsResponse struct {
	IssuedCount    int64 `json:"issuedCount"`
	UsedCount      int64 `json:"usedCount"`
	ExpiredCount   int64 `json:"expiredCount"`
	RemainingCount int64 `json:"remainingCount"`
}

func FromCouponStats(s *queries.CouponStats) *CouponStatsResponse {
	return &CouponStatsResponse{
		IssuedCount:    s.IssuedCount,
		UsedCount:      s.UsedCount,
		ExpiredCount:   s.ExpiredCount,
		RemainingCount: s.RemainingCount,
	}
}

type CouponWithStatsResponse struct {
	CouponResponse
	Stats CouponStatsResponse `json:"stats"`
}

func FromCouponWithStats(v *queries.CouponWithStatsView) *CouponWithStatsResponse {
	return &CouponWithStatsResponse{
		CouponResponse: CouponResponse{
			ID:            v.ID.String(),
			Name:          v.Name,
			Type:          v.Type,
			DiscountType:  v.DiscountType,
			DiscountValue: v.DiscountValue,
			TotalQuantity: v.TotalQuantity,
			StartAt:       v.StartAt,
			EndAt:         v.EndAt,
			CreatedAt:     v.CreatedAt,
			UpdatedAt:     v.UpdatedAt,
		},
		Stats: *FromCouponStats(&v.Stats),
	}
}

func FromCouponWithStatsList(views []queries.CouponWithStatsView) []*CouponWithStatsResponse {
	res := make([]*CouponWithStatsResponse, len(views))
	for i := range views {
		res[i] = FromCouponWithStats(&views[i])
	}
	return res
}

type SyncResponse struct {
	Message string `json:"message"`
	Synced  int    `json:"synced"`
}
