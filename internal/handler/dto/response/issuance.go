package response

import (
	"time"

	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/usecase/commands"
	"flash-coupon/internal/usecase/queries"

	"github.com/google/uuid"
)

// IssueResponse reports the allocation outcome. Remaining is null unless status is SUCCESS.
type IssueResponse struct {
	CouponID  string `json:"couponId"`
	UserID    string `json:"userId"`
	Status    string `json:"status"`
	Remaining *int64 `json:"remaining"`
}

func FromIssueResult(couponID, userID uuid.UUID, r *commands.IssueResult) *IssueResponse {
	return &IssueResponse{
		CouponID:  couponID.String(),
		UserID:    userID.String(),
		Status:    r.Status.String(),
		Remaining: r.Remaining,
	}
}

type IssuedStatusResponse struct {
	CouponID string `json:"couponId"`
	UserID   string `json:"userId"`
	Issued   bool   `json:"issued"`
}

type IssuedCouponResponse struct {
	ID            string     `json:"id"`
	CouponID      string     `json:"couponId"`
	CouponName    string     `json:"couponName"`
	DiscountType  string     `json:"discountType"`
	DiscountValue int32      `json:"discountValue"`
	Status        string     `json:"status"`
	IssuedAt      time.Time  `json:"issuedAt"`
	UsedAt        *time.Time `json:"usedAt"`
	ExpiresAt     time.Time  `json:"expiresAt"`
	IsExpired     bool       `json:"isExpired"`
}

type MyCouponsResponse struct {
	Data []*IssuedCouponResponse `json:"data"`
	Meta queries.PageMeta        `json:"meta"`
}

func FromIssuedCouponPage(p *queries.IssuedCouponPage) *MyCouponsResponse {
	data := make([]*IssuedCouponResponse, len(p.Items))
	for i, it := range p.Items {
		data[i] = &IssuedCouponResponse{
			ID:            it.ID.String(),
			CouponID:      it.CouponID.String(),
			CouponName:    it.CouponName,
			DiscountType:  it.DiscountType,
			DiscountValue: it.DiscountValue,
			Status:        it.Status,
			IssuedAt:      it.IssuedAt,
			UsedAt:        it.UsedAt,
			ExpiresAt:     it.ExpiresAt,
			IsExpired:     it.IsExpired,
		}
	}
	return &MyCouponsResponse{Data: data, Meta: p.Meta}
}

type UsedCouponData struct {
	ID     string     `json:"id"`
	Status string     `json:"status"`
	UsedAt *time.Time `json:"usedAt"`
}

type UseCouponResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    UsedCouponData `json:"data"`
}

func FromUsedCoupon(ic *issuance.IssuedCoupon) *UseCouponResponse {
	return &UseCouponResponse{
		Success: true,
		Message: "coupon used",
		Data: UsedCouponData{
			ID:     ic.ID().String(),
			Status: ic.Status().String(),
			UsedAt: ic.UsedAt(),
		},
	}
}
