package queries

import (
	"context"
	"time"

	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/pkg/clock"

	"github.com/google/uuid"
)

type IssuedCouponReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, status *string, offset, limit int) ([]IssuedCouponView, error)
	CountByUser(ctx context.Context, userID uuid.UUID, status *string) (int64, error)
}

type IssuedCouponQueries interface {
	// ListForUser pages a user's coupons newest first. A nil status lists every status.
	ListForUser(ctx context.Context, userID uuid.UUID, status *issuance.Status, page, limit int) (*IssuedCouponPage, error)
}

type issuedCouponQueriesImpl struct {
	readStore IssuedCouponReadStore
	clock     clock.Clock
}

func NewIssuedCouponQueries(readStore IssuedCouponReadStore, clk clock.Clock) IssuedCouponQueries {
	return &issuedCouponQueriesImpl{readStore: readStore, clock: clk}
}

func (q *issuedCouponQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID, status *issuance.Status, page, limit int) (*IssuedCouponPage, error) {
	page = ValidatePage(page)
	limit = ValidateLimit(limit)

	var statusFilter *string
	if status != nil {
		s := status.String()
		statusFilter = &s
	}

	total, err := q.readStore.CountByUser(ctx, userID, statusFilter)
	if err != nil {
		return nil, err
	}

	items, err := q.readStore.ListByUser(ctx, userID, statusFilter, offsetFor(page, limit), limit)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	for i := range items {
		items[i].IsExpired = isExpiredAt(items[i], now)
	}

	return &IssuedCouponPage{
		Items: items,
		Meta: PageMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

func isExpiredAt(v IssuedCouponView, now time.Time) bool {
	return issuance.ReconstructIssuedCoupon(
		v.ID, v.CouponID, uuid.Nil,
		issuance.Status(v.Status), v.IssuedAt, v.UsedAt, v.ExpiresAt,
	).IsExpiredAt(now)
}
