package queries

import (
	"context"
	"log/slog"

	"flash-coupon/internal/infra"
	"flash-coupon/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	List(ctx context.Context) ([]CouponView, error)
}

type CouponQueries interface {
	GetWithStats(ctx context.Context, id uuid.UUID) (*CouponWithStatsView, error)
	ListWithStats(ctx context.Context) ([]CouponWithStatsView, error)
}

type couponQueriesImpl struct {
	coupons CouponReadStore
	stats   *statsCollector
}

func NewCouponQueries(coupons CouponReadStore, ledger LedgerReadStore, store shared.AllocationStore, logger *slog.Logger) CouponQueries {
	return &couponQueriesImpl{
		coupons: coupons,
		stats:   &statsCollector{ledger: ledger, store: store, logger: logger},
	}
}

func (q *couponQueriesImpl) GetWithStats(ctx context.Context, id uuid.UUID) (*CouponWithStatsView, error) {
	view, err := q.coupons.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	stats, err := q.stats.collect(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CouponWithStatsView{CouponView: *view, Stats: stats}, nil
}

func (q *couponQueriesImpl) ListWithStats(ctx context.Context) ([]CouponWithStatsView, error) {
	views, err := q.coupons.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]CouponWithStatsView, 0, len(views))
	for _, v := range views {
		stats, err := q.stats.collect(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, CouponWithStatsView{CouponView: v, Stats: stats})
	}
	return result, nil
}
