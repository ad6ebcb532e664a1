package queries

import (
	"context"
	"log/slog"

	"flash-coupon/internal/infra"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCouponNotFound = errs.New("coupon not found")

type LedgerReadStore interface {
	AggregateByOffer(ctx context.Context, couponID uuid.UUID) (shared.LedgerAggregate, error)
}

type StatsQueries interface {
	// StatsFor reports ledger counts plus the live counter. An unreachable counter reads as 0.
	StatsFor(ctx context.Context, couponID uuid.UUID) (*CouponStats, error)
	HasIssued(ctx context.Context, couponID, userID uuid.UUID) (bool, error)
}

type statsQueriesImpl struct {
	coupons CouponReadStore
	stats   *statsCollector
	store   shared.AllocationStore
}

func NewStatsQueries(coupons CouponReadStore, ledger LedgerReadStore, store shared.AllocationStore, logger *slog.Logger) StatsQueries {
	return &statsQueriesImpl{
		coupons: coupons,
		stats:   &statsCollector{ledger: ledger, store: store, logger: logger},
		store:   store,
	}
}

func (q *statsQueriesImpl) StatsFor(ctx context.Context, couponID uuid.UUID) (*CouponStats, error) {
	if _, err := q.coupons.FindByID(ctx, couponID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	stats, err := q.stats.collect(ctx, couponID)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (q *statsQueriesImpl) HasIssued(ctx context.Context, couponID, userID uuid.UUID) (bool, error) {
	return q.store.HasIssued(ctx, couponID, userID)
}

type statsCollector struct {
	ledger LedgerReadStore
	store  shared.AllocationStore
	logger *slog.Logger
}

func (c *statsCollector) collect(ctx context.Context, couponID uuid.UUID) (CouponStats, error) {
	agg, err := c.ledger.AggregateByOffer(ctx, couponID)
	if err != nil {
		return CouponStats{}, err
	}

	remaining, err := c.store.GetRemaining(ctx, couponID)
	if err != nil {
		c.logger.Warn("remaining counter unavailable, reporting 0",
			"coupon_id", couponID.String(),
			"error", err,
		)
		remaining = 0
	}

	return CouponStats{
		CouponID:       couponID,
		IssuedCount:    agg.Issued,
		UsedCount:      agg.Used,
		ExpiredCount:   agg.Expired,
		RemainingCount: remaining,
	}, nil
}
