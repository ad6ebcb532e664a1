package commands

import (
	"context"
	"log/slog"

	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/pkg/metrics"
	"flash-coupon/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

type ReconcileResult struct {
	Synced int
}

type ReconcileCommands interface {
	// Reconcile rewrites every Redis counter as max(0, total - ledger rows).
	// It is not atomic with allocations running at the same time.
	Reconcile(ctx context.Context) (*ReconcileResult, error)
}

type reconcileCommandsImpl struct {
	uow         shared.UnitOfWork
	store       shared.AllocationStore
	concurrency int
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

func NewReconcileCommands(
	uow shared.UnitOfWork,
	store shared.AllocationStore,
	cfg config.ReconcileConfig,
	m *metrics.Metrics,
	logger *slog.Logger,
) ReconcileCommands {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &reconcileCommandsImpl{
		uow:         uow,
		store:       store,
		concurrency: concurrency,
		metrics:     m,
		logger:      logger,
	}
}

func (uc *reconcileCommandsImpl) Reconcile(ctx context.Context) (*ReconcileResult, error) {
	result, err := uc.reconcile(ctx)
	if err != nil {
		uc.metrics.ReconcileRun(0, err)
		return nil, err
	}
	uc.metrics.ReconcileRun(result.Synced, nil)
	return result, nil
}

func (uc *reconcileCommandsImpl) reconcile(ctx context.Context) (*ReconcileResult, error) {
	reads := uc.uow.CommandReads()

	coupons, err := reads.AllCoupons(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for _, snap := range coupons {
		g.Go(func() error {
			agg, err := reads.LedgerAggregate(gctx, snap.ID)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}

			remaining := snap.ToDomain().Remaining(agg.Total())
			if err := uc.store.SetRemaining(gctx, snap.ID, remaining); err != nil {
				return err
			}

			uc.logger.Debug("coupon counter reconciled",
				"coupon_id", snap.ID.String(),
				"ledger_total", agg.Total(),
				"remaining", remaining,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ReconcileResult{Synced: len(coupons)}, nil
}
