//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/usecase/commands"
	"flash-coupon/internal/usecase/shared"
	"flash-coupon/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReconcileCommands_Reconcile(t *testing.T) {
	t.Run("success: every counter rewritten from the ledger", func(t *testing.T) {
		f := newFixture(t)
		fresh := *builder.NewCouponBuilder().WithQuantity(10).BuildSnapshot()
		partial := *builder.NewCouponBuilder().WithQuantity(10).BuildSnapshot()
		oversold := *builder.NewCouponBuilder().WithQuantity(3).BuildSnapshot()

		f.reads.EXPECT().AllCoupons(gomock.Any()).Return([]shared.CouponSnapshot{fresh, partial, oversold}, nil)
		f.reads.EXPECT().LedgerAggregate(gomock.Any(), fresh.ID).Return(shared.LedgerAggregate{}, nil)
		f.reads.EXPECT().LedgerAggregate(gomock.Any(), partial.ID).
			Return(shared.LedgerAggregate{Issued: 2, Used: 1, Expired: 1}, nil)
		f.reads.EXPECT().LedgerAggregate(gomock.Any(), oversold.ID).
			Return(shared.LedgerAggregate{Issued: 4}, nil)

		var mu sync.Mutex
		written := map[uuid.UUID]int64{}
		f.store.EXPECT().SetRemaining(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID, remaining int64) error {
				mu.Lock()
				defer mu.Unlock()
				written[id] = remaining
				return nil
			}).Times(3)

		uc := commands.NewReconcileCommands(f.uow, f.store, config.ReconcileConfig{Concurrency: 2}, nil, f.logger)
		result, err := uc.Reconcile(f.ctx)

		require.NoError(t, err)
		assert.Equal(t, 3, result.Synced)
		assert.Equal(t, map[uuid.UUID]int64{
			fresh.ID:    10,
			partial.ID:  6,
			oversold.ID: 0,
		}, written)
	})

	t.Run("success: no coupons", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().AllCoupons(gomock.Any()).Return(nil, nil)

		uc := commands.NewReconcileCommands(f.uow, f.store, config.ReconcileConfig{}, nil, f.logger)
		result, err := uc.Reconcile(f.ctx)

		require.NoError(t, err)
		assert.Zero(t, result.Synced)
	})

	t.Run("error: listing coupons fails", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().AllCoupons(gomock.Any()).Return(nil, errors.New("connection reset"))

		uc := commands.NewReconcileCommands(f.uow, f.store, config.ReconcileConfig{Concurrency: 1}, nil, f.logger)
		result, err := uc.Reconcile(f.ctx)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.Nil(t, result)
	})

	t.Run("error: redis write fails", func(t *testing.T) {
		f := newFixture(t)
		snap := *builder.NewCouponBuilder().BuildSnapshot()

		f.reads.EXPECT().AllCoupons(gomock.Any()).Return([]shared.CouponSnapshot{snap}, nil)
		f.reads.EXPECT().LedgerAggregate(gomock.Any(), snap.ID).Return(shared.LedgerAggregate{Issued: 1}, nil)
		f.store.EXPECT().SetRemaining(gomock.Any(), snap.ID, int64(99)).
			Return(errs.Mark(errors.New("i/o timeout"), errs.ErrAllocationStoreUnavailable))

		uc := commands.NewReconcileCommands(f.uow, f.store, config.ReconcileConfig{Concurrency: 1}, nil, f.logger)
		_, err := uc.Reconcile(f.ctx)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrAllocationStoreUnavailable))
	})
}
