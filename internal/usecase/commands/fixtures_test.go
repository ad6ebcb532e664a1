//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"flash-coupon/internal/pkg/clock"
	"flash-coupon/internal/usecase/shared"
	"flash-coupon/tests/common/builder"
	sharedmock "flash-coupon/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

type fixture struct {
	ctrl    *gomock.Controller
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	reads   *sharedmock.MockCommandReads
	coupons *sharedmock.MockCouponRepository
	issued  *sharedmock.MockIssuedCouponRepository
	users   *sharedmock.MockUserRepository
	store   *sharedmock.MockAllocationStore
	queue   *sharedmock.MockIssuanceQueue
	clock   *clock.MockClock
	logger  *slog.Logger
	ctx     context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		ctrl:    ctrl,
		uow:     sharedmock.NewMockUnitOfWork(ctrl),
		tx:      sharedmock.NewMockTx(ctrl),
		reads:   sharedmock.NewMockCommandReads(ctrl),
		coupons: sharedmock.NewMockCouponRepository(ctrl),
		issued:  sharedmock.NewMockIssuedCouponRepository(ctrl),
		users:   sharedmock.NewMockUserRepository(ctrl),
		store:   sharedmock.NewMockAllocationStore(ctrl),
		queue:   sharedmock.NewMockIssuanceQueue(ctrl),
		clock:   clock.NewMockClock(builder.Now()),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		ctx:     context.Background(),
	}

	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Coupons().Return(f.coupons).AnyTimes()
	f.tx.EXPECT().IssuedCoupons().Return(f.issued).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	return f
}

// expectTx runs the callback against the mocked transaction, the way the real unit of work does.
func (f *fixture) expectTx() *gomock.Call {
	return f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}
