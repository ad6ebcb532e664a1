//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/usecase/commands"
	"flash-coupon/internal/worker"
	commandsmock "flash-coupon/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestReconcileScheduler_RunsOnInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockReconcileCommands(ctrl)

	ran := make(chan struct{}, 8)
	cmds.EXPECT().Reconcile(gomock.Any()).
		DoAndReturn(func(context.Context) (*commands.ReconcileResult, error) {
			notify(ran)
			return &commands.ReconcileResult{Synced: 1}, nil
		}).MinTimes(2)

	s := worker.NewReconcileScheduler(cmds, config.ReconcileConfig{Interval: 5 * time.Millisecond}, discardLogger)
	s.Start()

	for range 2 {
		select {
		case <-ran:
		case <-time.After(time.Second):
			t.Fatal("reconcile did not run")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}

func TestReconcileScheduler_FailureKeepsRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockReconcileCommands(ctrl)

	ran := make(chan struct{}, 8)
	gomock.InOrder(
		cmds.EXPECT().Reconcile(gomock.Any()).
			DoAndReturn(func(context.Context) (*commands.ReconcileResult, error) {
				notify(ran)
				return nil, errors.New("connection reset")
			}),
		cmds.EXPECT().Reconcile(gomock.Any()).
			DoAndReturn(func(context.Context) (*commands.ReconcileResult, error) {
				notify(ran)
				return &commands.ReconcileResult{}, nil
			}).AnyTimes(),
	)

	s := worker.NewReconcileScheduler(cmds, config.ReconcileConfig{Interval: 5 * time.Millisecond}, discardLogger)
	s.Start()

	for range 2 {
		select {
		case <-ran:
		case <-time.After(time.Second):
			t.Fatal("scheduler stopped after a failed run")
		}
	}

	require.NoError(t, s.Stop(context.Background()))
}

func TestReconcileScheduler_DisabledWithoutInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockReconcileCommands(ctrl)

	s := worker.NewReconcileScheduler(cmds, config.ReconcileConfig{}, discardLogger)
	s.Start()

	assert.NoError(t, s.Stop(context.Background()))
}

func notify(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
