//go:build unit

package ledgerqueue_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"flash-coupon/internal/infra/ledgerqueue"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryQueueDrainsOnStop(t *testing.T) {
	appender := &fakeAppender{}
	q := ledgerqueue.NewMemoryQueue(appender, testLedgerConfig(), nil, discardLogger())
	q.Start()

	for i := 0; i < 50; i++ {
		require.NoError(t, q.Enqueue(context.Background(), newRequest()))
	}

	require.NoError(t, q.Stop(context.Background()))
	assert.Equal(t, 50, appender.count())
}

func TestMemoryQueueRejectsWhenFull(t *testing.T) {
	cfg := testLedgerConfig()
	cfg.QueueSize = 1
	q := ledgerqueue.NewMemoryQueue(&fakeAppender{}, cfg, nil, discardLogger())

	require.NoError(t, q.Enqueue(context.Background(), newRequest()))
	err := q.Enqueue(context.Background(), newRequest())

	assert.ErrorIs(t, err, ledgerqueue.ErrQueueFull)
	assert.Equal(t, 1, q.Len())
	require.NoError(t, q.Stop(context.Background()))
}

func TestMemoryQueueRejectsAfterStop(t *testing.T) {
	q := ledgerqueue.NewMemoryQueue(&fakeAppender{}, testLedgerConfig(), nil, discardLogger())
	q.Start()
	require.NoError(t, q.Stop(context.Background()))

	err := q.Enqueue(context.Background(), newRequest())
	assert.ErrorIs(t, err, ledgerqueue.ErrQueueClosed)
	assert.NoError(t, q.Stop(context.Background()))
}

func TestMemoryQueueDelivery(t *testing.T) {
	transient := errors.New("connection reset")

	tests := []struct {
		name      string
		fail      func(n int) error
		wantCalls int
	}{
		{
			name:      "delivered first time",
			wantCalls: 1,
		},
		{
			name: "transient failures are retried",
			fail: func(n int) error {
				if n < 3 {
					return transient
				}
				return nil
			},
			wantCalls: 3,
		},
		{
			name: "duplicate is not retried",
			fail: func(int) error {
				return errs.Mark(errors.New("unique violation"), commands.ErrDuplicateIssuance)
			},
			wantCalls: 1,
		},
		{
			name: "rejected is not retried",
			fail: func(int) error {
				return errs.Mark(errors.New("fk violation"), commands.ErrIssuanceRejected)
			},
			wantCalls: 1,
		},
		{
			name:      "dropped after max attempts",
			fail:      func(int) error { return transient },
			wantCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testLedgerConfig()
			cfg.Workers = 1
			appender := &fakeAppender{fail: tt.fail}
			q := ledgerqueue.NewMemoryQueue(appender, cfg, nil, discardLogger())
			q.Start()

			require.NoError(t, q.Enqueue(context.Background(), newRequest()))
			require.NoError(t, q.Stop(context.Background()))

			assert.Equal(t, tt.wantCalls, appender.count())
		})
	}
}

func TestMemoryQueueStopAbandonsRetriesOnDeadline(t *testing.T) {
	cfg := testLedgerConfig()
	cfg.Workers = 1
	cfg.MaxAttempts = 5
	cfg.RetryBackoff = time.Hour
	appender := &fakeAppender{fail: func(int) error { return errors.New("db down") }}
	q := ledgerqueue.NewMemoryQueue(appender, cfg, nil, discardLogger())
	q.Start()

	require.NoError(t, q.Enqueue(context.Background(), newRequest()))
	require.Eventually(t, func() bool { return appender.count() == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := q.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, appender.count())
}
