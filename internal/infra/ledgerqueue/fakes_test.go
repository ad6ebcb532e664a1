//go:build unit

package ledgerqueue_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/usecase/shared"

	"github.com/google/uuid"
)

type fakeAppender struct {
	mu    sync.Mutex
	calls []shared.IssuanceRequest
	// fail decides the error for the nth call, counted from 1.
	fail func(n int) error
}

func (f *fakeAppender) Append(_ context.Context, req shared.IssuanceRequest) (*issuance.IssuedCoupon, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	n := len(f.calls)
	f.mu.Unlock()

	if f.fail != nil {
		if err := f.fail(n); err != nil {
			return nil, err
		}
	}
	return issuance.NewIssuedCoupon(req.CouponID, req.UserID, req.IssuedAt, req.ExpiresAt), nil
}

func (f *fakeAppender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testLedgerConfig() config.LedgerConfig {
	return config.LedgerConfig{
		Driver:       config.LedgerDriverMemory,
		QueueSize:    100,
		Workers:      4,
		MaxAttempts:  3,
		RetryBackoff: time.Millisecond,
	}
}

func newRequest() shared.IssuanceRequest {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return shared.IssuanceRequest{
		CouponID:  uuid.New(),
		UserID:    uuid.New(),
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(72 * time.Hour),
	}
}
