package ledgerqueue

import (
	"context"
	"log/slog"
	"time"

	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/pkg/metrics"
	"flash-coupon/internal/usecase/commands"
	"flash-coupon/internal/usecase/shared"
)

var (
	ErrQueueFull   = errs.New("ledger queue is full")
	ErrQueueClosed = errs.New("ledger queue is closed")
)

// Appender writes one issuance into the ledger.
type Appender interface {
	Append(ctx context.Context, req shared.IssuanceRequest) (*issuance.IssuedCoupon, error)
}

type deliverer struct {
	appender    Appender
	maxAttempts int
	backoff     time.Duration
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

func newDeliverer(appender Appender, cfg config.LedgerConfig, m *metrics.Metrics, logger *slog.Logger) *deliverer {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &deliverer{
		appender:    appender,
		maxAttempts: maxAttempts,
		backoff:     cfg.RetryBackoff,
		metrics:     m,
		logger:      logger,
	}
}

// deliver retries transient failures with linear backoff. Duplicates count as delivered.
// It returns false only when the request was dropped.
func (d *deliverer) deliver(ctx context.Context, req shared.IssuanceRequest) bool {
	for attempt := 1; ; attempt++ {
		_, err := d.appender.Append(ctx, req)
		switch {
		case err == nil:
			d.metrics.LedgerAppend(metrics.AppendOK)
			return true
		case errs.Is(err, commands.ErrDuplicateIssuance):
			d.metrics.LedgerAppend(metrics.AppendDuplicate)
			d.logger.Debug("ledger append already recorded",
				"coupon_id", req.CouponID.String(),
				"user_id", req.UserID.String(),
			)
			return true
		case errs.Is(err, commands.ErrIssuanceRejected):
			d.metrics.LedgerAppend(metrics.AppendRejected)
			d.logger.Error("ledger append rejected",
				"coupon_id", req.CouponID.String(),
				"user_id", req.UserID.String(),
				"error", err,
			)
			return true
		}

		if attempt >= d.maxAttempts {
			d.metrics.LedgerAppend(metrics.AppendDropped)
			d.logger.Error("ledger append dropped after retries",
				"coupon_id", req.CouponID.String(),
				"user_id", req.UserID.String(),
				"attempts", attempt,
				"error", err,
			)
			return false
		}

		d.metrics.LedgerAppend(metrics.AppendRetry)
		d.logger.Warn("ledger append failed, retrying",
			"coupon_id", req.CouponID.String(),
			"user_id", req.UserID.String(),
			"attempt", attempt,
			"error", err,
		)

		select {
		case <-ctx.Done():
			d.metrics.LedgerAppend(metrics.AppendDropped)
			d.logger.Error("ledger append abandoned on shutdown",
				"coupon_id", req.CouponID.String(),
				"user_id", req.UserID.String(),
			)
			return false
		case <-time.After(d.backoff * time.Duration(attempt)):
		}
	}
}
