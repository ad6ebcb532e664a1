package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"flash-coupon/internal/domain/coupon"
	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/infra"
	"flash-coupon/internal/pkg/clock"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/pkg/metrics"
	"flash-coupon/internal/pkg/tracing"
	"flash-coupon/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// allocateTimeout bounds the script call once it is detached from the request.
const allocateTimeout = 2 * time.Second

var (
	ErrCouponNotFound = errs.New("coupon not found")
	ErrUserNotFound   = errs.New("user not found")
)

// IssueResult carries Remaining only on SUCCESS.
type IssueResult struct {
	Status    issuance.AllocationStatus
	Remaining *int64
}

type IssuanceCommands interface {
	Issue(ctx context.Context, couponID, userID uuid.UUID) (*IssueResult, error)
}

type issuanceCommandsImpl struct {
	uow     shared.UnitOfWork
	store   shared.AllocationStore
	queue   shared.IssuanceQueue
	clock   clock.Clock
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewIssuanceCommands(
	uow shared.UnitOfWork,
	store shared.AllocationStore,
	queue shared.IssuanceQueue,
	clk clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) IssuanceCommands {
	return &issuanceCommandsImpl{
		uow:     uow,
		store:   store,
		queue:   queue,
		clock:   clk,
		metrics: m,
		logger:  logger,
	}
}

func (uc *issuanceCommandsImpl) Issue(ctx context.Context, couponID, userID uuid.UUID) (*IssueResult, error) {
	ctx, span := otel.Tracer(tracing.TracerName).Start(ctx, "IssuanceCommands.Issue")
	defer span.End()
	span.SetAttributes(
		attribute.String("coupon.id", couponID.String()),
		attribute.String("user.id", userID.String()),
	)

	started := time.Now()
	result, err := uc.issue(ctx, couponID, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("allocation.status", result.Status.String()))
	uc.metrics.ObserveAllocation(result.Status.String(), time.Since(started))
	return result, nil
}

func (uc *issuanceCommandsImpl) issue(ctx context.Context, couponID, userID uuid.UUID) (*IssueResult, error) {
	reads := uc.uow.CommandReads()

	snap, err := reads.CouponByID(ctx, couponID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	exists, err := reads.UserExists(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	c := snap.ToDomain()
	now := uc.clock.Now()
	if err := c.ValidateWindow(now); err != nil {
		switch {
		case errors.Is(err, coupon.ErrCouponNotStarted):
			return &IssueResult{Status: issuance.AllocationNotStarted}, nil
		case errors.Is(err, coupon.ErrCouponExpired):
			return &IssueResult{Status: issuance.AllocationExpired}, nil
		default:
			return nil, err
		}
	}

	// A script that commits must reach the ledger even if the client has gone away.
	allocCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), allocateTimeout)
	outcome, err := uc.store.TryAllocate(allocCtx, couponID, userID)
	cancel()
	if err != nil {
		return nil, err
	}
	if outcome.Status != issuance.AllocationSuccess {
		return &IssueResult{Status: outcome.Status}, nil
	}

	req := shared.IssuanceRequest{
		CouponID:  couponID,
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: c.EndAt(),
	}
	if err := uc.queue.Enqueue(context.WithoutCancel(ctx), req); err != nil {
		uc.metrics.LedgerAppend(metrics.AppendDropped)
		uc.logger.Error("failed to enqueue ledger append",
			"coupon_id", couponID.String(),
			"user_id", userID.String(),
			"error", err,
		)
	}

	remaining := outcome.Remaining
	return &IssueResult{Status: issuance.AllocationSuccess, Remaining: &remaining}, nil
}
