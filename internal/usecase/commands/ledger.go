package commands

import (
	"context"

	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/infra"
	"flash-coupon/internal/pkg/clock"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateIssuance    = errs.New("coupon already issued to user")
	ErrIssuanceRejected     = errs.New("issuance references an unknown coupon or user")
	ErrIssuedCouponNotFound = errs.New("issued coupon not found")
)

type LedgerCommands interface {
	// Append persists one allocation. A second append for the same (coupon, user) returns ErrDuplicateIssuance.
	Append(ctx context.Context, req shared.IssuanceRequest) (*issuance.IssuedCoupon, error)
	Use(ctx context.Context, issuedCouponID, userID uuid.UUID) (*issuance.IssuedCoupon, error)
}

type ledgerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLedgerCommands(uow shared.UnitOfWork, clk clock.Clock) LedgerCommands {
	return &ledgerCommandsImpl{uow: uow, clock: clk}
}

func (l *ledgerCommandsImpl) Append(ctx context.Context, req shared.IssuanceRequest) (*issuance.IssuedCoupon, error) {
	ic := issuance.NewIssuedCoupon(req.CouponID, req.UserID, req.IssuedAt, req.ExpiresAt)

	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.IssuedCoupons().Create(ctx, ic)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, ErrDuplicateIssuance)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.Mark(err, ErrIssuanceRejected)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return ic, nil
}

func (l *ledgerCommandsImpl) Use(ctx context.Context, issuedCouponID, userID uuid.UUID) (*issuance.IssuedCoupon, error) {
	var used *issuance.IssuedCoupon

	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ic, err := tx.IssuedCoupons().FindByIDForUpdate(ctx, issuedCouponID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrIssuedCouponNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := ic.Use(userID, l.clock.Now()); err != nil {
			return err
		}

		if err := tx.IssuedCoupons().MarkUsed(ctx, ic); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return issuance.ErrAlreadyUsed
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		used = ic
		return nil
	})
	if err != nil {
		return nil, err
	}
	return used, nil
}
