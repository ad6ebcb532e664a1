package commands

import (
	"context"
	"time"

	"flash-coupon/internal/domain/coupon"
	"flash-coupon/internal/infra"
	"flash-coupon/internal/pkg/clock"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEmptyCouponUpdate = errs.New("update has no fields")

type CreateCouponRequest struct {
	Name          string
	Type          string
	DiscountType  string
	DiscountValue int32
	TotalQuantity int32
	StartAt       time.Time
	EndAt         time.Time
}

type CouponCommands interface {
	// Create persists the coupon and seeds its Redis counter with the full quantity.
	Create(ctx context.Context, req CreateCouponRequest) (*coupon.Coupon, error)
	Update(ctx context.Context, id uuid.UUID, upd coupon.UpdateCoupon) (*coupon.Coupon, error)
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	store shared.AllocationStore
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, store shared.AllocationStore, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, store: store, clock: clk}
}

func (uc *couponCommandsImpl) Create(ctx context.Context, req CreateCouponRequest) (*coupon.Coupon, error) {
	c, err := coupon.NewCoupon(
		req.Name, req.Type, req.DiscountType,
		req.DiscountValue, req.TotalQuantity,
		req.StartAt, req.EndAt, uc.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	// The counter is seeded before commit so a failed seed rolls the row back.
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Coupons().Create(ctx, c); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return uc.store.SetRemaining(ctx, c.ID(), int64(c.TotalQuantity()))
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *couponCommandsImpl) Update(ctx context.Context, id uuid.UUID, upd coupon.UpdateCoupon) (*coupon.Coupon, error) {
	if upd.IsEmpty() {
		return nil, errs.Mark(ErrEmptyCouponUpdate, errs.ErrDomainValidation)
	}

	var updated *coupon.Coupon
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Coupons().FindByIDForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCouponNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := c.Apply(upd, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Coupons().Update(ctx, c); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
