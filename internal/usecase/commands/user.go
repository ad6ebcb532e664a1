package commands

import (
	"context"

	"flash-coupon/internal/domain/user"
	"flash-coupon/internal/infra"
	"flash-coupon/internal/pkg/clock"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/usecase/shared"
)

var ErrDuplicateEmail = errs.New("email already registered")

type CreateUserRequest struct {
	Email string
	Name  string
}

type UserCommands interface {
	CreateTestUser(ctx context.Context, req CreateUserRequest) (*user.User, error)
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (uc *userCommandsImpl) CreateTestUser(ctx context.Context, req CreateUserRequest) (*user.User, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	name, err := user.NewName(req.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	u := user.NewUser(email, name, uc.clock.Now())
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateEmail)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u, nil
}
