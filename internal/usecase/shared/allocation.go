package shared

import (
	"context"
	"time"

	"flash-coupon/internal/domain/issuance"

	"github.com/google/uuid"
)

// AllocationOutcome is what the fast store decided. Remaining is meaningful on SUCCESS only.
type AllocationOutcome struct {
	Status    issuance.AllocationStatus
	Remaining int64
}

// AllocationStore is the fast counter store. TryAllocate must be atomic per coupon.
type AllocationStore interface {
	TryAllocate(ctx context.Context, couponID, userID uuid.UUID) (AllocationOutcome, error)
	GetRemaining(ctx context.Context, couponID uuid.UUID) (int64, error)
	SetRemaining(ctx context.Context, couponID uuid.UUID, remaining int64) error
	HasIssued(ctx context.Context, couponID, userID uuid.UUID) (bool, error)
}

// IssuanceRequest is a ledger append waiting to be persisted.
type IssuanceRequest struct {
	CouponID  uuid.UUID `json:"couponId"`
	UserID    uuid.UUID `json:"userId"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IssuanceQueue accepts ledger appends for asynchronous, at-least-once delivery.
type IssuanceQueue interface {
	Enqueue(ctx context.Context, req IssuanceRequest) error
}
