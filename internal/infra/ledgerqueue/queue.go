package ledgerqueue

import (
	"context"

	"flash-coupon/internal/usecase/shared"
)

// Queue is an issuance queue with a managed worker lifecycle.
type Queue interface {
	shared.IssuanceQueue
	Start()
	Stop(ctx context.Context) error
}

var (
	_ Queue = (*MemoryQueue)(nil)
	_ Queue = (*KafkaQueue)(nil)
)
