package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	errUnexpectedScriptReply = errs.New("unexpected allocate script reply")
	errInvalidMarkerTTL      = errs.New("marker ttl must be at least one millisecond")
)

// AllocationStore keeps the per-coupon remaining counter and per-user markers.
// Keys of one coupon share a hash tag so the script stays single-slot on a cluster.
type AllocationStore struct {
	client    redis.UniversalClient
	markerTTL time.Duration
}

func NewAllocationStore(client redis.UniversalClient, cfg config.AllocationConfig) *AllocationStore {
	return &AllocationStore{
		client:    client,
		markerTTL: cfg.MarkerTTL,
	}
}

func RemainingKey(couponID uuid.UUID) string {
	return fmt.Sprintf("coupon:{%s}:remaining", couponID)
}

func IssuedKey(couponID, userID uuid.UUID) string {
	return fmt.Sprintf("coupon:{%s}:issued:%s", couponID, userID)
}

func (s *AllocationStore) TryAllocate(ctx context.Context, couponID, userID uuid.UUID) (shared.AllocationOutcome, error) {
	keys := []string{RemainingKey(couponID), IssuedKey(couponID, userID)}
	ttl := s.markerTTL.Milliseconds()
	if ttl < 1 {
		return shared.AllocationOutcome{}, errInvalidMarkerTTL
	}

	reply, err := allocateScript.Run(ctx, s.client, keys, ttl).Slice()
	if err != nil {
		return shared.AllocationOutcome{}, unavailable(err, "allocate script failed")
	}
	return parseOutcome(reply)
}

// GetRemaining reads a missing counter as zero.
func (s *AllocationStore) GetRemaining(ctx context.Context, couponID uuid.UUID) (int64, error) {
	val, err := s.client.Get(ctx, RemainingKey(couponID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, unavailable(err, "failed to read remaining counter")
	}

	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, errs.Wrap(err, "remaining counter is not an integer")
	}
	return n, nil
}

func (s *AllocationStore) SetRemaining(ctx context.Context, couponID uuid.UUID, remaining int64) error {
	if err := s.client.Set(ctx, RemainingKey(couponID), remaining, 0).Err(); err != nil {
		return unavailable(err, "failed to set remaining counter")
	}
	return nil
}

func (s *AllocationStore) HasIssued(ctx context.Context, couponID, userID uuid.UUID) (bool, error) {
	n, err := s.client.Exists(ctx, IssuedKey(couponID, userID)).Result()
	if err != nil {
		return false, unavailable(err, "failed to check issued marker")
	}
	return n == 1, nil
}

func parseOutcome(reply []interface{}) (shared.AllocationOutcome, error) {
	if len(reply) != 2 {
		return shared.AllocationOutcome{}, errUnexpectedScriptReply
	}
	code, ok1 := reply[0].(int64)
	remaining, ok2 := reply[1].(int64)
	if !ok1 || !ok2 {
		return shared.AllocationOutcome{}, errUnexpectedScriptReply
	}

	switch code {
	case codeSuccess:
		return shared.AllocationOutcome{Status: issuance.AllocationSuccess, Remaining: remaining}, nil
	case codeDuplicated:
		return shared.AllocationOutcome{Status: issuance.AllocationDuplicated}, nil
	case codeSoldOut:
		return shared.AllocationOutcome{Status: issuance.AllocationSoldOut}, nil
	default:
		return shared.AllocationOutcome{}, errUnexpectedScriptReply
	}
}

func unavailable(err error, msg string) error {
	return errs.Mark(errs.Wrap(err, msg), errs.ErrAllocationStoreUnavailable)
}
