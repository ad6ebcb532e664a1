package readstore

import (
	"context"
	"log/slog"

	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/infra"
	sqlc "flash-coupon/internal/infra/sqlc/generated"
	"flash-coupon/internal/usecase/shared"

	"github.com/google/uuid"
)

type LedgerReadQueries interface {
	CountIssuedCouponsByStatus(ctx context.Context, db sqlc.DBTX, couponID uuid.UUID) ([]sqlc.CountIssuedCouponsByStatusRow, error)
}

type LedgerReadStore struct {
	queries LedgerReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewLedgerReadStore(queries LedgerReadQueries, db sqlc.DBTX, logger *slog.Logger) *LedgerReadStore {
	return &LedgerReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// AggregateByOffer counts ledger rows of one coupon grouped by status.
func (r *LedgerReadStore) AggregateByOffer(ctx context.Context, couponID uuid.UUID) (shared.LedgerAggregate, error) {
	rows, err := r.queries.CountIssuedCouponsByStatus(ctx, r.db, couponID)
	if err != nil {
		return shared.LedgerAggregate{}, infra.WrapRepoErr("failed to aggregate issued coupons", err)
	}

	var agg shared.LedgerAggregate
	for _, row := range rows {
		switch issuance.Status(row.Status) {
		case issuance.StatusIssued:
			agg.Issued = row.Count
		case issuance.StatusUsed:
			agg.Used = row.Count
		case issuance.StatusExpired:
			agg.Expired = row.Count
		default:
			r.logger.Warn("unknown issued coupon status in ledger", "coupon_id", couponID.String(), "status", row.Status)
		}
	}
	return agg, nil
}
