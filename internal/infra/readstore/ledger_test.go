//go:build unit

package readstore

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"flash-coupon/internal/infra"
	sqlc "flash-coupon/internal/infra/sqlc/generated"
	"flash-coupon/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLedgerReadQueries struct {
	mock.Mock
}

func (m *MockLedgerReadQueries) CountIssuedCouponsByStatus(ctx context.Context, db sqlc.DBTX, couponID uuid.UUID) ([]sqlc.CountIssuedCouponsByStatusRow, error) {
	args := m.Called(ctx, db, couponID)
	rows, _ := args.Get(0).([]sqlc.CountIssuedCouponsByStatusRow)
	return rows, args.Error(1)
}

func TestLedgerReadStoreAggregateByOffer(t *testing.T) {
	couponID := uuid.New()

	tests := []struct {
		name      string
		rows      []sqlc.CountIssuedCouponsByStatusRow
		mockError error
		want      shared.LedgerAggregate
		wantTotal int64
		wantWarn  bool
		wantErr   bool
	}{
		{
			name:      "no ledger rows",
			want:      shared.LedgerAggregate{},
			wantTotal: 0,
		},
		{
			name: "all statuses",
			rows: []sqlc.CountIssuedCouponsByStatusRow{
				{Status: "ISSUED", Count: 7},
				{Status: "USED", Count: 2},
				{Status: "EXPIRED", Count: 1},
			},
			want:      shared.LedgerAggregate{Issued: 7, Used: 2, Expired: 1},
			wantTotal: 10,
		},
		{
			name: "unknown status ignored",
			rows: []sqlc.CountIssuedCouponsByStatusRow{
				{Status: "ISSUED", Count: 3},
				{Status: "VOID", Count: 5},
			},
			want:      shared.LedgerAggregate{Issued: 3},
			wantTotal: 3,
			wantWarn:  true,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockLedgerReadQueries)
			mockQueries.On("CountIssuedCouponsByStatus", mock.Anything, nil, couponID).Return(tt.rows, tt.mockError)

			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))

			store := NewLedgerReadStore(mockQueries, nil, logger)
			got, err := store.AggregateByOffer(context.Background(), couponID)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantTotal, got.Total())
			if tt.wantWarn {
				assert.Contains(t, logs.String(), "unknown issued coupon status")
				assert.Contains(t, logs.String(), couponID.String())
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}
