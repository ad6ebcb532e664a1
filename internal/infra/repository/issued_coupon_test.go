//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/infra"
	sqlc "flash-coupon/internal/infra/sqlc/generated"
	"flash-coupon/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIssuedCouponWriteQueries struct {
	mock.Mock
}

func (m *MockIssuedCouponWriteQueries) CreateIssuedCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateIssuedCouponParams) (sqlc.IssuedCoupons, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.IssuedCoupons), args.Error(1)
}

func (m *MockIssuedCouponWriteQueries) GetIssuedCouponByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.IssuedCoupons, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.IssuedCoupons), args.Error(1)
}

func (m *MockIssuedCouponWriteQueries) MarkIssuedCouponUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkIssuedCouponUsedParams) (sqlc.IssuedCoupons, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.IssuedCoupons), args.Error(1)
}

func TestIssuedCouponRepositoryCreate(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ic := issuance.NewIssuedCoupon(uuid.New(), uuid.New(), now, now.Add(48*time.Hour))

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "same user and coupon twice", mockError: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "unknown coupon", mockError: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockIssuedCouponWriteQueries)
			db := new(mockDBTX)
			mockQueries.On("CreateIssuedCoupon", mock.Anything, db, sqlc.CreateIssuedCouponParams{
				ID:        ic.ID(),
				CouponID:  ic.CouponID(),
				UserID:    ic.UserID(),
				IssuedAt:  pgconv.TimeToPgtype(now),
				ExpiresAt: pgconv.TimeToPgtype(now.Add(48 * time.Hour)),
			}).Return(sqlc.IssuedCoupons{}, tt.mockError)

			err := NewIssuedCouponRepository(mockQueries, db).Create(context.Background(), ic)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestIssuedCouponRepositoryFindByIDForUpdate(t *testing.T) {
	id := uuid.New()
	usedAt := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	row := sqlc.IssuedCoupons{
		ID:        id,
		CouponID:  uuid.New(),
		UserID:    uuid.New(),
		Status:    "USED",
		IssuedAt:  pgconv.TimeToPgtype(usedAt.Add(-time.Hour)),
		UsedAt:    pgconv.TimeToPgtype(usedAt),
		ExpiresAt: pgconv.TimeToPgtype(usedAt.Add(time.Hour)),
	}

	t.Run("maps row to domain", func(t *testing.T) {
		mockQueries := new(MockIssuedCouponWriteQueries)
		db := new(mockDBTX)
		mockQueries.On("GetIssuedCouponByIDForUpdate", mock.Anything, db, id).Return(row, nil)

		got, err := NewIssuedCouponRepository(mockQueries, db).FindByIDForUpdate(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, issuance.StatusUsed, got.Status())
		require.NotNil(t, got.UsedAt())
		assert.True(t, usedAt.Equal(*got.UsedAt()))
		assert.Equal(t, row.UserID, got.UserID())
	})

	t.Run("no rows is not found", func(t *testing.T) {
		mockQueries := new(MockIssuedCouponWriteQueries)
		db := new(mockDBTX)
		mockQueries.On("GetIssuedCouponByIDForUpdate", mock.Anything, db, id).Return(sqlc.IssuedCoupons{}, pgx.ErrNoRows)

		_, err := NewIssuedCouponRepository(mockQueries, db).FindByIDForUpdate(context.Background(), id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestIssuedCouponRepositoryMarkUsed(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ic := issuance.NewIssuedCoupon(uuid.New(), uuid.New(), now, now.Add(time.Hour))
	require.NoError(t, ic.Use(ic.UserID(), now.Add(time.Minute)))

	t.Run("writes usedAt", func(t *testing.T) {
		mockQueries := new(MockIssuedCouponWriteQueries)
		db := new(mockDBTX)
		mockQueries.On("MarkIssuedCouponUsed", mock.Anything, db, sqlc.MarkIssuedCouponUsedParams{
			ID:     ic.ID(),
			UsedAt: pgconv.TimeToPgtype(now.Add(time.Minute)),
		}).Return(sqlc.IssuedCoupons{}, nil)

		assert.NoError(t, NewIssuedCouponRepository(mockQueries, db).MarkUsed(context.Background(), ic))
		mockQueries.AssertExpectations(t)
	})

	t.Run("row no longer ISSUED", func(t *testing.T) {
		mockQueries := new(MockIssuedCouponWriteQueries)
		db := new(mockDBTX)
		mockQueries.On("MarkIssuedCouponUsed", mock.Anything, db, mock.Anything).Return(sqlc.IssuedCoupons{}, pgx.ErrNoRows)

		err := NewIssuedCouponRepository(mockQueries, db).MarkUsed(context.Background(), ic)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
