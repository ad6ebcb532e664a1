//go:build unit

package queries_test

import (
	"errors"
	"testing"
	"time"

	"flash-coupon/internal/domain/issuance"
	"flash-coupon/internal/pkg/clock"
	"flash-coupon/internal/usecase/queries"
	"flash-coupon/tests/common/builder"
	queriesmock "flash-coupon/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIssuedCouponQueries_ListForUser(t *testing.T) {
	userID := uuid.New()
	now := builder.Now()

	t.Run("success: isExpired derived at read time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockIssuedCouponReadStore(ctrl)

		live := builder.NewIssuedCouponBuilder().WithUser(userID).BuildView()
		lapsed := builder.NewIssuedCouponBuilder().WithUser(userID).With(func(b *builder.IssuedCouponBuilder) {
			b.ExpiresAt = now.Add(-time.Minute)
		}).BuildView()
		used := builder.NewIssuedCouponBuilder().WithUser(userID).Used(now.Add(-time.Hour)).BuildView()

		store.EXPECT().CountByUser(gomock.Any(), userID, nil).Return(int64(3), nil)
		store.EXPECT().ListByUser(gomock.Any(), userID, nil, 0, 20).
			Return([]queries.IssuedCouponView{live, lapsed, used}, nil)

		q := queries.NewIssuedCouponQueries(store, clock.NewMockClock(now))
		page, err := q.ListForUser(t.Context(), userID, nil, 0, 0)

		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.False(t, page.Items[0].IsExpired)
		assert.True(t, page.Items[1].IsExpired)
		assert.Equal(t, issuance.StatusIssued.String(), page.Items[1].Status)
		assert.False(t, page.Items[2].IsExpired)
		assert.Equal(t, queries.PageMeta{Total: 3, Page: 1, Limit: 20, TotalPages: 1}, page.Meta)
	})

	t.Run("success: status filter and paging", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockIssuedCouponReadStore(ctrl)
		status := issuance.StatusUsed
		want := "USED"

		store.EXPECT().CountByUser(gomock.Any(), userID, &want).Return(int64(25), nil)
		store.EXPECT().ListByUser(gomock.Any(), userID, &want, 10, 10).Return([]queries.IssuedCouponView{}, nil)

		q := queries.NewIssuedCouponQueries(store, clock.NewMockClock(now))
		page, err := q.ListForUser(t.Context(), userID, &status, 2, 10)

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, queries.PageMeta{Total: 25, Page: 2, Limit: 10, TotalPages: 3}, page.Meta)
	})

	t.Run("success: limit clamped to the maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockIssuedCouponReadStore(ctrl)

		store.EXPECT().CountByUser(gomock.Any(), userID, nil).Return(int64(0), nil)
		store.EXPECT().ListByUser(gomock.Any(), userID, nil, 0, queries.MaxLimit).Return(nil, nil)

		q := queries.NewIssuedCouponQueries(store, clock.NewMockClock(now))
		page, err := q.ListForUser(t.Context(), userID, nil, 1, 500)

		require.NoError(t, err)
		assert.Equal(t, 0, page.Meta.TotalPages)
	})

	t.Run("success: page far past the end reads as empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockIssuedCouponReadStore(ctrl)

		store.EXPECT().CountByUser(gomock.Any(), userID, nil).Return(int64(3), nil)
		store.EXPECT().ListByUser(gomock.Any(), userID, nil, queries.MaxOffset, queries.MaxLimit).
			Return([]queries.IssuedCouponView{}, nil)

		q := queries.NewIssuedCouponQueries(store, clock.NewMockClock(now))
		page, err := q.ListForUser(t.Context(), userID, nil, 30000000, queries.MaxLimit)

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, queries.PageMeta{Total: 3, Page: 30000000, Limit: queries.MaxLimit, TotalPages: 1}, page.Meta)
	})

	t.Run("success: offset exactly at the cap is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockIssuedCouponReadStore(ctrl)

		store.EXPECT().CountByUser(gomock.Any(), userID, nil).Return(int64(0), nil)
		store.EXPECT().ListByUser(gomock.Any(), userID, nil, queries.MaxOffset, 1).Return(nil, nil)

		q := queries.NewIssuedCouponQueries(store, clock.NewMockClock(now))
		_, err := q.ListForUser(t.Context(), userID, nil, queries.MaxOffset+1, 1)

		require.NoError(t, err)
	})

	t.Run("error: count fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockIssuedCouponReadStore(ctrl)
		store.EXPECT().CountByUser(gomock.Any(), userID, nil).Return(int64(0), errors.New("connection reset"))

		q := queries.NewIssuedCouponQueries(store, clock.NewMockClock(now))
		page, err := q.ListForUser(t.Context(), userID, nil, 1, 10)

		require.Error(t, err)
		assert.Nil(t, page)
	})
}
