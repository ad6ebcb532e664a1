//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"flash-coupon/internal/domain/coupon"
	"flash-coupon/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCouponApply(t *testing.T) {
	now := builder.Now().Add(time.Minute)

	t.Run("指定フィールドのみ更新", func(t *testing.T) {
		c := builder.NewCouponBuilder().BuildReconstructed()
		before := *c

		err := c.Apply(coupon.UpdateCoupon{Name: ptr("Summer Sale"), DiscountValue: ptr(int32(25))}, now)
		require.NoError(t, err)

		assert.Equal(t, "Summer Sale", c.Name().String())
		assert.Equal(t, int32(25), c.Discount().Value())
		assert.Equal(t, before.Discount().Type(), c.Discount().Type())
		assert.Equal(t, before.StartAt(), c.StartAt())
		assert.Equal(t, before.EndAt(), c.EndAt())
		assert.Equal(t, before.TotalQuantity(), c.TotalQuantity())
		assert.Equal(t, now, c.UpdatedAt())
	})

	t.Run("割引種別変更時に既存値で再検証", func(t *testing.T) {
		c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.DiscountType = "AMOUNT"
			b.DiscountValue = 3000
		}).BuildReconstructed()

		err := c.Apply(coupon.UpdateCoupon{DiscountType: ptr("RATE")}, now)
		require.ErrorIs(t, err, coupon.ErrInvalidDiscountRate)
		assert.Equal(t, coupon.DiscountAmount, c.Discount().Type())
	})

	t.Run("終了日のみ変更で開始日より前NG", func(t *testing.T) {
		c := builder.NewCouponBuilder().BuildReconstructed()
		original := c.EndAt()

		err := c.Apply(coupon.UpdateCoupon{EndAt: ptr(c.StartAt().Add(-time.Hour))}, now)
		require.ErrorIs(t, err, coupon.ErrInvalidDateRange)
		assert.Equal(t, original, c.EndAt())
	})

	t.Run("開始日と終了日を同時に変更", func(t *testing.T) {
		c := builder.NewCouponBuilder().BuildReconstructed()
		start := builder.Now().Add(48 * time.Hour)
		end := start.Add(2 * time.Hour)

		err := c.Apply(coupon.UpdateCoupon{StartAt: &start, EndAt: &end}, now)
		require.NoError(t, err)
		assert.Equal(t, start, c.StartAt())
		assert.Equal(t, end, c.EndAt())
	})

	t.Run("無効な名前では何も変わらない", func(t *testing.T) {
		c := builder.NewCouponBuilder().BuildReconstructed()
		updatedAt := c.UpdatedAt()

		err := c.Apply(coupon.UpdateCoupon{Name: ptr(" "), DiscountValue: ptr(int32(50))}, now)
		require.ErrorIs(t, err, coupon.ErrInvalidName)
		assert.Equal(t, int32(10), c.Discount().Value())
		assert.Equal(t, updatedAt, c.UpdatedAt())
	})

	t.Run("空の更新判定", func(t *testing.T) {
		assert.True(t, coupon.UpdateCoupon{}.IsEmpty())
		assert.False(t, coupon.UpdateCoupon{EndAt: ptr(now)}.IsEmpty())
	})
}
