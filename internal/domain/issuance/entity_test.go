//go:build unit

package issuance_test

import (
	"testing"
	"time"

	"flash-coupon/internal/domain/issuance"
	"flash-coupon/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssuedCoupon(t *testing.T) {
	couponID, userID := uuid.New(), uuid.New()
	issuedAt := builder.Now()
	expiresAt := issuedAt.Add(time.Hour)

	ic := issuance.NewIssuedCoupon(couponID, userID, issuedAt, expiresAt)

	assert.NotEqual(t, uuid.Nil, ic.ID())
	assert.Equal(t, couponID, ic.CouponID())
	assert.Equal(t, userID, ic.UserID())
	assert.Equal(t, issuance.StatusIssued, ic.Status())
	assert.Nil(t, ic.UsedAt())
	assert.Equal(t, expiresAt, ic.ExpiresAt())
}

func TestIssuedCouponUse(t *testing.T) {
	now := builder.Now()
	owner := uuid.New()

	tests := []struct {
		name  string
		build func() *issuance.IssuedCoupon
		actor uuid.UUID
		errIs error
	}{
		{
			name:  "所有者は使用できる",
			build: func() *issuance.IssuedCoupon { return builder.NewIssuedCouponBuilder().WithUser(owner).BuildDomain() },
			actor: owner,
		},
		{
			name:  "他人はFORBIDDEN",
			build: func() *issuance.IssuedCoupon { return builder.NewIssuedCouponBuilder().WithUser(owner).BuildDomain() },
			actor: uuid.New(),
			errIs: issuance.ErrNotOwner,
		},
		{
			name: "使用済みはALREADY_USED",
			build: func() *issuance.IssuedCoupon {
				return builder.NewIssuedCouponBuilder().WithUser(owner).Used(now.Add(-time.Minute)).BuildDomain()
			},
			actor: owner,
			errIs: issuance.ErrAlreadyUsed,
		},
		{
			name: "期限切れはRECORD_EXPIRED",
			build: func() *issuance.IssuedCoupon {
				return builder.NewIssuedCouponBuilder().WithUser(owner).With(func(b *builder.IssuedCouponBuilder) {
					b.ExpiresAt = now.Add(-time.Second)
				}).BuildDomain()
			},
			actor: owner,
			errIs: issuance.ErrExpired,
		},
		{
			name: "保存済みEXPIREDもRECORD_EXPIRED",
			build: func() *issuance.IssuedCoupon {
				return builder.NewIssuedCouponBuilder().WithUser(owner).With(func(b *builder.IssuedCouponBuilder) {
					b.Status = issuance.StatusExpired
				}).BuildDomain()
			},
			actor: owner,
			errIs: issuance.ErrExpired,
		},
		{
			name: "他人かつ使用済みは所有者チェックが先",
			build: func() *issuance.IssuedCoupon {
				return builder.NewIssuedCouponBuilder().WithUser(owner).Used(now.Add(-time.Minute)).BuildDomain()
			},
			actor: uuid.New(),
			errIs: issuance.ErrNotOwner,
		},
		{
			name: "使用済みかつ期限切れは使用済みチェックが先",
			build: func() *issuance.IssuedCoupon {
				return builder.NewIssuedCouponBuilder().WithUser(owner).Used(now.Add(-2 * time.Hour)).With(func(b *builder.IssuedCouponBuilder) {
					b.ExpiresAt = now.Add(-time.Hour)
				}).BuildDomain()
			},
			actor: owner,
			errIs: issuance.ErrAlreadyUsed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ic := tt.build()
			err := ic.Use(tt.actor, now)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, issuance.StatusUsed, ic.Status())
			require.NotNil(t, ic.UsedAt())
			assert.Equal(t, now, *ic.UsedAt())
		})
	}
}

func TestIssuedCouponSecondUseKeepsUsedAt(t *testing.T) {
	now := builder.Now()
	ic := builder.NewIssuedCouponBuilder().BuildDomain()

	require.NoError(t, ic.Use(ic.UserID(), now))
	err := ic.Use(ic.UserID(), now.Add(time.Minute))

	require.ErrorIs(t, err, issuance.ErrAlreadyUsed)
	assert.Equal(t, now, *ic.UsedAt())
}

func TestParseStatus(t *testing.T) {
	s, err := issuance.ParseStatus(" used ")
	require.NoError(t, err)
	assert.Equal(t, issuance.StatusUsed, s)

	_, err = issuance.ParseStatus("REVOKED")
	assert.ErrorIs(t, err, issuance.ErrInvalidStatus)
}
