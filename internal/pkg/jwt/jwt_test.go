//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"flash-coupon/internal/domain/user"
	"flash-coupon/internal/pkg/clock"
	"flash-coupon/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success: round trip keeps user and role", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour, clock.NewMockClock(now))
		userID := uuid.New()

		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, userID.String(), claims.Subject)
	})

	t.Run("error: expired token", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		svc := jwt.NewService("secret", time.Hour, clk)

		token, err := svc.GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		clk.Add(2 * time.Hour)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour, clock.NewMockClock(now)).GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour, clock.NewMockClock(now)).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: unsigned token", func(t *testing.T) {
		unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{UserID: uuid.New(), Role: "admin"})
		token, err := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour, clock.NewMockClock(now)).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour, clock.NewMockClock(now)).ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
