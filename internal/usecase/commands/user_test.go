//go:build unit

package commands_test

import (
	"errors"
	"testing"

	"flash-coupon/internal/domain/user"
	"flash-coupon/internal/infra"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/usecase/commands"
	"flash-coupon/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserCommands_CreateTestUser(t *testing.T) {
	testCases := []struct {
		name          string
		req           commands.CreateUserRequest
		repoErr       error
		expectTx      bool
		expectErrorIs error
	}{
		{
			name:     "success: email normalized",
			req:      commands.CreateUserRequest{Email: " Buyer@Example.com ", Name: "Buyer"},
			expectTx: true,
		},
		{
			name:          "error: invalid email",
			req:           commands.CreateUserRequest{Email: "not-an-email", Name: "Buyer"},
			expectErrorIs: user.ErrInvalidEmail,
		},
		{
			name:          "error: empty name",
			req:           commands.CreateUserRequest{Email: "buyer@example.com", Name: "  "},
			expectErrorIs: user.ErrInvalidName,
		},
		{
			name:          "error: email taken",
			req:           commands.CreateUserRequest{Email: "buyer@example.com", Name: "Buyer"},
			repoErr:       infra.WrapRepoErr("user already exists", errors.New("23505"), infra.KindDuplicateKey),
			expectTx:      true,
			expectErrorIs: commands.ErrDuplicateEmail,
		},
		{
			name:          "error: database failure",
			req:           commands.CreateUserRequest{Email: "buyer@example.com", Name: "Buyer"},
			repoErr:       infra.WrapRepoErr("failed to create user", errors.New("connection reset")),
			expectTx:      true,
			expectErrorIs: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			if tc.expectTx {
				f.expectTx()
				f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(tc.repoErr)
			}

			uc := commands.NewUserCommands(f.uow, f.clock)
			u, err := uc.CreateTestUser(f.ctx, tc.req)

			if tc.expectErrorIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErrorIs), "expected %v, got %v", tc.expectErrorIs, err)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "buyer@example.com", u.Email().Value())
			assert.Equal(t, builder.Now(), u.CreatedAt())
		})
	}
}
