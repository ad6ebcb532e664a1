//go:build unit

package user_test

import (
	"strings"
	"testing"

	"flash-coupon/internal/domain/user"
	"flash-coupon/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		name, _ := user.NewName("Test User")
		expected := user.NewUser(email, name, builder.Now())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, "Test User", actual.Name().String())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("メールアドレス正規化", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithEmail("  Mixed.Case@Example.COM ").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "mixed.case@example.com", actual.Email().Value())
	})

	t.Run("名前検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "1文字OK",
				mutate: func(b *builder.UserBuilder) { b.WithName("a") },
			},
			{
				name:   "50文字OK",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("あ", 50)) },
			},
			{
				name:   "空の名前NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("") },
				errIs:  user.ErrInvalidName,
			},
			{
				name:   "空白のみNG",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrInvalidName,
			},
			{
				name:   "51文字NG",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", 51)) },
				errIs:  user.ErrInvalidName,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		for _, s := range []string{"admin", "operator", "viewer"} {
			role, err := user.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}

		_, err := user.NewRole("invalid_role")
		require.ErrorIs(t, err, user.ErrInvalidRole)
		_, err = user.NewRole("")
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
