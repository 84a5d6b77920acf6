//go:build unit

package user_test

import (
	"testing"

	"shareit/internal/domain/user"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/ptr"
	"shareit/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.Name{}, user.Email{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		expected := user.Reconstruct(0, "Test User", "test@example.com")
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.UserBuilder) { b.Name = "   " },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "email without domain",
				mutate: func(b *builder.UserBuilder) { b.Email = "user@" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.Email = "" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "email with surrounding spaces is accepted",
				mutate: func(b *builder.UserBuilder) { b.Email = "  user@example.com " },
			},
		})
	})
}

func TestApply(t *testing.T) {
	t.Run("patch name only", func(t *testing.T) {
		u := user.Reconstruct(1, "Old", "old@example.com")
		require.NoError(t, u.Apply(user.Patch{Name: ptr.Of("New")}))
		assert.Equal(t, "New", u.Name().Value())
		assert.Equal(t, "old@example.com", u.Email().Value())
	})

	t.Run("invalid email leaves user unchanged", func(t *testing.T) {
		u := user.Reconstruct(1, "Old", "old@example.com")
		err := u.Apply(user.Patch{Email: ptr.Of("nope")})
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		assert.Equal(t, "old@example.com", u.Email().Value())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
