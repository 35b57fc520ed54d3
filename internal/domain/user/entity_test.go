//go:build unit

package user_test

import (
	"testing"

	"localshop-api/internal/domain/user"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}, user.Email{}, user.Phone{}),
	cmpopts.EquateEmpty(),
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("owner@example.com")
	require.NoError(t, err)
	phone, err := user.NewPhone("9876543210")
	require.NoError(t, err)

	actual := user.NewUser("Ramesh Sharma", email, phone, "hashed_password", user.RoleShopkeeper)
	expected := user.NewUser("Ramesh Sharma", email, phone, "hashed_password", user.RoleShopkeeper)

	if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
		t.Errorf("User mismatch (-want +got):\n%s", diff)
	}

	assert.NotEqual(t, uuid.Nil, actual.ID())
	assert.NotEqual(t, expected.ID(), actual.ID())
	assert.Equal(t, user.RoleShopkeeper, actual.Role())
}

func TestEmailValidation(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com", " padded@example.com "}
	for _, s := range valid {
		_, err := user.NewEmail(s)
		require.NoError(t, err, s)
	}

	invalid := []string{"", "plain", "missing@tld", "@example.com", "a b@example.com"}
	for _, s := range invalid {
		_, err := user.NewEmail(s)
		require.ErrorIs(t, err, user.ErrInvalidEmail, s)
	}
}

func TestPhoneValidation(t *testing.T) {
	_, err := user.NewPhone("9876543210")
	require.NoError(t, err)

	_, err = user.NewPhone("12345")
	require.ErrorIs(t, err, user.ErrInvalidPhone)
}

func TestPasswordValidation(t *testing.T) {
	_, err := user.NewPassword("longenough")
	require.NoError(t, err)

	_, err = user.NewPassword("short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)
}

func TestNewRole(t *testing.T) {
	for _, s := range []string{"customer", "shopkeeper"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.True(t, role.IsValid())
	}

	_, err := user.NewRole("admin")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}
