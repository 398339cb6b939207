package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser(" Manager@ZenoFuel.lk ", " Nimal Perera ", RoleManager)
	require.NoError(t, err)
	require.Equal(t, "manager@zenofuel.lk", user.Email)
	require.Equal(t, "Nimal Perera", user.FullName)

	_, err = NewUser("", "x", RoleWorker)
	require.ErrorIs(t, err, ErrEmptyEmail)
	_, err = NewUser("nope", "x", RoleWorker)
	require.ErrorIs(t, err, ErrInvalidEmail)
	_, err = NewUser("a@b.lk", "x", Role("supplier"))
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole(" ADMIN ")
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, role)
	_, err = ParseRole("owner")
	require.ErrorIs(t, err, ErrInvalidRole)
}
