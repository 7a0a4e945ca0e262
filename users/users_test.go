package users_test

import (
	"testing"

	"github.com/jrsteele09/go-photo-session/users"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := users.HashPassword("x")
	require.NoError(t, err)
	require.NotEqual(t, "x", hash)

	u := &users.User{PasswordHash: hash}
	require.True(t, u.CheckPassword("x"))
	require.False(t, u.CheckPassword("y"))
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "a@b.com", users.NormalizeEmail("  A@B.COM "))
}
