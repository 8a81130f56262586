package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	h, err := hashPassword("pw123")
	require.NoError(t, err)
	require.NotEmpty(t, h)
	require.NotEqual(t, "pw123", h)
	require.True(t, comparePassword(h, "pw123"))
	require.False(t, comparePassword(h, "pw124"))
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := hashPassword("same-password")
	require.NoError(t, err)
	h2, err := hashPassword("same-password")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
	require.True(t, comparePassword(h1, "same-password"))
	require.True(t, comparePassword(h2, "same-password"))
}

func TestComparePassword_MalformedHash(t *testing.T) {
	require.False(t, comparePassword("not-a-bcrypt-hash", "pw123"))
	require.False(t, comparePassword("", "pw123"))
}

func TestAuthenticate(t *testing.T) {
	hashed, err := hashPassword("pw123")
	require.NoError(t, err)
	known := &User{ID: 1, Email: "alice@example.com", HashedPassword: hashed}
	lookup := func(email string) (*User, error) {
		if email == known.Email {
			return known, nil
		}
		return nil, nil
	}

	t.Run("unknown email", func(t *testing.T) {
		u, err := authenticate("nobody@example.com", "pw123", lookup)
		require.NoError(t, err)
		require.Nil(t, u)
	})

	t.Run("wrong password", func(t *testing.T) {
		u, err := authenticate("alice@example.com", "wrong", lookup)
		require.NoError(t, err)
		require.Nil(t, u)
	})

	t.Run("success", func(t *testing.T) {
		u, err := authenticate("alice@example.com", "pw123", lookup)
		require.NoError(t, err)
		require.NotNil(t, u)
		require.Equal(t, known.ID, u.ID)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		boom := errors.New("store down")
		_, err := authenticate("alice@example.com", "pw123", func(string) (*User, error) {
			return nil, boom
		})
		require.ErrorIs(t, err, boom)
	})
}
