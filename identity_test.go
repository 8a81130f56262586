package main

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func testTokens() tokenConfig {
	return tokenConfig{secret: testSecret, method: jwt.SigningMethodHS256, ttl: 30 * time.Minute}
}

func TestResolveIdentity(t *testing.T) {
	tc := testTokens()
	alice := &User{ID: 1, Email: "alice@example.com"}
	lookup := func(email string) (*User, error) {
		if email == alice.Email {
			return alice, nil
		}
		return nil, nil
	}

	t.Run("missing token", func(t *testing.T) {
		_, err := resolveIdentity("", tc, lookup)
		require.ErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := resolveIdentity("garbage-string", tc, lookup)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("expired token", func(t *testing.T) {
		raw, err := issueToken(alice.Email, -time.Minute, tc.secret, tc.method)
		require.NoError(t, err)
		_, err = resolveIdentity(raw, tc, lookup)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		raw, err := tc.issueSession("deleted@example.com")
		require.NoError(t, err)
		_, err = resolveIdentity(raw, tc, lookup)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("success", func(t *testing.T) {
		raw, err := tc.issueSession(alice.Email)
		require.NoError(t, err)
		u, err := resolveIdentity(raw, tc, lookup)
		require.NoError(t, err)
		require.Equal(t, alice.ID, u.ID)
		require.Equal(t, alice.Email, u.Email)
	})
}
