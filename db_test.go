package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// a file-backed store per test: with :memory: every pooled connection
// would see its own empty database
func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.close() })
	return s
}

func TestSQLiteStore_CreateAndGet(t *testing.T) {
	s := newTestSQLiteStore(t)

	u, err := s.CreateUser("alice@example.com", "hash", "Alice")
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.Equal(t, "Alice", u.FullName)

	byEmail, err := s.GetUserByEmail("alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	require.Equal(t, u.ID, byEmail.ID)

	byID, err := s.GetUserByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, "alice@example.com", byID.Email)

	missing, err := s.GetUserByEmail("nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestSQLiteStore_DuplicateEmail(t *testing.T) {
	s := newTestSQLiteStore(t)

	_, err := s.CreateUser("dup@example.com", "hash", "")
	require.NoError(t, err)

	_, err = s.CreateUser("dup@example.com", "hash", "")
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestSQLiteStore_InternalErrorIsNotDuplicate(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	// a dead handle must surface as an internal error, not as a taken email
	require.NoError(t, s.close())

	_, err = s.CreateUser("alice@example.com", "hash", "")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrDuplicateEmail)
}
