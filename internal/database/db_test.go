package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "test.db"))
}

func countRows(t *testing.T, s *Store, table string) int {
	t.Helper()
	db, err := s.Open()
	require.NoError(t, err)
	defer db.Close()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestInitSeedsFixtures(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Init(context.Background()))

	assert.Equal(t, 4, countRows(t, s, "users"))
	assert.Equal(t, 4, countRows(t, s, "posts"))

	db, err := s.Open()
	require.NoError(t, err)
	defer db.Close()

	var role, password string
	require.NoError(t, db.QueryRow(
		"SELECT role, password FROM users WHERE username = 'admin'").Scan(&role, &password))
	assert.Equal(t, "admin", role)
	assert.Equal(t, "admin123", password, "passwords are stored verbatim")
}

func TestInitIsIdempotent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.Init(ctx))

	assert.Equal(t, 4, countRows(t, s, "users"))
	assert.Equal(t, 4, countRows(t, s, "posts"))
}

func TestResetRestoresSeedState(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))

	db, err := s.Open()
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO users (username, password) VALUES ('intruder', 'x')")
	require.NoError(t, err)
	_, err = db.Exec("DELETE FROM posts WHERE id = 1")
	require.NoError(t, err)
	db.Close()

	require.NoError(t, s.Reset(ctx))

	assert.Equal(t, 4, countRows(t, s, "users"))
	assert.Equal(t, 4, countRows(t, s, "posts"))

	db, err = s.Open()
	require.NoError(t, err)
	defer db.Close()
	var n int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM users WHERE username = 'intruder'").Scan(&n))
	assert.Zero(t, n)
}

func TestDanglingPostReferencesAllowed(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Init(context.Background()))

	db, err := s.Open()
	require.NoError(t, err)
	defer db.Close()

	// user_id 999 matches no user; the insert must still succeed.
	_, err = db.Exec("INSERT INTO posts (user_id, title) VALUES (999, 'orphan')")
	assert.NoError(t, err)
}
