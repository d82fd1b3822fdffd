package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cycy2xxx/vulnerable-app/internal/repository"
	"github.com/cycy2xxx/vulnerable-app/internal/session"
)

func TestLoginEstablishesSession(t *testing.T) {
	sessions := session.NewMemoryStore()
	h := NewAuthHandler(repository.NewUserRepo(seededStore(t)), sessions)

	c, rec := newContext(formRequest("/login", url.Values{
		"username": {"tanaka"},
		"password": {"tanaka2024"},
	}))
	withSession(c, "tok", session.Record{})

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	stored, err := sessions.Get(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "tanaka", stored[session.KeyUsername])
	assert.Equal(t, "user", stored[session.KeyRole])
	assert.EqualValues(t, 4, stored[session.KeyUserID])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	sessions := session.NewMemoryStore()
	h := NewAuthHandler(repository.NewUserRepo(seededStore(t)), sessions)

	c, rec := newContext(formRequest("/login", url.Values{
		"username": {"tanaka"},
		"password": {"nope"},
	}))
	withSession(c, "tok", session.Record{})

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Login failed.")

	stored, err := sessions.Get(context.Background(), "tok")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestLogoutClearsWholeSession(t *testing.T) {
	sessions := session.NewMemoryStore()
	h := NewAuthHandler(repository.NewUserRepo(seededStore(t)), sessions)
	ctx := context.Background()

	rec := session.Record{session.KeyUsername: "admin", session.KeyRole: "admin"}
	rec.SetBalance(5)
	require.NoError(t, sessions.Put(ctx, "tok", rec))

	c, res := newContext(httptest.NewRequest(http.MethodGet, "/logout", nil))
	withSession(c, "tok", rec)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusFound, res.Code)

	stored, err := sessions.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Empty(t, stored)
}
