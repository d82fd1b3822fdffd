package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cycy2xxx/vulnerable-app/internal/middleware"
	"github.com/cycy2xxx/vulnerable-app/internal/repository"
	"github.com/cycy2xxx/vulnerable-app/internal/session"
)

// AuthHandler implements the session-establishing login flow. This is
// the "safe variant": it uses the parameterized repository, unlike
// /vuln/sqli, though it still compares cleartext passwords because
// that is all the users table holds.
type AuthHandler struct {
	Users    *repository.UserRepo
	Sessions session.Store
}

func NewAuthHandler(users *repository.UserRepo, sessions session.Store) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions}
}

const loginForm = `<form method="post" action="/login">
<label>username <input name="username"></label>
<label>password <input type="password" name="password"></label>
<button type="submit">login</button>
</form>
<p>Hint: try admin / admin123</p>`

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.HTML(http.StatusOK, page("Login", loginForm))
}

// Login checks the submitted credentials by exact match and, on success,
// writes identity into the session and redirects home.
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	ctx := c.Request().Context()
	u, err := h.Users.GetByCredentials(ctx, username, password)
	if errors.Is(err, repository.ErrNotFound) {
		return c.HTML(http.StatusUnauthorized,
			page("Login", `<p>Login failed.</p>`+loginForm))
	}
	if err != nil {
		return err
	}

	rec := middleware.SessionRecord(c)
	rec[session.KeyUserID] = u.ID
	rec[session.KeyUsername] = u.Username
	rec[session.KeyRole] = u.Role
	if err := h.Sessions.Put(ctx, middleware.SessionID(c), rec); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

// Logout discards the whole session record.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.Sessions.Delete(c.Request().Context(), middleware.SessionID(c)); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}
