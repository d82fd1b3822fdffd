package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cycy2xxx/vulnerable-app/internal/middleware"
	"github.com/cycy2xxx/vulnerable-app/internal/repository"
	"github.com/cycy2xxx/vulnerable-app/internal/session"
)

// WeakAuthHandler — exercise 4, weak authentication. Credentials are
// compared against the cleartext password column, and the response
// leaks the complete session mapping, every key any handler ever put
// in it, straight back to the client.
type WeakAuthHandler struct {
	Users    *repository.UserRepo
	Sessions session.Store
}

func NewWeakAuthHandler(users *repository.UserRepo, sessions session.Store) *WeakAuthHandler {
	return &WeakAuthHandler{Users: users, Sessions: sessions}
}

// Form renders the exercise login form.
func (h *WeakAuthHandler) Form(c echo.Context) error {
	body := `<form method="post" action="/vuln/auth">
<label>username <input name="username"></label>
<label>password <input type="password" name="password"></label>
<button type="submit">login</button>
</form>
<p>Passwords are stored in cleartext; on success the full session state comes back as JSON.</p>`
	return c.HTML(http.StatusOK, page("Weak authentication", body))
}

// Submit checks the cleartext credentials, stores identity in the
// session and echoes the entire session record verbatim.
func (h *WeakAuthHandler) Submit(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	ctx := c.Request().Context()
	u, err := h.Users.GetByCredentials(ctx, username, password)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "login failed"})
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
	return c.JSON(http.StatusOK, rec)
}
