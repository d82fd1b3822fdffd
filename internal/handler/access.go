package handler

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cycy2xxx/vulnerable-app/internal/repository"
)

// AccessHandler — exercise 9, broken access control. Profiles are
// addressed by guessable numeric ids with no ownership check (IDOR), and
// the admin view requires no authentication at all.
type AccessHandler struct {
	Users *repository.UserRepo
	Posts *repository.PostRepo
}

func NewAccessHandler(users *repository.UserRepo, posts *repository.PostRepo) *AccessHandler {
	return &AccessHandler{Users: users, Posts: posts}
}

// Index explains the exercise and links a few profile ids to iterate.
func (h *AccessHandler) Index(c echo.Context) error {
	body := `<p>Profiles are addressed by id. Nothing checks whose session is asking.</p>
<ul>
<li><a href="/vuln/access/profile/1">profile 1</a></li>
<li><a href="/vuln/access/profile/2">profile 2</a></li>
<li><a href="/vuln/access/profile/3">profile 3</a></li>
<li><a href="/vuln/access/profile/4">profile 4</a></li>
</ul>
<p>There is also an <a href="/admin">admin view</a> with no login.</p>`
	return c.HTML(http.StatusOK, page("Access control", body))
}

// Profile renders the complete profile of whatever id is in the path,
// secrets included, regardless of the current session identity.
func (h *AccessHandler) Profile(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return err
	}

	u, err := h.Users.GetByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.HTML(http.StatusNotFound, page("Profile", `<p>User not found.</p>`))
	}
	if err != nil {
		return err
	}

	body := fmt.Sprintf(`<dl>
<dt>id</dt><dd>%d</dd>
<dt>username</dt><dd>%s</dd>
<dt>password</dt><dd>%s</dd>
<dt>email</dt><dd>%s</dd>
<dt>role</dt><dd>%s</dd>
<dt>credit_card</dt><dd>%s</dd>
<dt>secret_note</dt><dd>%s</dd>
</dl>`,
		u.ID, html.EscapeString(u.Username), html.EscapeString(u.Password),
		html.EscapeString(u.Email), html.EscapeString(u.Role),
		html.EscapeString(u.CreditCard), html.EscapeString(u.SecretNote))
	return c.HTML(http.StatusOK, page("Profile", body))
}

// Admin dumps every user and every post. No authentication, no role
// check.
func (h *AccessHandler) Admin(c echo.Context) error {
	ctx := c.Request().Context()
	users, err := h.Users.ListAll(ctx)
	if err != nil {
		return err
	}
	posts, err := h.Posts.ListAll(ctx)
	if err != nil {
		return err
	}

	body := `<h2>Users</h2>
<table border="1">
<tr><th>id</th><th>username</th><th>password</th><th>role</th><th>credit_card</th><th>secret_note</th></tr>`
	for _, u := range users {
		body += fmt.Sprintf("<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			u.ID, html.EscapeString(u.Username), html.EscapeString(u.Password),
			html.EscapeString(u.Role), html.EscapeString(u.CreditCard), html.EscapeString(u.SecretNote))
	}
	body += `</table>
<h2>Posts</h2>
<table border="1">
<tr><th>id</th><th>user_id</th><th>title</th><th>content</th></tr>`
	for _, p := range posts {
		body += fmt.Sprintf("<tr><td>%d</td><td>%d</td><td>%s</td><td>%s</td></tr>",
			p.ID, p.UserID, html.EscapeString(p.Title), html.EscapeString(p.Content))
	}
	body += "</table>"
	return c.HTML(http.StatusOK, page("Admin", body))
}
