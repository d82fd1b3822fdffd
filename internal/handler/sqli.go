package handler

import (
	"fmt"
	"html"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cycy2xxx/vulnerable-app/internal/repository"
)

// SQLiHandler — exercise 2, SQL injection. Submitted credentials are
// spliced verbatim into the query text via the unsafe query path; any
// database error is returned to the client raw.
type SQLiHandler struct {
	Query *repository.UnsafeUserQuery
}

func NewSQLiHandler(q *repository.UnsafeUserQuery) *SQLiHandler { return &SQLiHandler{Query: q} }

const sqliForm = `<form method="post" action="/vuln/sqli">
<label>username <input name="username"></label>
<label>password <input name="password"></label>
<button type="submit">login</button>
</form>
<p>Try username <code>&#39; OR &#39;1&#39;=&#39;1</code> with any password.</p>`

// Form renders the injection login form.
func (h *SQLiHandler) Form(c echo.Context) error {
	return c.HTML(http.StatusOK, page("SQL injection", sqliForm))
}

// Submit executes the interpolated query and renders whatever comes
// back: every matched row in full, or the raw database error text.
func (h *SQLiHandler) Submit(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	users, query, err := h.Query.FindByCredentials(c.Request().Context(), username, password)
	body := fmt.Sprintf(`<p>Executed: <code>%s</code></p>`, html.EscapeString(query))
	if err != nil {
		// Raw driver error, schema details included.
		body += fmt.Sprintf(`<p>Database error: %s</p>`, html.EscapeString(err.Error()))
		return c.HTML(http.StatusOK, page("SQL injection", body+sqliForm))
	}
	if len(users) == 0 {
		body += `<p>Login failed: no matching user.</p>`
		return c.HTML(http.StatusOK, page("SQL injection", body+sqliForm))
	}

	body += `<p>Login OK. Matched rows:</p>
<table border="1">
<tr><th>id</th><th>username</th><th>password</th><th>email</th><th>role</th><th>credit_card</th><th>secret_note</th></tr>`
	for _, u := range users {
		body += fmt.Sprintf("<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			u.ID, html.EscapeString(u.Username), html.EscapeString(u.Password),
			html.EscapeString(u.Email), html.EscapeString(u.Role),
			html.EscapeString(u.CreditCard), html.EscapeString(u.SecretNote))
	}
	body += "</table>"
	return c.HTML(http.StatusOK, page("SQL injection", body+sqliForm))
}
