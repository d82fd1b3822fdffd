package handler

import (
	"fmt"
	"html"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cycy2xxx/vulnerable-app/internal/database"
	"github.com/cycy2xxx/vulnerable-app/internal/middleware"
	"github.com/cycy2xxx/vulnerable-app/internal/session"
)

// HomeHandler serves the dashboard and the database lifecycle endpoint.
type HomeHandler struct {
	Store    *database.Store
	Sessions session.Store
}

func NewHomeHandler(store *database.Store, sessions session.Store) *HomeHandler {
	return &HomeHandler{Store: store, Sessions: sessions}
}

// Index renders the dashboard with links to every exercise. The ?name=
// parameter is a leftover diagnostic input; here it is escaped. The
// unescaped sink lives at /vuln/xss.
func (h *HomeHandler) Index(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		name = "Guest"
	}
	rec := middleware.SessionRecord(c)
	who := "not logged in"
	if u, ok := rec[session.KeyUsername].(string); ok && u != "" {
		who = fmt.Sprintf("logged in as %s (%v)", html.EscapeString(u), rec[session.KeyRole])
	}

	body := fmt.Sprintf(`<p>Hello, %s. You are %s.</p>
<p>This application is intentionally vulnerable. Do not expose it to the internet.</p>
<ul>
<li><a href="/vuln/xss">1. Reflected XSS</a></li>
<li><a href="/vuln/sqli">2. SQL injection</a></li>
<li><a href="/vuln/csrf">3. CSRF money transfer</a></li>
<li><a href="/vuln/auth">4. Weak authentication</a></li>
<li><a href="/vuln/exposure">5. Sensitive data exposure</a> (<a href="/api/users">JSON</a>)</li>
<li><a href="/vuln/cmdi">6. Command injection</a></li>
<li><a href="/vuln/misconfig">7. Security misconfiguration</a> (<a href="/files/">open file serving</a>)</li>
<li><a href="/vuln/traversal">8. Path traversal</a></li>
<li><a href="/vuln/access">9. Broken access control</a> (<a href="/admin">admin</a>)</li>
<li><a href="/vuln/redirect">10. Open redirect</a></li>
</ul>`, html.EscapeString(name), who)
	return c.HTML(http.StatusOK, page("Dashboard", body))
}

// ResetDB drops and reseeds the database, clears the session's balance
// key (and nothing else in the session) and bounces back to the index.
func (h *HomeHandler) ResetDB(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.Store.Reset(ctx); err != nil {
		return err
	}
	rec := middleware.SessionRecord(c)
	rec.ClearBalance()
	if err := h.Sessions.Put(ctx, middleware.SessionID(c), rec); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}
