package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RedirectHandler — exercise 10, open redirect. The url parameter
// becomes the redirect target exactly as submitted; there is no scheme
// or host allow-list.
type RedirectHandler struct{}

// Go redirects to whatever the caller asked for, or renders the exercise
// page when no url is given.
func (h *RedirectHandler) Go(c echo.Context) error {
	if url := c.QueryParam("url"); url != "" {
		return c.Redirect(http.StatusFound, url)
	}
	body := `<p>Pass <code>?url=</code> and this endpoint will send you there, wherever that is.</p>
<p><a href="/vuln/redirect?url=https://example.com">example</a></p>`
	return c.HTML(http.StatusOK, page("Redirect", body))
}
