package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// XSSHandler — exercise 1, reflected cross-site scripting. The q
// parameter is embedded into the page byte-for-byte: no encoding, no
// allow-list.
type XSSHandler struct{}

// Reflect renders the search page with the raw query string inside it.
func (h *XSSHandler) Reflect(c echo.Context) error {
	q := c.QueryParam("q")
	body := `<form method="get" action="/vuln/xss">
<label>search <input name="q"></label>
<button type="submit">go</button>
</form>`
	if q != "" {
		// Raw insertion, no escaping.
		body += fmt.Sprintf(`<p>Results for: %s</p>`, q)
	}
	return c.HTML(http.StatusOK, page("Search", body))
}
