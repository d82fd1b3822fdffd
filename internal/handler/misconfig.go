package handler

import (
	"fmt"
	"html"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/cycy2xxx/vulnerable-app/internal/config"
	"github.com/cycy2xxx/vulnerable-app/internal/session"
)

// serverBanner is the literal version string the misconfig endpoint
// advertises, fingerprinting the exact stack.
const serverBanner = "vulnerable-app/1.0 (go; echo/4; sqlite3)"

// MisconfigHandler — exercise 7, security misconfiguration. One endpoint
// dumps internal configuration (debug flag, the session signing secret,
// the server banner, a default-credentials hint); the others serve the
// data directory with no restriction beyond what the router itself does.
type MisconfigHandler struct {
	Cfg config.Config
}

func NewMisconfigHandler(cfg config.Config) *MisconfigHandler { return &MisconfigHandler{Cfg: cfg} }

// Misconfig returns the internal configuration values as JSON.
func (h *MisconfigHandler) Misconfig(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"debug":      h.Cfg.Debug,
		"secret_key": session.SigningSecret,
		"server":     serverBanner,
		"hint":       "default credentials: admin / admin123",
	})
}

// FilesIndex lists every file in the data directory as links.
func (h *MisconfigHandler) FilesIndex(c echo.Context) error {
	entries, err := os.ReadDir(h.Cfg.DataDir)
	if err != nil {
		return err
	}
	body := "<p>Directory listing:</p><ul>"
	for _, e := range entries {
		name := e.Name()
		body += fmt.Sprintf(`<li><a href="/files/%s">%s</a></li>`,
			html.EscapeString(name), html.EscapeString(name))
	}
	body += "</ul>"
	return c.HTML(http.StatusOK, page("Files", body))
}

// FilesServe streams the named file straight out of the data directory.
// The only containment is whatever path decoding the transport layer
// already performed.
func (h *MisconfigHandler) FilesServe(c echo.Context) error {
	name := c.Param("*")
	return c.File(h.Cfg.DataDir + "/" + name)
}
