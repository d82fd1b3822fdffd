package handler

import (
	"fmt"
	"html"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/cycy2xxx/vulnerable-app/internal/config"
)

// TraversalHandler — exercise 8, path traversal. The file parameter is
// joined onto the data directory by plain string concatenation: no
// Clean, no containment check, so `../../` walks wherever it likes.
type TraversalHandler struct {
	Cfg config.Config
}

func NewTraversalHandler(cfg config.Config) *TraversalHandler { return &TraversalHandler{Cfg: cfg} }

const traversalForm = `<form method="get" action="/vuln/traversal">
<label>file <input name="file" placeholder="readme.txt"></label>
<button type="submit">read</button>
</form>
<p>Try <code>../../etc/passwd</code> (depth depends on where the app runs).</p>`

// Read returns the text content of the requested file, classifying
// failures into three distinct messages: not found, is a directory, and
// everything else.
func (h *TraversalHandler) Read(c echo.Context) error {
	name := c.QueryParam("file")
	if name == "" {
		return c.HTML(http.StatusOK, page("File viewer", traversalForm))
	}

	path := h.Cfg.DataDir + "/" + name
	data, err := os.ReadFile(path)

	var body string
	switch {
	case err == nil:
		body = fmt.Sprintf(`<p>Contents of %s:</p><pre>%s</pre>`,
			html.EscapeString(name), html.EscapeString(string(data)))
	case os.IsNotExist(err):
		body = fmt.Sprintf(`<p>File not found: %s</p>`, html.EscapeString(name))
	case isDirectory(path):
		body = fmt.Sprintf(`<p>%s is a directory.</p>`, html.EscapeString(name))
	default:
		body = fmt.Sprintf(`<p>Could not read %s.</p>`, html.EscapeString(name))
	}
	return c.HTML(http.StatusOK, page("File viewer", body+traversalForm))
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
