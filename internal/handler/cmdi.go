package handler

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"os/exec"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
)

// commandTimeout hard-caps the spawned process.
const commandTimeout = 10 * time.Second

// pipeWaitDelay bounds how long Wait blocks on the output pipes after
// the shell exits or is killed. An injected backgrounded command
// inherits the pipes; without this bound it would hold the handler open
// until it exited.
const pipeWaitDelay = time.Second

const timeoutMessage = "command timed out after 10 seconds"

// CmdiHandler — exercise 6, OS command injection. The host parameter is
// concatenated into a fixed ping template and handed to `sh -c`, so
// shell metacharacters (`;`, `|`, `$()`) run arbitrary commands.
type CmdiHandler struct {
	// Timeout overrides the command cap when positive. Zero means
	// commandTimeout.
	Timeout time.Duration
}

func (h *CmdiHandler) timeout() time.Duration {
	if h.Timeout > 0 {
		return h.Timeout
	}
	return commandTimeout
}

const cmdiForm = `<form method="post" action="/vuln/cmdi">
<label>host <input name="host" placeholder="127.0.0.1"></label>
<button type="submit">ping</button>
</form>
<p>Try <code>127.0.0.1; id</code>.</p>`

// Form renders the ping form.
func (h *CmdiHandler) Form(c echo.Context) error {
	return c.HTML(http.StatusOK, page("Ping", cmdiForm))
}

// Submit builds and runs the shell command, returning combined
// stdout/stderr. Timeouts get a fixed message; any other failure returns
// the raw error text alongside whatever output was produced.
//
// The shell starts in its own process group and the whole group is
// killed when the deadline fires, so children forked by an injected
// compound command cannot outlive the cap.
func (h *CmdiHandler) Submit(c echo.Context) error {
	host := c.FormValue("host")
	command := fmt.Sprintf("ping -c 1 %s", host)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = pipeWaitDelay
	out, err := cmd.CombinedOutput()

	var result string
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		result = timeoutMessage
	case err != nil:
		result = string(out) + "\n" + err.Error()
	default:
		result = string(out)
	}

	body := fmt.Sprintf(`<p>Executed: <code>%s</code></p><pre>%s</pre>`,
		html.EscapeString(command), html.EscapeString(result)) + cmdiForm
	return c.HTML(http.StatusOK, page("Ping", body))
}
