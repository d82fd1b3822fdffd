package handler

import (
	"fmt"
	"html"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cycy2xxx/vulnerable-app/internal/middleware"
	"github.com/cycy2xxx/vulnerable-app/internal/session"
)

// CSRFHandler — exercise 3, cross-site request forgery. The transfer
// mutates session state with no token and no origin check, so any page
// the victim's browser loads can submit the form for them.
type CSRFHandler struct {
	Sessions session.Store
}

func NewCSRFHandler(sessions session.Store) *CSRFHandler { return &CSRFHandler{Sessions: sessions} }

const transferForm = `<form method="post" action="/vuln/csrf">
<label>to <input name="to"></label>
<label>amount <input name="amount"></label>
<button type="submit">transfer</button>
</form>`

// Form shows the current balance and the transfer form. Reading the
// balance lazily credits the starting amount on first visit.
func (h *CSRFHandler) Form(c echo.Context) error {
	rec := middleware.SessionRecord(c)
	bal := rec.Balance()
	if err := h.Sessions.Put(c.Request().Context(), middleware.SessionID(c), rec); err != nil {
		return err
	}
	return h.render(c, "", bal)
}

// Submit performs the transfer. The funds check runs against the balance
// read when the request began; the debit re-reads the stored record and
// subtracts from whatever is there now, so overlapping transfers can
// each pass the check before either debit lands and drive the balance
// negative. A non-numeric amount propagates as an unhandled error.
func (h *CSRFHandler) Submit(c echo.Context) error {
	to := c.FormValue("to")
	amount, err := strconv.ParseInt(c.FormValue("amount"), 10, 64)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	sid := middleware.SessionID(c)
	rec := middleware.SessionRecord(c)
	bal := rec.Balance()

	if amount <= 0 {
		if err := h.Sessions.Put(ctx, sid, rec); err != nil {
			return err
		}
		return h.render(c, "Invalid amount.", bal)
	}
	if amount > bal {
		if err := h.Sessions.Put(ctx, sid, rec); err != nil {
			return err
		}
		return h.render(c, "Insufficient funds.", bal)
	}

	cur, err := h.Sessions.Get(ctx, sid)
	if err != nil {
		return err
	}
	newBal := cur.Balance() - amount
	cur.SetBalance(newBal)
	if err := h.Sessions.Put(ctx, sid, cur); err != nil {
		return err
	}
	return h.render(c, fmt.Sprintf("Transferred %d to %s.", amount, html.EscapeString(to)), newBal)
}

func (h *CSRFHandler) render(c echo.Context, msg string, bal int64) error {
	body := ""
	if msg != "" {
		body = fmt.Sprintf(`<p>%s</p>`, msg)
	}
	body += fmt.Sprintf(`<p>Your balance: %d</p>`, bal) + transferForm
	return c.HTML(http.StatusOK, page("Transfer", body))
}
