package handler

import (
	"fmt"
	"html"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cycy2xxx/vulnerable-app/internal/repository"
)

// ExposureHandler — exercise 5, sensitive data exposure. Both entry
// points return every users row with every column: passwords, credit
// cards and secret notes included. No role check, no field filtering.
type ExposureHandler struct {
	Users *repository.UserRepo
}

func NewExposureHandler(users *repository.UserRepo) *ExposureHandler {
	return &ExposureHandler{Users: users}
}

// Exposure renders the full table for display.
func (h *ExposureHandler) Exposure(c echo.Context) error {
	users, err := h.Users.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	body := `<p>All registered users, no redaction:</p>
<table border="1">
<tr><th>id</th><th>username</th><th>password</th><th>email</th><th>role</th><th>credit_card</th><th>secret_note</th></tr>`
	for _, u := range users {
		body += fmt.Sprintf("<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			u.ID, html.EscapeString(u.Username), html.EscapeString(u.Password),
			html.EscapeString(u.Email), html.EscapeString(u.Role),
			html.EscapeString(u.CreditCard), html.EscapeString(u.SecretNote))
	}
	body += "</table>"
	return c.HTML(http.StatusOK, page("Data exposure", body))
}

// APIUsers returns the same rows as machine-readable JSON.
func (h *ExposureHandler) APIUsers(c echo.Context) error {
	users, err := h.Users.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}
