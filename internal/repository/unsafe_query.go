package repository

import (
	"context"
	"fmt"

	"github.com/cycy2xxx/vulnerable-app/internal/database"
	"github.com/cycy2xxx/vulnerable-app/internal/model"
)

// UnsafeUserQuery is the injection surface for the SQL injection
// exercise. It interpolates user input straight into the query text with
// fmt.Sprintf instead of binding parameters. It exists apart from
// UserRepo so the vulnerability is structural: nothing else in the
// application may call through this type.
type UnsafeUserQuery struct{ Store *database.Store }

func NewUnsafeUserQuery(s *database.Store) *UnsafeUserQuery { return &UnsafeUserQuery{Store: s} }

// FindByCredentials runs
//
//	SELECT ... FROM users WHERE password = '<input>' AND username = '<input>'
//
// with both inputs spliced in verbatim. A username of `' OR '1'='1`
// appends a trailing tautology that swallows the whole WHERE clause and
// returns every row, whatever the password was. The built query text is
// returned alongside the rows so the exercise page can display what was
// executed; database errors are handed back raw, schema details and all.
func (r *UnsafeUserQuery) FindByCredentials(ctx context.Context, username, password string) ([]model.User, string, error) {
	query := fmt.Sprintf(
		"SELECT id, username, password, email, role, credit_card, secret_note FROM users WHERE password = '%s' AND username = '%s'",
		password, username)

	db, err := r.Store.Open()
	if err != nil {
		return nil, query, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, query, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Role, &u.CreditCard, &u.SecretNote); err != nil {
			return nil, query, err
		}
		out = append(out, u)
	}
	return out, query, rows.Err()
}
