package repository

import (
	"context"
	"database/sql"

	"github.com/cycy2xxx/vulnerable-app/internal/database"
	"github.com/cycy2xxx/vulnerable-app/internal/model"
)

const userColumns = "id, username, password, email, role, credit_card, secret_note"

// UserRepo reads the users table through parameterized statements. Every
// call opens and closes its own connection; there is no shared handle.
type UserRepo struct{ Store *database.Store }

func NewUserRepo(s *database.Store) *UserRepo { return &UserRepo{Store: s} }

// GetByCredentials fetches the user whose username AND password match
// exactly. The query uses bound parameters; the password column it
// compares against is cleartext.
func (r *UserRepo) GetByCredentials(ctx context.Context, username, password string) (model.User, error) {
	db, err := r.Store.Open()
	if err != nil {
		return model.User{}, err
	}
	defer db.Close()

	var u model.User
	err = db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = ? AND password = ? LIMIT 1",
		username, password).
		Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Role, &u.CreditCard, &u.SecretNote)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// GetByID fetches a user by primary key.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	db, err := r.Store.Open()
	if err != nil {
		return model.User{}, err
	}
	defer db.Close()

	var u model.User
	err = db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ? LIMIT 1", id).
		Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Role, &u.CreditCard, &u.SecretNote)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// ListAll returns every user row, all columns included. Callers hand
// the result to clients unfiltered; the exposure endpoints depend on
// getting every column.
func (r *UserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	db, err := r.Store.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Role, &u.CreditCard, &u.SecretNote); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
