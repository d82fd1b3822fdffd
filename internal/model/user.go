package model

// User mirrors the `users` table. The password is the cleartext value as
// stored; credit_card and secret_note are fixture secrets seeded for the
// exposure exercises. JSON tags cover every column; several handlers
// return the full row.
type User struct {
	ID         int64  `json:"id"`          // users.id
	Username   string `json:"username"`    // users.username (unique)
	Password   string `json:"password"`    // users.password (cleartext)
	Email      string `json:"email"`       // users.email
	Role       string `json:"role"`        // users.role ("admin" or "user")
	CreditCard string `json:"credit_card"` // users.credit_card
	SecretNote string `json:"secret_note"` // users.secret_note
}
