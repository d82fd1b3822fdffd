// Package session implements the per-client ephemeral state: a record
// keyed by an opaque token carried in a signed cookie. Records hold at
// most user_id, username, role and the synthetic balance used by the
// CSRF exercise. Session lifetime is independent of the database; a
// database reset touches only the balance key, and only via the
// dedicated reset path.
package session

import "context"

// StartingBalance is credited lazily the first time a session's balance
// is read.
const StartingBalance int64 = 100000

// Key names used inside a Record.
const (
	KeyUserID   = "user_id"
	KeyUsername = "username"
	KeyRole     = "role"
	KeyBalance  = "balance"
)

// Record is one session's state. It is a plain map so the weak-auth
// handler can echo the whole thing back to the client verbatim,
// whatever a previous handler happened to put in it.
type Record map[string]any

// Balance returns the session balance, initializing it to
// StartingBalance on first access. Numeric values may arrive as float64
// after a JSON round trip through Redis.
func (r Record) Balance() int64 {
	switch v := r[KeyBalance].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case int:
		return int64(v)
	}
	r[KeyBalance] = StartingBalance
	return StartingBalance
}

// SetBalance overwrites the balance key.
func (r Record) SetBalance(n int64) { r[KeyBalance] = n }

// ClearBalance removes the balance key so the next access re-initializes
// it. Used only by the database reset path.
func (r Record) ClearBalance() { delete(r, KeyBalance) }

// Store maps session tokens to Records. Get hands out a copy and Put
// writes a copy back. Nothing serializes a handler's read-modify-write
// cycle, so two concurrent requests on the same token can both read the
// same balance before either writes back. The transfer exercise relies
// on that lost-update behavior.
type Store interface {
	// Get returns the record for token, or an empty record if none
	// exists. The returned map is the caller's to mutate.
	Get(ctx context.Context, token string) (Record, error)
	// Put stores rec under token, replacing any previous record.
	Put(ctx context.Context, token string, rec Record) error
	// Delete removes the record entirely (logout).
	Delete(ctx context.Context, token string) error
}

func copyRecord(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
