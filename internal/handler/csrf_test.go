package handler

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cycy2xxx/vulnerable-app/internal/session"
)

func TestTransferDecrementsBalance(t *testing.T) {
	sessions := session.NewMemoryStore()
	h := NewCSRFHandler(sessions)

	c, rec := newContext(formRequest("/vuln/csrf", url.Values{
		"to":     {"mallory"},
		"amount": {"30000"},
	}))
	withSession(c, "tok", session.Record{})

	require.NoError(t, h.Submit(c))

	body := rec.Body.String()
	assert.Contains(t, body, "Transferred 30000 to mallory.")
	assert.Contains(t, body, fmt.Sprintf("Your balance: %d", session.StartingBalance-30000))

	stored, err := sessions.Get(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, session.StartingBalance-30000, stored.Balance())
}

func TestTransferInsufficientFunds(t *testing.T) {
	sessions := session.NewMemoryStore()
	h := NewCSRFHandler(sessions)

	c, rec := newContext(formRequest("/vuln/csrf", url.Values{
		"to":     {"mallory"},
		"amount": {"999999"},
	}))
	withSession(c, "tok", session.Record{})

	require.NoError(t, h.Submit(c))
	assert.Contains(t, rec.Body.String(), "Insufficient funds.")

	stored, err := sessions.Get(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, session.StartingBalance, stored.Balance())
}

func TestTransferNonPositiveAmount(t *testing.T) {
	sessions := session.NewMemoryStore()
	h := NewCSRFHandler(sessions)

	for _, amount := range []string{"0", "-500"} {
		c, rec := newContext(formRequest("/vuln/csrf", url.Values{
			"to":     {"mallory"},
			"amount": {amount},
		}))
		withSession(c, "tok", session.Record{})

		require.NoError(t, h.Submit(c))
		assert.Contains(t, rec.Body.String(), "Invalid amount.")
	}

	stored, err := sessions.Get(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, session.StartingBalance, stored.Balance())
}

func TestTransferMalformedAmountPropagates(t *testing.T) {
	h := NewCSRFHandler(session.NewMemoryStore())

	c, _ := newContext(formRequest("/vuln/csrf", url.Values{
		"to":     {"mallory"},
		"amount": {"lots"},
	}))
	withSession(c, "tok", session.Record{})

	// No validation layer: the parse error escapes as-is.
	assert.Error(t, h.Submit(c))
}

// TestTransferDoubleSpendRace replays the documented race: two requests
// whose funds checks both saw the full balance before either debit
// landed. Both succeed and the second drives the balance negative.
func TestTransferDoubleSpendRace(t *testing.T) {
	sessions := session.NewMemoryStore()
	h := NewCSRFHandler(sessions)
	ctx := context.Background()

	seed := session.Record{}
	seed.SetBalance(session.StartingBalance)
	require.NoError(t, sessions.Put(ctx, "tok", seed))

	full := fmt.Sprintf("%d", session.StartingBalance)
	stale := func() session.Record {
		r := session.Record{}
		r.SetBalance(session.StartingBalance) // both requests read the same balance
		return r
	}

	c1, rec1 := newContext(formRequest("/vuln/csrf", url.Values{"to": {"a"}, "amount": {full}}))
	withSession(c1, "tok", stale())
	require.NoError(t, h.Submit(c1))
	assert.Contains(t, rec1.Body.String(), "Transferred")

	c2, rec2 := newContext(formRequest("/vuln/csrf", url.Values{"to": {"b"}, "amount": {full}}))
	withSession(c2, "tok", stale())
	require.NoError(t, h.Submit(c2))
	assert.Contains(t, rec2.Body.String(), "Transferred")

	stored, err := sessions.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, -session.StartingBalance, stored.Balance(),
		"both transfers debited a balance that only covered one")
}
