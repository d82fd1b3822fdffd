package middleware // reusable HTTP middleware for the lab

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cycy2xxx/vulnerable-app/internal/session"
)

// Context keys under which the session middleware stores state.
const (
	CtxSessionID = "session_id"
	CtxSession   = "session_record"
)

// WithSession resolves the session cookie on every request and threads
// the session id plus a mutable copy of the record into the echo
// context. A missing or invalid cookie silently becomes a brand-new
// session. The cookie is set without HttpOnly or Secure so the XSS
// exercise can read document.cookie.
func WithSession(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sid string
			if cookie, err := c.Cookie(session.CookieName); err == nil {
				sid, _ = session.ParseToken(cookie.Value)
			}
			if sid == "" {
				token, newSID, err := session.MintToken()
				if err != nil {
					return err
				}
				sid = newSID
				c.SetCookie(&http.Cookie{
					Name:  session.CookieName,
					Value: token,
					Path:  "/",
				})
			}

			rec, err := store.Get(c.Request().Context(), sid)
			if err != nil {
				return err
			}
			c.Set(CtxSessionID, sid)
			c.Set(CtxSession, rec)
			return next(c)
		}
	}
}

// SessionID returns the session id placed in the context by WithSession.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(CtxSessionID).(string)
	return sid
}

// SessionRecord returns the request's session record. The record is a
// copy; handlers that mutate it must write it back through the Store.
func SessionRecord(c echo.Context) session.Record {
	if rec, ok := c.Get(CtxSession).(session.Record); ok {
		return rec
	}
	return session.Record{}
}
