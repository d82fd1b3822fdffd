package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/cycy2xxx/vulnerable-app/internal/database"
	"github.com/cycy2xxx/vulnerable-app/internal/middleware"
	"github.com/cycy2xxx/vulnerable-app/internal/session"
)

// seededStore returns a store with the fixture rows in a throwaway file.
func seededStore(t *testing.T) *database.Store {
	t.Helper()
	s := database.New(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, s.Init(context.Background()))
	return s
}

// newContext builds an echo context around the given request.
func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

// formRequest builds a POST with an urlencoded body, the way the
// exercise forms submit.
func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

// withSession seeds the context the way the session middleware would
// have: a session id plus the record as read at the start of the
// request.
func withSession(c echo.Context, sid string, rec session.Record) {
	c.Set(middleware.CtxSessionID, sid)
	c.Set(middleware.CtxSession, rec)
}
