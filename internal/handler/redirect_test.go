package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectTargetsExactValue(t *testing.T) {
	for _, target := range []string{
		"https://example.invalid",
		"http://evil.example/phish?x=1",
		"javascript:alert(1)",
		"not a url at all",
	} {
		req := httptest.NewRequest(http.MethodGet,
			"/vuln/redirect?url="+url.QueryEscape(target), nil)
		c, rec := newContext(req)

		require.NoError(t, (&RedirectHandler{}).Go(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, target, rec.Header().Get("Location"))
	}
}

func TestRedirectWithoutURLRendersPage(t *testing.T) {
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/vuln/redirect", nil))
	require.NoError(t, (&RedirectHandler{}).Go(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "?url=")
}
