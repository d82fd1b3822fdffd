package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cycy2xxx/vulnerable-app/internal/config"
)

// traversalFixture lays out
//
//	<tmp>/secret.txt        — outside the served directory
//	<tmp>/data/readme.txt
//	<tmp>/data/sub/         — a directory
//
// and returns a handler whose data dir is <tmp>/data.
func traversalFixture(t *testing.T) *TraversalHandler {
	t.Helper()
	tmp := t.TempDir()
	base := filepath.Join(tmp, "data")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "secret.txt"), []byte("top secret"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "readme.txt"), []byte("hello"), 0o644))
	return NewTraversalHandler(config.Config{DataDir: base})
}

func readFile(t *testing.T, h *TraversalHandler, name string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet,
		"/vuln/traversal?file="+url.QueryEscape(name), nil)
	c, rec := newContext(req)
	require.NoError(t, h.Read(c))
	return rec.Body.String()
}

func TestTraversalReadsInsideBase(t *testing.T) {
	body := readFile(t, traversalFixture(t), "readme.txt")
	assert.Contains(t, body, "hello")
}

func TestTraversalEscapesBase(t *testing.T) {
	// ../secret.txt sits outside the served directory; no containment
	// check stops the read.
	body := readFile(t, traversalFixture(t), "../secret.txt")
	assert.Contains(t, body, "top secret")
	assert.NotContains(t, body, "File not found")
}

func TestTraversalNotFound(t *testing.T) {
	body := readFile(t, traversalFixture(t), "missing.txt")
	assert.Contains(t, body, "File not found: missing.txt")
}

func TestTraversalDirectory(t *testing.T) {
	body := readFile(t, traversalFixture(t), "sub")
	assert.Contains(t, body, "sub is a directory.")
}

func TestTraversalEmptyParamShowsForm(t *testing.T) {
	body := readFile(t, traversalFixture(t), "")
	assert.Contains(t, body, `name="file"`)
}
