package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cycy2xxx/vulnerable-app/internal/database"
)

// seededStore returns a store with the fixture rows in a throwaway file.
func seededStore(t *testing.T) *database.Store {
	t.Helper()
	s := database.New(filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, s.Init(context.Background()))
	return s
}
