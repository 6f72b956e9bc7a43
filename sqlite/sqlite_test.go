package sqlite_test

import (
	"testing"

	"github.com/novelgrab/novelgrab/sqlite"
	"github.com/stretchr/testify/require"
)

// MustOpenDB opens an in-memory database and registers its cleanup.
func MustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func TestDB_OpenClose(t *testing.T) {
	t.Parallel()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	require.NoError(t, db.Close())
}

func TestDB_OpenInvalidPath(t *testing.T) {
	t.Parallel()

	db := sqlite.NewDB("/nonexistent/dir/archive.db")
	require.Error(t, db.Open())
}
