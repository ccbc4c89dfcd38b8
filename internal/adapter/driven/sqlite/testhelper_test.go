package sqlite

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB opens a migrated in-memory profile private to the calling
// test. cache=shared lets the writer and reader pools see the same
// database; the escaped test name keeps parallel tests apart.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&%s", url.PathEscape(t.Name()), sharedPragmas)
	db, err := open(context.Background(), dsn, ":memory:")
	require.NoError(t, err, "open in-memory profile")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(db.Writer), "migrate in-memory profile")
	return db
}
