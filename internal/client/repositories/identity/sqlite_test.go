package identity

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/shortlink/internal/client/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:identityrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestRoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	want := &models.Identity{ID: "u1", Name: "Ann", Email: "a@x.com"}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadAbsentReturnsNil(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSaveOverwrites(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.Identity{ID: "u1", Name: "Ann", Email: "a@x.com"}))
	require.NoError(t, repo.Save(ctx, &models.Identity{ID: "u2", Name: "Bob", Email: "b@x.com"}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "u2", got.ID)
}

func TestClearIsIdempotent(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.Identity{ID: "u1"}))
	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}
