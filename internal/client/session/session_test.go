package session

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/shortlink/internal/client/api"
	"github.com/dmitrijs2005/shortlink/internal/client/models"
	"github.com/dmitrijs2005/shortlink/internal/client/repositories/identity"
	"github.com/dmitrijs2005/shortlink/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupRepo(t *testing.T) identity.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)
	return identity.NewSQLiteRepository(db)
}

// fakeAPI implements the API interface for manager tests.
type fakeAPI struct {
	LoginRet *models.Identity
	LoginErr error

	RegisterRet *models.Identity
	RegisterErr error

	LogoutErr error

	ListErr   error
	ListCalls int
}

func (f *fakeAPI) Register(ctx context.Context, name, email, password string) (*models.Identity, error) {
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	return f.LoginRet, f.LoginErr
}

func (f *fakeAPI) Logout(ctx context.Context) error { return f.LogoutErr }

func (f *fakeAPI) ListLinks(ctx context.Context) ([]models.ShortLink, error) {
	f.ListCalls++
	return nil, f.ListErr
}

func TestInitWithoutStoredIdentitySkipsProbe(t *testing.T) {
	repo := setupRepo(t)
	f := &fakeAPI{}
	m := NewManager(f, repo, testLogger())

	m.Init(context.Background())

	require.Equal(t, Anonymous, m.State())
	require.Nil(t, m.Current())
	require.Zero(t, f.ListCalls, "no probe without a cached identity")
	require.False(t, m.Loading())
}

func TestInitRevalidation401ClearsIdentity(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	require.NoError(t, repo.Save(ctx, &models.Identity{ID: "u1", Name: "Ann", Email: "a@x.com"}))

	f := &fakeAPI{ListErr: &api.Error{Kind: api.KindApplication, Status: http.StatusUnauthorized, Message: "unauthorized"}}
	m := NewManager(f, repo, testLogger())

	m.Init(ctx)

	require.Equal(t, Anonymous, m.State())
	require.Nil(t, m.Current())

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, stored, "durable identity must be cleared on 401")
}

func TestInitTransientFailureKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	want := &models.Identity{ID: "u1", Name: "Ann", Email: "a@x.com"}
	require.NoError(t, repo.Save(ctx, want))

	for _, probeErr := range []error{
		&api.Error{Kind: api.KindNetwork, Status: 0, Message: "down"},
		&api.Error{Kind: api.KindServerUnavailable, Status: 503, Message: "maintenance"},
	} {
		f := &fakeAPI{ListErr: probeErr}
		m := NewManager(f, repo, testLogger())

		m.Init(ctx)

		require.Equal(t, Authenticated, m.State())
		require.Equal(t, want, m.Current())

		stored, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, want, stored, "an outage must not log the user out")
	}
}

func TestInitProbeSuccessAuthenticates(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	require.NoError(t, repo.Save(ctx, &models.Identity{ID: "u1"}))

	f := &fakeAPI{}
	m := NewManager(f, repo, testLogger())
	m.Init(ctx)

	require.Equal(t, Authenticated, m.State())
	require.Equal(t, 1, f.ListCalls)
}

func TestLoginInstallsAndPersists(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	want := &models.Identity{ID: "u1", Name: "Ann", Email: "a@x.com"}
	f := &fakeAPI{LoginRet: want}
	m := NewManager(f, repo, testLogger())

	require.NoError(t, m.Login(ctx, "a@x.com", "pw"))
	require.Equal(t, Authenticated, m.State())
	require.Equal(t, want, m.Current())
	require.Empty(t, m.Err())

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, stored, "write-through persist on login")
}

func TestLoginFailureStoresMessageAndReturnsError(t *testing.T) {
	repo := setupRepo(t)
	f := &fakeAPI{LoginErr: &api.Error{Kind: api.KindApplication, Status: 401, Message: "Invalid credentials"}}
	m := NewManager(f, repo, testLogger())

	err := m.Login(context.Background(), "a@x.com", "wrong")
	require.Error(t, err)
	require.Equal(t, "Invalid credentials", m.Err())
	require.Nil(t, m.Current())

	m.ClearErr()
	require.Empty(t, m.Err())
}

func TestRegisterInstallsIdentity(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	want := &models.Identity{ID: "u2", Name: "Bob", Email: "b@x.com"}
	f := &fakeAPI{RegisterRet: want}
	m := NewManager(f, repo, testLogger())

	require.NoError(t, m.Register(ctx, "Bob", "b@x.com", "pw"))
	require.Equal(t, want, m.Current())
}

func TestLogoutClearsEvenWhenRemoteFails(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	f := &fakeAPI{LoginRet: &models.Identity{ID: "u1"}, LogoutErr: &api.Error{Kind: api.KindNetwork, Message: "down"}}
	m := NewManager(f, repo, testLogger())
	require.NoError(t, m.Login(ctx, "a@x.com", "pw"))

	m.Logout(ctx)

	require.Equal(t, Anonymous, m.State())
	require.Nil(t, m.Current())

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := NewManager(&fakeAPI{}, setupRepo(t), testLogger())

	require.NotPanics(t, func() {
		m.Logout(ctx)
		m.Logout(ctx)
	})
	require.Nil(t, m.Current())
}

func TestSubscribeNotifiedOnChanges(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{LoginRet: &models.Identity{ID: "u1"}}
	m := NewManager(f, setupRepo(t), testLogger())

	var fired int
	m.Subscribe(func() { fired++ })

	require.NoError(t, m.Login(ctx, "a@x.com", "pw"))
	require.Positive(t, fired)
}
