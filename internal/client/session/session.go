// Package session owns the authenticated identity: it restores a cached
// identity at startup, revalidates it against the server, and keeps memory
// and durable storage consistent on every mutation.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/shortlink/internal/client/api"
	"github.com/dmitrijs2005/shortlink/internal/client/models"
	"github.com/dmitrijs2005/shortlink/internal/client/repositories/identity"
	"github.com/dmitrijs2005/shortlink/internal/logging"
)

// State is the lifecycle of the session cache.
type State int

const (
	Uninitialized State = iota
	Revalidating
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Revalidating:
		return "revalidating"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return "invalid"
	}
}

// API is the slice of the transport client the session manager needs.
type API interface {
	Register(ctx context.Context, name, email, password string) (*models.Identity, error)
	Login(ctx context.Context, email, password string) (*models.Identity, error)
	Logout(ctx context.Context) error
	ListLinks(ctx context.Context) ([]models.ShortLink, error)
}

// Manager is the single owner of the current identity. Consumers read it
// through Current/State/Loading and are notified of changes through
// Subscribe; nothing else may write the identity store.
type Manager struct {
	api  API
	repo identity.Repository
	log  logging.Logger

	mu      sync.Mutex
	state   State
	current *models.Identity
	lastErr string
	subs    []func()
}

func NewManager(api API, repo identity.Repository, log logging.Logger) *Manager {
	return &Manager{api: api, repo: repo, log: log, state: Uninitialized}
}

// Init restores any durably stored identity (optimistic, unverified) and
// revalidates it with a lightweight authenticated request. A 401 clears
// both memory and storage; any other failure is inconclusive and the
// optimistic identity is retained, so a transient outage never logs the
// user out. With no stored identity the manager goes straight to Anonymous
// without probing.
func (m *Manager) Init(ctx context.Context) {
	stored, err := m.repo.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to restore identity", "error", err)
	}

	if stored == nil {
		m.transition(nil, Anonymous)
		return
	}

	m.transition(stored, Revalidating)

	// The list endpoint doubles as the session probe; only a definite 401
	// invalidates the cached identity.
	if _, err := m.api.ListLinks(ctx); err != nil {
		if api.IsUnauthorized(err) {
			m.log.Info(ctx, "stored session no longer valid, clearing identity")
			if err := m.repo.Clear(ctx); err != nil {
				m.log.Warn(ctx, "failed to clear stored identity", "error", err)
			}
			m.transition(nil, Anonymous)
			return
		}
		m.log.Warn(ctx, "session probe inconclusive, keeping cached identity", "error", err)
	}

	m.transition(stored, Authenticated)
}

// Login authenticates and, on success, installs the identity with a
// write-through persist. On failure the classified message is retained for
// display and the error is returned so callers can keep form-local state.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	id, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.setError(displayMessage(err, "Login failed. Please try again."))
		return err
	}
	m.install(ctx, id)
	return nil
}

// Register creates an account and installs the returned identity, with the
// same error semantics as Login.
func (m *Manager) Register(ctx context.Context, name, email, password string) error {
	id, err := m.api.Register(ctx, name, email, password)
	if err != nil {
		m.setError(displayMessage(err, "Registration failed. Please try again."))
		return err
	}
	m.install(ctx, id)
	return nil
}

// Logout ends the remote session and unconditionally clears the local
// identity; server unavailability never blocks a local logout. Calling it
// while already logged out is a no-op.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		m.log.Warn(ctx, "remote logout failed, clearing local session anyway", "error", err)
	}
	if err := m.repo.Clear(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear stored identity", "error", err)
	}
	m.transition(nil, Anonymous)
}

// Current returns a copy of the authenticated identity, or nil.
func (m *Manager) Current() *models.Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	cp := *m.current
	return &cp
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Loading is true only while the startup revalidation probe is in flight.
// Consumers must not act on the identity while Loading is true.
func (m *Manager) Loading() bool {
	return m.State() == Revalidating
}

// Err returns the last stored display message, empty when none.
func (m *Manager) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// ClearErr drops the stored display message.
func (m *Manager) ClearErr() {
	m.mu.Lock()
	m.lastErr = ""
	m.mu.Unlock()
}

// Subscribe registers fn to run after every state or identity change.
// Callbacks run synchronously on the mutating goroutine and must be fast.
func (m *Manager) Subscribe(fn func()) {
	m.mu.Lock()
	m.subs = append(m.subs, fn)
	m.mu.Unlock()
}

func (m *Manager) install(ctx context.Context, id *models.Identity) {
	if err := m.repo.Save(ctx, id); err != nil {
		// Memory stays authoritative for this run; the write-through is
		// retried on the next mutation.
		m.log.Warn(ctx, "failed to persist identity", "error", err)
	}
	m.mu.Lock()
	m.current = id
	m.state = Authenticated
	m.lastErr = ""
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) transition(id *models.Identity, s State) {
	m.mu.Lock()
	m.current = id
	m.state = s
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) setError(msg string) {
	m.mu.Lock()
	m.lastErr = msg
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) notify() {
	m.mu.Lock()
	subs := make([]func(), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// displayMessage extracts the classified message, falling back when the
// error is not one of ours.
func displayMessage(err error, fallback string) string {
	var ae *api.Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}
