// Package session owns the client-side authentication lifecycle:
// restoring a persisted session at startup, login, registration,
// logout and role checks. It is the only writer of session state;
// views read snapshots and never mutate them.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	showcase "github.com/vitshowcase/showcase-go"
)

// State is a snapshot of the current session.
type State struct {
	User            *showcase.User
	IsAuthenticated bool
	Loading         bool
}

// Result reports the outcome of a login or register attempt. On failure
// Error carries the server-supplied message.
type Result struct {
	Success bool
	Error   string
}

// Manager is the session state container. Construct one per application
// lifetime with NewManager and call Restore once at startup.
//
// The manager shares a TokenStore with the API client: the manager
// writes the token on login and clears it on logout, the transport
// reads it per request and drops it on a 401.
type Manager struct {
	client *showcase.Client
	tokens showcase.TokenStore

	mu    sync.Mutex
	state State
}

// NewManager creates a session manager bound to client and its token
// store. The session starts in the loading state until Restore runs.
func NewManager(client *showcase.Client) *Manager {
	return &Manager{
		client: client,
		tokens: client.Tokens(),
		state:  State{Loading: true},
	}
}

// State returns a snapshot of the current session.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Restore rebuilds the session from the persisted token.
//
// Without a stored token the session ends unauthenticated with no
// network call. A stored JWT whose exp claim has already passed is
// dropped locally, also without a network call. Otherwise the profile
// is fetched; any failure invalidates the stored token. Restore always
// leaves Loading false.
func (m *Manager) Restore(ctx context.Context) error {
	token, ok := m.tokens.Token()
	if !ok {
		m.setUnauthenticated()
		return nil
	}

	if tokenExpired(token) {
		_ = m.tokens.Clear()
		m.setUnauthenticated()
		return nil
	}

	user, err := m.client.Auth.Profile(ctx)
	if err != nil {
		// A 401 already cleared the store; clear here too so a
		// network failure cannot resurrect a stale credential.
		_ = m.tokens.Clear()
		m.setUnauthenticated()
		return err
	}

	m.setAuthenticated(user)
	return nil
}

// Login authenticates with the given credentials. On success the token
// is persisted and the session becomes authenticated; on failure the
// store is left untouched and the session stays unauthenticated.
func (m *Manager) Login(ctx context.Context, creds showcase.Credentials) Result {
	m.setLoading(true)

	res, err := m.client.Auth.Login(ctx, creds)
	if err != nil {
		m.setUnauthenticated()
		return Result{Error: showcase.ErrorMessage(err, "Login failed")}
	}

	return m.establish(res)
}

// Register creates an account and logs the new user in. Same contract
// as Login.
func (m *Manager) Register(ctx context.Context, reg showcase.Registration) Result {
	m.setLoading(true)

	res, err := m.client.Auth.Register(ctx, reg)
	if err != nil {
		m.setUnauthenticated()
		return Result{Error: showcase.ErrorMessage(err, "Registration failed")}
	}

	return m.establish(res)
}

// Logout clears the persisted token and resets the session. Purely
// local; the backend keeps no session state to tear down.
func (m *Manager) Logout() {
	_ = m.tokens.Clear()
	m.setUnauthenticated()
}

// IsAdmin reports whether the current user has the admin role.
func (m *Manager) IsAdmin() bool {
	return m.HasRole(showcase.RoleAdmin)
}

// HasRole reports whether the current user has the given role.
func (m *Manager) HasRole(role showcase.Role) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.User != nil && m.state.User.Role == role
}

func (m *Manager) establish(res *showcase.AuthResult) Result {
	if err := m.tokens.SetToken(res.Token); err != nil {
		m.setUnauthenticated()
		return Result{Error: "Failed to persist session: " + err.Error()}
	}
	m.setAuthenticated(res.User)
	return Result{Success: true}
}

func (m *Manager) setAuthenticated(user *showcase.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{User: user, IsAuthenticated: true}
}

func (m *Manager) setUnauthenticated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{}
}

func (m *Manager) setLoading(loading bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = loading
}

// tokenExpired reports whether token is a JWT whose exp claim has
// passed. Tokens that do not parse as JWTs are not rejected here; the
// server stays the authority on their validity.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
