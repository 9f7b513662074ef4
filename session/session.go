package session

import (
	"context"

	"github.com/rs/zerolog/log"

	"shortlink-dashboard/model"
)

// State is the session lifecycle state.
//
// The restore path is a two-phase transition, not a race: a cached identity
// is shown optimistically first, then the introspection result either
// confirms it or tears the session down.
//
//	StateLoading -> StateOptimistic -> {StateAuthenticated, StateUnauthenticated}
//	StateLoading -> {StateAuthenticated, StateUnauthenticated}
//	StateAuthenticated -> StateUnauthenticated   (logout, failed revalidation)
//	StateUnauthenticated -> StateAuthenticated   (login, register)
type State int

const (
	StateLoading State = iota
	StateOptimistic
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateOptimistic:
		return "optimistic"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// AuthAPI is the slice of the gateway client the session manager needs.
type AuthAPI interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
	IntrospectToken(ctx context.Context) (model.IntrospectResponse, error)
}

// TokenSink receives credential lifecycle changes so outbound requests carry
// the right bearer token. Implemented by apiclient.Client.
type TokenSink interface {
	SetToken(token string)
	ClearToken()
}

// Manager owns the authentication lifecycle: the stored credential, the
// displayed identity, and the transitions between session states. No other
// component mutates either. Manager is not safe for concurrent use; drive it
// from a single goroutine.
type Manager struct {
	api     AuthAPI
	sink    TokenSink
	storage Storage

	onChange func(State, *model.Identity)

	state    State
	identity *model.Identity
	restored bool
}

// NewManager creates a session manager in StateLoading.
func NewManager(api AuthAPI, sink TokenSink, storage Storage) *Manager {
	return &Manager{api: api, sink: sink, storage: storage, state: StateLoading}
}

// OnChange registers a hook invoked on every state transition, in transition
// order. Register it before calling Restore.
func (m *Manager) OnChange(fn func(State, *model.Identity)) {
	m.onChange = fn
}

// State returns the current session state.
func (m *Manager) State() State { return m.state }

// Identity returns the currently displayed identity, or nil when there is no
// session.
func (m *Manager) Identity() *model.Identity {
	if m.identity == nil {
		return nil
	}
	identity := *m.identity
	return &identity
}

func (m *Manager) transition(state State, identity *model.Identity) {
	m.state = state
	m.identity = identity
	if m.onChange != nil {
		m.onChange(state, m.Identity())
	}
}

// Restore establishes the session from locally stored state. With no stored
// credential it lands in StateUnauthenticated immediately. With one, a cached
// identity (if any) is surfaced first so the caller can render without
// waiting on the network, then the token is introspected: success overwrites
// the displayed identity with the server-confirmed one, any failure erases
// the credential and cache and ends the session. Revalidation failures are
// handled internally and never returned as errors.
//
// Restore runs the Loading phase exactly once; later calls are no-ops.
func (m *Manager) Restore(ctx context.Context) (*model.Identity, error) {
	if m.restored {
		return m.Identity(), nil
	}
	m.restored = true

	token, err := m.storage.Credential()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read stored credential")
		token = ""
	}
	if token == "" {
		m.transition(StateUnauthenticated, nil)
		return nil, nil
	}

	m.sink.SetToken(token)

	if cached, err := m.storage.Identity(); err == nil && cached != nil {
		log.Debug().Str("email", cached.Email).Msg("Restored cached identity optimistically")
		m.transition(StateOptimistic, cached)
	}

	resp, err := m.api.IntrospectToken(ctx)
	if err != nil {
		log.Info().Err(err).Msg("Token revalidation failed, ending session")
		m.forget()
		return nil, nil
	}

	identity := resp.Identity()
	if err := m.storage.SaveIdentity(identity); err != nil {
		log.Warn().Err(err).Msg("Failed to cache identity")
	}
	m.transition(StateAuthenticated, &identity)
	return m.Identity(), nil
}

// Login authenticates with the backend and starts a session. Errors from the
// gateway are returned verbatim.
func (m *Manager) Login(ctx context.Context, email, password string) (*model.Identity, error) {
	resp, err := m.api.Login(ctx, model.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return m.establish(resp.Token, resp.User)
}

// Register creates an account and starts a session. The registration endpoint
// does not issue a token, so a successful registration is followed by a login
// with the same credentials.
func (m *Manager) Register(ctx context.Context, email, password, name string) (*model.Identity, error) {
	if _, err := m.api.Register(ctx, model.RegisterRequest{Email: email, Password: password, Name: name}); err != nil {
		return nil, err
	}
	resp, err := m.api.Login(ctx, model.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return m.establish(resp.Token, resp.User)
}

func (m *Manager) establish(token string, user model.UserPayload) (*model.Identity, error) {
	if err := m.storage.SaveCredential(token); err != nil {
		log.Warn().Err(err).Msg("Failed to persist credential")
	}
	m.sink.SetToken(token)

	identity := model.NewIdentity(user.ID, user.Email, user.Name)
	if err := m.storage.SaveIdentity(identity); err != nil {
		log.Warn().Err(err).Msg("Failed to cache identity")
	}
	m.transition(StateAuthenticated, &identity)
	log.Info().Str("email", identity.Email).Msg("Session established")
	return m.Identity(), nil
}

// Logout erases the credential and cached identity unconditionally. It is
// idempotent and local-only; the consumed contract has no revocation
// endpoint.
func (m *Manager) Logout() {
	m.forget()
	log.Info().Msg("Logged out")
}

func (m *Manager) forget() {
	if err := m.storage.Clear(); err != nil {
		log.Warn().Err(err).Msg("Failed to clear stored session")
	}
	m.sink.ClearToken()
	m.transition(StateUnauthenticated, nil)
}
