package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avoronin/authkeep/internal/common"
	"github.com/avoronin/authkeep/internal/logging"
	"github.com/avoronin/authkeep/internal/models"
	"github.com/avoronin/authkeep/internal/registry"
	"github.com/avoronin/authkeep/internal/storage"
)

// Fixed storage keys. The session record holds the currently
// authenticated user as a single JSON document; the registry record holds
// the JSON sequence of all registered users.
const (
	SessionKey  = "auth_user"
	RegistryKey = "auth_users"
)

// DefaultLatency is the simulated round-trip delay applied before login
// and signup resolve. It exists purely for UX feedback.
const DefaultLatency = 1 * time.Second

// User-visible error messages recorded in AuthState.Error.
const (
	msgInvalidCredentials = "Invalid email or password"
	msgUserExists         = "User already exists"
	msgLoadFailure        = "Failed to load user data"
	msgLoginFailed        = "Login failed"
	msgSignupFailed       = "Signup failed"
)

// Manager is the state-owning session service. Exactly one instance exists
// per running application. All state mutation funnels through the reducer;
// all mutating operations are serialized by a single-flight lock so the
// read-check-write spans on the registry and session record are atomic.
type Manager struct {
	store   storage.Store
	log     logging.Logger
	latency time.Duration
	now     func() time.Time
	newID   func() string

	// mu admits one in-flight mutating action at a time.
	mu sync.Mutex

	// stateMu guards state so snapshot reads never wait on store I/O.
	stateMu sync.RWMutex
	state   AuthState

	subMu   sync.Mutex
	subs    map[int]func(AuthState)
	nextSub int
}

// Option customizes a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for transition and failure logging.
func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithLatency overrides the simulated request latency. Tests pass 0.
func WithLatency(d time.Duration) Option {
	return func(m *Manager) { m.latency = d }
}

// WithClock overrides the timestamp source for new users.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDSource overrides the user ID generator.
func WithIDSource(fn func() string) Option {
	return func(m *Manager) { m.newID = fn }
}

// NewManager constructs a Manager in the Initializing state. Call Init
// once at process start to restore any persisted session.
func NewManager(store storage.Store, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		log:     logging.NewDefault(slog.LevelInfo),
		latency: DefaultLatency,
		now:     time.Now,
		newID:   uuid.NewString,
		state:   AuthState{IsLoading: true},
		subs:    make(map[int]func(AuthState)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns a snapshot of the current auth state. It never blocks on
// storage and always reflects the most recently committed transition.
func (m *Manager) State() AuthState {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return m.state
}

// Subscribe registers fn to be called with a snapshot after every committed
// transition. The returned function removes the subscription.
func (m *Manager) Subscribe(fn func(AuthState)) (unsubscribe func()) {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

func (m *Manager) dispatch(a action) {
	m.stateMu.Lock()
	m.state = reduce(m.state, a)
	snap := m.state
	m.stateMu.Unlock()

	m.subMu.Lock()
	fns := make([]func(AuthState), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Init restores the persisted session record, if any. A store failure is
// recorded as a visible error and returned, but leaves the manager usable:
// the process continues unauthenticated.
func (m *Manager) Init(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dispatch(initRequest{})

	data, err := m.store.Get(ctx, SessionKey)
	if err != nil {
		m.log.Error(ctx, "session restore failed", "err", err)
		m.dispatch(initFailure{message: msgLoadFailure})
		return err
	}
	if data == nil {
		m.dispatch(initSuccess{user: nil})
		return nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		m.log.Error(ctx, "session record corrupt", "err", err)
		m.dispatch(initFailure{message: msgLoadFailure})
		return err
	}

	m.log.Info(ctx, "session restored", "user_id", user.ID)
	m.dispatch(initSuccess{user: &user})
	return nil
}

// Login authenticates creds against the registry. On success the matched
// user becomes the persisted session record. On failure the previous
// authentication status is kept, the error is recorded in state, and the
// failure is also returned so the caller can react locally.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dispatch(loginRequest{})

	if err := m.wait(ctx); err != nil {
		m.dispatch(loginFailure{message: msgLoginFailed})
		return err
	}

	users, err := m.loadRegistry(ctx)
	if err != nil {
		m.dispatch(loginFailure{message: msgLoginFailed})
		return err
	}

	user, ok := registry.FindMatch(users, creds.Email, creds.Password)
	if !ok {
		m.log.Warn(ctx, "login rejected", "email", creds.Email)
		m.dispatch(loginFailure{message: msgInvalidCredentials})
		return common.ErrInvalidCredentials
	}

	data, err := json.Marshal(user)
	if err != nil {
		m.dispatch(loginFailure{message: msgLoginFailed})
		return err
	}
	if err := m.store.Set(ctx, SessionKey, data); err != nil {
		m.log.Error(ctx, "session record write failed", "err", err)
		m.dispatch(loginFailure{message: msgLoginFailed})
		return err
	}

	m.log.Info(ctx, "login succeeded", "user_id", user.ID)
	m.dispatch(loginSuccess{user: user})
	return nil
}

// Signup creates a new user, appends it to the registry and signs it in.
// The duplicate-email check and both writes happen under the single-flight
// lock, so two racing signups cannot both pass the check; the registry and
// session record are written in one transaction.
func (m *Manager) Signup(ctx context.Context, data models.SignupData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dispatch(signupRequest{})

	if err := m.wait(ctx); err != nil {
		m.dispatch(signupFailure{message: msgSignupFailed})
		return err
	}

	users, err := m.loadRegistry(ctx)
	if err != nil {
		m.dispatch(signupFailure{message: msgSignupFailed})
		return err
	}

	if registry.IsEmailTaken(users, data.Email) {
		m.log.Warn(ctx, "signup rejected, email taken", "email", data.Email)
		m.dispatch(signupFailure{message: msgUserExists})
		return common.ErrUserExists
	}

	user := models.User{
		ID:        m.newID(),
		Name:      data.Name,
		Email:     data.Email,
		Password:  data.Password,
		CreatedAt: m.now().UTC(),
	}

	regData, err := registry.Encode(registry.Append(users, user))
	if err != nil {
		m.dispatch(signupFailure{message: msgSignupFailed})
		return err
	}
	userData, err := json.Marshal(user)
	if err != nil {
		m.dispatch(signupFailure{message: msgSignupFailed})
		return err
	}

	err = m.store.Update(ctx, func(ctx context.Context, tx storage.Store) error {
		if err := tx.Set(ctx, RegistryKey, regData); err != nil {
			return err
		}
		return tx.Set(ctx, SessionKey, userData)
	})
	if err != nil {
		m.log.Error(ctx, "signup persist failed", "err", err)
		m.dispatch(signupFailure{message: msgSignupFailed})
		return err
	}

	m.log.Info(ctx, "signup succeeded", "user_id", user.ID)
	m.dispatch(signupSuccess{user: &user})
	return nil
}

// Logout removes the session record and drops to Unauthenticated. The
// registry is untouched. Logging out twice is a no-op the second time.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(ctx, SessionKey); err != nil {
		m.log.Error(ctx, "session record delete failed", "err", err)
		return err
	}

	m.log.Info(ctx, "logged out")
	m.dispatch(logoutAction{})
	return nil
}

// ClearError resets the visible error and touches nothing else.
func (m *Manager) ClearError() {
	m.dispatch(clearErrorAction{})
}

func (m *Manager) loadRegistry(ctx context.Context) ([]models.User, error) {
	data, err := m.store.Get(ctx, RegistryKey)
	if err != nil {
		m.log.Error(ctx, "registry read failed", "err", err)
		return nil, err
	}
	users, err := registry.Decode(data)
	if err != nil {
		m.log.Error(ctx, "registry record corrupt", "err", err)
		return nil, err
	}
	return users, nil
}

// wait sleeps for the simulated request latency. Cancelling ctx during the
// wait aborts the request before any store work has happened; once the wait
// has passed, the operation runs to completion and commits.
func (m *Manager) wait(ctx context.Context) error {
	if m.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(m.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
