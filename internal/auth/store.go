// Package auth owns the signed-in user state: session restore at startup,
// login/signup against the user directory, logout. Login and signup
// simulate a network round trip; the delay is injected so tests run fast
// and a real API call can replace it without changing the contract.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cyclegear/storefront/internal/logging"
	"github.com/cyclegear/storefront/internal/models"
	"github.com/cyclegear/storefront/internal/notify"
)

var (
	ErrValidation         = errors.New("validation")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAttemptInFlight    = errors.New("authentication attempt in flight")
)

// SessionStore is the durable storage holding the sanitized user record.
type SessionStore interface {
	Save(ctx context.Context, u models.User) error
	Load(ctx context.Context) (models.User, bool, error)
	Clear(ctx context.Context) error
}

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// Snapshot is the auth state as render surfaces see it. Authenticated is
// true iff User is non-nil; Loading is true only until the startup restore
// completes.
type Snapshot struct {
	User          *models.User `json:"user"`
	Authenticated bool         `json:"isAuthenticated"`
	Loading       bool         `json:"isLoading"`
}

type Store struct {
	mu      sync.Mutex
	user    *models.User
	loading bool
	cancel  context.CancelFunc

	restoreOnce sync.Once
	inflight    atomic.Bool

	dir      Directory
	sessions SessionStore
	events   notify.Events
	latency  time.Duration
}

func New(dir Directory, sessions SessionStore, events notify.Events, latency time.Duration) *Store {
	if events == nil {
		events = notify.Noop{}
	}
	return &Store{
		dir:      dir,
		sessions: sessions,
		events:   events,
		latency:  latency,
		loading:  true,
	}
}

// Restore reads the persisted session and settles the loading flag. It is
// run once at startup; repeat calls do nothing. A storage error or a
// payload that does not parse counts as no session.
func (s *Store) Restore(ctx context.Context) {
	s.restoreOnce.Do(func() {
		l := logging.FromContext(ctx).With("svc", "auth.restore")

		u, ok, err := s.sessions.Load(ctx)
		if err != nil {
			l.Warn("session restore failed, starting anonymous", "error", err)
			ok = false
		}

		s.mu.Lock()
		if ok {
			s.user = &u
		}
		s.loading = false
		s.mu.Unlock()

		if ok {
			l.Info("session restored", "user_id", u.ID)
		}
	})
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{Loading: s.loading}
	if s.user != nil {
		u := *s.user
		snap.User = &u
		snap.Authenticated = true
	}
	return snap
}

// Login matches (email, password) exactly against the directory. Failure
// is reported by ErrInvalidCredentials and leaves the state untouched.
func (s *Store) Login(ctx context.Context, email, password string) (models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "email", email)

	actx, release, err := s.begin(ctx)
	if err != nil {
		return models.User{}, err
	}
	defer release()

	if err := s.roundTrip(actx); err != nil {
		l.Warn("login aborted", "error", err)
		return models.User{}, err
	}

	cred, ok := s.dir.FindByEmail(email)
	if !ok || cred.Password != password {
		l.Warn("login failed", "reason", "invalid credentials")
		s.publish(ctx, map[string]any{"type": "login_failed", "email": email})
		return models.User{}, ErrInvalidCredentials
	}

	u := cred.User
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()

	if err := s.sessions.Save(ctx, u); err != nil {
		l.Error("session persist failed", "error", err)
	}

	s.publish(ctx, map[string]any{"type": "user_logged_in", "userID": u.ID})
	return u, nil
}

// Signup appends a new non-admin user to the directory. A duplicate email
// fails with ErrEmailTaken and changes nothing.
func (s *Store) Signup(ctx context.Context, req SignupRequest) (models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup", "email", req.Email)

	if req.Email == "" || req.Password == "" {
		return models.User{}, fmt.Errorf("email and password are required: %w", ErrValidation)
	}

	actx, release, err := s.begin(ctx)
	if err != nil {
		return models.User{}, err
	}
	defer release()

	if err := s.roundTrip(actx); err != nil {
		l.Warn("signup aborted", "error", err)
		return models.User{}, err
	}

	if _, exists := s.dir.FindByEmail(req.Email); exists {
		l.Warn("signup failed", "reason", "email taken")
		s.publish(ctx, map[string]any{"type": "signup_failed", "email": req.Email})
		return models.User{}, ErrEmailTaken
	}

	stored := s.dir.Append(Credential{
		User: models.User{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			IsAdmin:   false,
		},
		Password: req.Password,
	})

	u := stored.User
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()

	if err := s.sessions.Save(ctx, u); err != nil {
		l.Error("session persist failed", "error", err)
	}

	s.publish(ctx, map[string]any{"type": "user_registered", "userID": u.ID})
	return u, nil
}

// Logout always succeeds: state goes anonymous, the persisted record is
// cleared and any in-flight login/signup attempt is aborted.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.user = nil
	s.mu.Unlock()

	if err := s.sessions.Clear(ctx); err != nil {
		logging.FromContext(ctx).Error("session clear failed", "error", err)
	}

	s.publish(ctx, map[string]any{"type": "user_logged_out"})
}

// begin claims the single in-flight authentication slot. The returned
// context is cancelled by Logout.
func (s *Store) begin(ctx context.Context) (context.Context, func(), error) {
	if !s.inflight.CompareAndSwap(false, true) {
		return nil, nil, ErrAttemptInFlight
	}

	actx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	release := func() {
		s.mu.Lock()
		s.cancel = nil
		s.mu.Unlock()
		cancel()
		s.inflight.Store(false)
	}
	return actx, release, nil
}

func (s *Store) roundTrip(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) publish(ctx context.Context, event map[string]any) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.events.PublishEvent(pctx, notify.TopicUserEvents, "auth", event); err != nil {
		logging.FromContext(ctx).Error("auth event publish failed", "error", err)
	}
}
