package auth

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cyclegear/storefront/internal/session"
)

func newTestSessions(t *testing.T) *session.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	s, err := session.New(db)
	require.NoError(t, err)
	return s
}

func newTestStore(t *testing.T, latency time.Duration) (*Store, *MemoryDirectory, *session.Store) {
	t.Helper()

	dir := SeedDirectory()
	sessions := newTestSessions(t)
	return New(dir, sessions, nil, latency), dir, sessions
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	s, _, sessions := newTestStore(t, time.Millisecond)
	ctx := context.Background()
	s.Restore(ctx)

	user, err := s.Login(ctx, "admin@cyclegear.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.True(t, user.IsAdmin)

	snap := s.Snapshot()
	require.NotNil(t, snap.User)
	assert.True(t, snap.Authenticated)
	assert.False(t, snap.Loading)
	assert.Equal(t, user, *snap.User)

	persisted, ok, err := sessions.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user, persisted)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	s, _, sessions := newTestStore(t, time.Millisecond)
	ctx := context.Background()
	s.Restore(ctx)

	_, err := s.Login(ctx, "admin@cyclegear.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	snap := s.Snapshot()
	assert.Nil(t, snap.User)
	assert.False(t, snap.Authenticated)

	_, ok, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStore(t, time.Millisecond)
	ctx := context.Background()
	s.Restore(ctx)

	_, err := s.Login(ctx, "nobody@example.com", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, s.Snapshot().Authenticated)
}

func TestLogin_FailureKeepsCurrentUser(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStore(t, time.Millisecond)
	ctx := context.Background()
	s.Restore(ctx)

	first, err := s.Login(ctx, "john@example.com", "user123")
	require.NoError(t, err)

	_, err = s.Login(ctx, "john@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	snap := s.Snapshot()
	require.NotNil(t, snap.User)
	assert.Equal(t, first, *snap.User)
}

func TestSignup_Success(t *testing.T) {
	t.Parallel()

	s, dir, sessions := newTestStore(t, time.Millisecond)
	ctx := context.Background()
	s.Restore(ctx)

	user, err := s.Signup(ctx, SignupRequest{
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "jane@example.com",
		Phone:     "+1234567892",
		Password:  "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, user.ID)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, 3, dir.Len())

	cred, ok := dir.FindByEmail("jane@example.com")
	require.True(t, ok)
	assert.Equal(t, "secret1", cred.Password)

	snap := s.Snapshot()
	require.NotNil(t, snap.User)
	assert.Equal(t, user, *snap.User)

	persisted, ok, err := sessions.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user, persisted)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	s, dir, _ := newTestStore(t, time.Millisecond)
	ctx := context.Background()
	s.Restore(ctx)

	_, err := s.Signup(ctx, SignupRequest{
		FirstName: "Impostor",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "hunter2",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, 2, dir.Len())
	assert.False(t, s.Snapshot().Authenticated)
}

func TestSignup_EmailMatchIsCaseSensitive(t *testing.T) {
	t.Parallel()

	s, dir, _ := newTestStore(t, time.Millisecond)
	ctx := context.Background()
	s.Restore(ctx)

	_, err := s.Signup(ctx, SignupRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "John@Example.com",
		Password:  "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, dir.Len())
}

func TestSignup_Validation(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStore(t, time.Millisecond)
	ctx := context.Background()
	s.Restore(ctx)

	tests := []struct {
		name string
		req  SignupRequest
	}{
		{name: "empty email", req: SignupRequest{Password: "secret"}},
		{name: "empty password", req: SignupRequest{Email: "a@b.com"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Signup(ctx, tt.req)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRestore_NoSession(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStore(t, time.Millisecond)

	assert.True(t, s.Snapshot().Loading)
	s.Restore(context.Background())

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.False(t, snap.Authenticated)
	assert.Nil(t, snap.User)
}

func TestRestore_ExistingSession(t *testing.T) {
	t.Parallel()

	dir := SeedDirectory()
	sessions := newTestSessions(t)
	ctx := context.Background()

	admin, _ := dir.FindByEmail("admin@cyclegear.com")
	require.NoError(t, sessions.Save(ctx, admin.User))

	s := New(dir, sessions, nil, time.Millisecond)
	s.Restore(ctx)

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.User)
	assert.Equal(t, admin.User, *snap.User)
}

func TestRestore_RunsOnce(t *testing.T) {
	t.Parallel()

	s, _, sessions := newTestStore(t, time.Millisecond)
	ctx := context.Background()
	s.Restore(ctx)

	_, err := s.Login(ctx, "john@example.com", "user123")
	require.NoError(t, err)

	// a second restore must not replay the startup path
	require.NoError(t, sessions.Clear(ctx))
	s.Restore(ctx)
	assert.True(t, s.Snapshot().Authenticated)
}

func TestLogout(t *testing.T) {
	t.Parallel()

	s, _, sessions := newTestStore(t, time.Millisecond)
	ctx := context.Background()
	s.Restore(ctx)

	_, err := s.Login(ctx, "john@example.com", "user123")
	require.NoError(t, err)

	s.Logout(ctx)

	snap := s.Snapshot()
	assert.Nil(t, snap.User)
	assert.False(t, snap.Authenticated)

	_, ok, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSingleInFlightAttempt(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStore(t, 200*time.Millisecond)
	ctx := context.Background()
	s.Restore(ctx)

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		_, err := s.Login(ctx, "john@example.com", "user123")
		done <- err
	}()

	<-started
	time.Sleep(20 * time.Millisecond)

	_, err := s.Login(ctx, "admin@cyclegear.com", "admin123")
	require.ErrorIs(t, err, ErrAttemptInFlight)

	_, err = s.Signup(ctx, SignupRequest{Email: "x@y.com", Password: "pw"})
	require.ErrorIs(t, err, ErrAttemptInFlight)

	require.NoError(t, <-done)
}

func TestLogoutAbortsInFlightLogin(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStore(t, time.Second)
	ctx := context.Background()
	s.Restore(ctx)

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		_, err := s.Login(ctx, "john@example.com", "user123")
		done <- err
	}()

	<-started
	time.Sleep(20 * time.Millisecond)
	s.Logout(ctx)

	err := <-done
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.Snapshot().Authenticated)
}
