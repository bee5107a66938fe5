package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wostup/wostup-go/internal/app/models"
	"github.com/wostup/wostup-go/internal/pkg/config"
)

// MockAuthenticator is a mock implementation of the Authenticator interface
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newTestStore(authenticator Authenticator) *Store {
	return NewStore(authenticator, config.SessionConfig{
		SecretKey:  "test-session-secret",
		TTL:        time.Hour,
		CookieName: "wostup_session",
	}, zap.NewNop())
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("verified user becomes current", func(t *testing.T) {
		mockAuth := new(MockAuthenticator)
		store := newTestStore(mockAuth)

		user := &models.User{
			ID:         "user-1",
			Username:   "ada",
			Email:      "a@x.com",
			Role:       models.RoleStudent,
			IsVerified: true,
		}
		mockAuth.On("Authenticate", ctx, "a@x.com", "pw").Return(user, nil)

		token, got, err := store.Login(ctx, "a@x.com", "pw")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, user, got)

		current := store.Current(token)
		require.NotNil(t, current)
		assert.Equal(t, "user-1", current.ID)
		assert.Equal(t, "a@x.com", current.Email)
		mockAuth.AssertExpectations(t)
	})

	t.Run("unverified user is rejected and store unchanged", func(t *testing.T) {
		mockAuth := new(MockAuthenticator)
		store := newTestStore(mockAuth)

		user := &models.User{
			ID:         "user-2",
			Username:   "bea",
			Email:      "a@x.com",
			Role:       models.RoleStudent,
			IsVerified: false,
		}
		mockAuth.On("Authenticate", ctx, "a@x.com", "pw").Return(user, nil)

		token, got, err := store.Login(ctx, "a@x.com", "pw")
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrUnverified)
		assert.Empty(t, token)
		assert.Nil(t, got)
		assert.Equal(t, 0, store.ActiveSessions())
	})

	t.Run("authentication failure passes through", func(t *testing.T) {
		mockAuth := new(MockAuthenticator)
		store := newTestStore(mockAuth)

		mockAuth.On("Authenticate", ctx, "a@x.com", "wrong").
			Return(nil, models.ErrUnauthenticated)

		token, got, err := store.Login(ctx, "a@x.com", "wrong")
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrUnauthenticated)
		assert.NotErrorIs(t, err, models.ErrUnverified)
		assert.Empty(t, token)
		assert.Nil(t, got)
		assert.Equal(t, 0, store.ActiveSessions())
	})
}

func TestCurrent(t *testing.T) {
	mockAuth := new(MockAuthenticator)
	store := newTestStore(mockAuth)

	t.Run("empty token", func(t *testing.T) {
		assert.Nil(t, store.Current(""))
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Nil(t, store.Current("not-a-token"))
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := newTokenCodec("another-secret", time.Hour)
		token, err := other.Sign("sid", &models.User{ID: "user-9"})
		require.NoError(t, err)
		assert.Nil(t, store.Current(token))
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	mockAuth := new(MockAuthenticator)
	store := newTestStore(mockAuth)

	user := &models.User{ID: "user-3", Username: "cam", Email: "c@x.com", Role: models.RoleStartup, IsVerified: true}
	mockAuth.On("Authenticate", ctx, "c@x.com", "pw").Return(user, nil)

	token, _, err := store.Login(ctx, "c@x.com", "pw")
	require.NoError(t, err)
	require.NotNil(t, store.Current(token))

	store.Logout(token)
	assert.Nil(t, store.Current(token), "valid cookie for a destroyed session must read as signed out")
	assert.Equal(t, 0, store.ActiveSessions())

	// Idempotent: a second logout leaves the store in the same state.
	store.Logout(token)
	assert.Nil(t, store.Current(token))
	assert.Equal(t, 0, store.ActiveSessions())

	// Logout with nonsense input is a no-op too.
	store.Logout("")
	store.Logout("garbage")
}
