package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/wostup/wostup-go/internal/app/models"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) GetAccountByEmail(ctx context.Context, email string) (*models.UserAccount, error) {
	args := m.Called(ctx, email)
	if account := args.Get(0); account != nil {
		return account.(*models.UserAccount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) GetAccountByID(ctx context.Context, userID string) (*models.UserAccount, error) {
	args := m.Called(ctx, userID)
	if account := args.Get(0); account != nil {
		return account.(*models.UserAccount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) Register(ctx context.Context, username, email, hashedPassword string, role models.Role) (string, error) {
	args := m.Called(ctx, username, email, hashedPassword, role)
	return args.String(0), args.Error(1)
}

func (m *MockRepo) MarkVerified(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	account := &models.UserAccount{
		ID:           "u1",
		Username:     "ada",
		Email:        "ada@example.com",
		PasswordHash: hashOf(t, "correct horse"),
		Role:         models.RoleStudent,
		IsVerified:   true,
		IsActive:     true,
	}

	t.Run("valid credentials", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("GetAccountByEmail", ctx, "ada@example.com").Return(account, nil)
		svc := NewService(repo, zap.NewNop())

		user, err := svc.Authenticate(ctx, "ada@example.com", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, models.RoleStudent, user.Role)
		repo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("GetAccountByEmail", ctx, "ada@example.com").Return(account, nil)
		svc := NewService(repo, zap.NewNop())

		user, err := svc.Authenticate(ctx, "ada@example.com", "wrong")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, models.ErrUnauthenticated)
	})

	t.Run("unknown email reads the same as wrong password", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("GetAccountByEmail", ctx, "ghost@example.com").Return(nil, models.ErrNotFound)
		svc := NewService(repo, zap.NewNop())

		user, err := svc.Authenticate(ctx, "ghost@example.com", "whatever")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, models.ErrUnauthenticated)
		assert.NotErrorIs(t, err, models.ErrNotFound)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes before storing", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("Register", mock.Anything, "ada", "ada@example.com",
			mock.MatchedBy(func(hash string) bool {
				return hash != "s3cret" &&
					bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")) == nil
			}), models.RoleStudent).Return("u1", nil)
		svc := NewService(repo, zap.NewNop())

		userID, err := svc.Register(ctx, "ada", "ada@example.com", "s3cret", models.RoleStudent)
		require.NoError(t, err)
		assert.Equal(t, "u1", userID)
		repo.AssertExpectations(t)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		repo := new(MockRepo)
		svc := NewService(repo, zap.NewNop())

		_, err := svc.Register(ctx, "ada", "ada@example.com", "s3cret", models.Role("wizard"))
		assert.ErrorIs(t, err, models.ErrValidation)
		repo.AssertNotCalled(t, "Register")
	})

	t.Run("conflict passes through", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("Register", mock.Anything, "ada", "ada@example.com", mock.Anything, models.RoleStudent).
			Return("", models.ErrConflict)
		svc := NewService(repo, zap.NewNop())

		_, err := svc.Register(ctx, "ada", "ada@example.com", "s3cret", models.RoleStudent)
		assert.ErrorIs(t, err, models.ErrConflict)
	})
}

func TestVerifyAccount(t *testing.T) {
	repo := new(MockRepo)
	repo.On("MarkVerified", mock.Anything, "u1").Return(nil)
	svc := NewService(repo, zap.NewNop())

	require.NoError(t, svc.VerifyAccount(context.Background(), "u1"))
	repo.AssertExpectations(t)
}
