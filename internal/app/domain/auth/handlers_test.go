package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wostup/wostup-go/internal/app/models"
)

type MockService struct {
	mock.Mock
}

var _ Service = (*MockService)(nil)

func (m *MockService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockService) Register(ctx context.Context, username, email, password string, role models.Role) (string, error) {
	args := m.Called(ctx, username, email, password, role)
	return args.String(0), args.Error(1)
}

func (m *MockService) VerifyAccount(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestVerifyHandler(t *testing.T) {
	newHandlers := func(service Service) *Handlers {
		return NewHandlers(nil, service, "wostup_session", zap.NewNop())
	}

	t.Run("verifies the account and redirects to login", func(t *testing.T) {
		service := new(MockService)
		service.On("VerifyAccount", mock.Anything, "u1").Return(nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/verify?id=u1", nil)
		newHandlers(service).VerifyHandler(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		service.AssertExpectations(t)
	})

	t.Run("unknown account is a 404", func(t *testing.T) {
		service := new(MockService)
		service.On("VerifyAccount", mock.Anything, "nope").
			Return(fmt.Errorf("account nope not found: %w", models.ErrNotFound))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/verify?id=nope", nil)
		newHandlers(service).VerifyHandler(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing id is a 400", func(t *testing.T) {
		service := new(MockService)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
		newHandlers(service).VerifyHandler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "VerifyAccount")
	})
}

func TestAuthFormsSubmitWithoutScripting(t *testing.T) {
	// The forms must still POST to the right endpoint when the htmx
	// runtime has not loaded, so credentials never land in a query
	// string.
	var sb strings.Builder
	require.NoError(t, SignInPage().Render(context.Background(), &sb))
	assert.Contains(t, sb.String(), `method="post" action="/auth/login"`)

	sb.Reset()
	require.NoError(t, SignUpPage().Render(context.Background(), &sb))
	assert.Contains(t, sb.String(), `method="post" action="/auth/register"`)
}
