package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wostup/wostup-go/internal/app/domain/admin"
	"github.com/wostup/wostup-go/internal/app/domain/auth"
	"github.com/wostup/wostup-go/internal/app/domain/startup"
	"github.com/wostup/wostup-go/internal/app/domain/student"
	"github.com/wostup/wostup-go/internal/app/gateway"
	"github.com/wostup/wostup-go/internal/app/models"
	"github.com/wostup/wostup-go/internal/app/session"
	"github.com/wostup/wostup-go/internal/pkg/config"
)

const testCookie = "wostup_session"

// stubAuth accepts any password and returns the user registered for
// the email.
type stubAuth struct {
	users map[string]*models.User
}

func (s *stubAuth) Authenticate(_ context.Context, email, _ string) (*models.User, error) {
	if user, ok := s.users[email]; ok {
		return user, nil
	}
	return nil, models.ErrUnauthenticated
}

// stubAdminRepo keeps admin pages renderable without a database.
type stubAdminRepo struct{}

func (stubAdminRepo) ListUsers(context.Context, uint64, uint64) ([]models.UserAccount, error) {
	return nil, nil
}
func (stubAdminRepo) CountUsersByRole(context.Context) (map[models.Role]int, error) {
	return map[models.Role]int{models.RoleStudent: 1}, nil
}
func (stubAdminRepo) SetUserActive(context.Context, string, bool) error { return nil }
func (stubAdminRepo) VerifyUser(context.Context, string) error          { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(backend.Close)

	log := zap.NewNop()
	sessionCfg := config.SessionConfig{
		SecretKey:  "test-secret",
		TTL:        time.Hour,
		CookieName: testCookie,
	}
	authenticator := &stubAuth{users: map[string]*models.User{
		"student@example.com": {ID: "u-student", Username: "ada", Email: "student@example.com", Role: models.RoleStudent, IsVerified: true},
		"startup@example.com": {ID: "u-startup", Username: "acme", Email: "startup@example.com", Role: models.RoleStartup, IsVerified: true},
		"admin@example.com":   {ID: "u-admin", Username: "root", Email: "admin@example.com", Role: models.RoleAdmin, IsVerified: true},
	}}
	store := session.NewStore(authenticator, sessionCfg, log)
	gw := gateway.NewClient(config.BackendConfig{BaseURL: backend.URL, Timeout: time.Second}, log)

	h := &AppHandlers{
		Auth:       auth.NewHandlers(store, nil, testCookie, log),
		Student:    student.NewHandlers(gw, log),
		Startup:    startup.NewHandlers(gw, log),
		Admin:      admin.NewHandlers(stubAdminRepo{}, gw, admin.NewScanner(admin.DefaultBannedTerms), store, log),
		store:      store,
		cookieName: testCookie,
		logger:     log,
	}

	r := gin.New()
	setupRouter(r, h)
	return r, store
}

func signIn(t *testing.T, store *session.Store, email string) *http.Cookie {
	t.Helper()
	token, _, err := store.Login(context.Background(), email, "whatever")
	require.NoError(t, err)
	return &http.Cookie{Name: testCookie, Value: token}
}

func get(r *gin.Engine, path string, cookie *http.Cookie, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStudentRoutesUseStudentShell(t *testing.T) {
	r, store := newTestRouter(t)
	cookie := signIn(t, store, "student@example.com")

	for _, path := range []string{"/student/dashboard", "/student/jobs", "/student/applications", "/student/feed"} {
		w := get(r, path, cookie, false)
		require.Equal(t, http.StatusOK, w.Code, path)
		body := w.Body.String()
		assert.Contains(t, body, `href="/student/dashboard"`, path)
		assert.Contains(t, body, ">ada<", path)
		assert.NotContains(t, body, `href="/admin/dashboard"`, path)
	}
}

func TestAnonymousIsRedirectedToLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("full page request", func(t *testing.T) {
		w := get(r, "/student/dashboard", nil, false)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("htmx request", func(t *testing.T) {
		w := get(r, "/student/dashboard", nil, true)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "/login", w.Header().Get("HX-Redirect"))
	})
}

func TestRoleGuard(t *testing.T) {
	r, store := newTestRouter(t)
	studentCookie := signIn(t, store, "student@example.com")

	for _, path := range []string{"/startup/dashboard", "/admin/dashboard", "/admin/users"} {
		w := get(r, path, studentCookie, false)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}

func TestUnknownSubpathIsNotFound(t *testing.T) {
	r, store := newTestRouter(t)
	cookie := signIn(t, store, "startup@example.com")

	w := get(r, "/startup/unknown-subpath", cookie, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	// The 404 page, not a startup shell around missing content.
	assert.NotContains(t, w.Body.String(), `href="/startup/applicants"`)
}

func TestAdminArea(t *testing.T) {
	r, store := newTestRouter(t)
	cookie := signIn(t, store, "admin@example.com")

	w := get(r, "/admin/dashboard", cookie, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/admin/moderation"`)

	w = get(r, "/admin/moderation", cookie, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignedInUserSkipsLanding(t *testing.T) {
	r, store := newTestRouter(t)
	cookie := signIn(t, store, "student@example.com")

	w := get(r, "/", cookie, false)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/student/dashboard", w.Header().Get("Location"))
}

func TestLogoutInvalidatesCookie(t *testing.T) {
	r, store := newTestRouter(t)
	cookie := signIn(t, store, "student@example.com")

	// Session works before logout.
	w := get(r, "/student/dashboard", cookie, false)
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// The browser still holding the old cookie gets nothing.
	w = get(r, "/student/dashboard", cookie, false)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestPublicPages(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{"/", "/login", "/register"} {
		w := get(r, path, nil, false)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	// The login form must work with and without client scripting: the
	// htmx runtime drives the hx-post swap, the method/action pair keeps
	// a plain submit off the query string.
	w := get(r, "/login", nil, false)
	body := w.Body.String()
	assert.Contains(t, body, "unpkg.com/htmx.org")
	assert.Contains(t, body, `method="post" action="/auth/login"`)

	w = get(r, "/no-such-page", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
