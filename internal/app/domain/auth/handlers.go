package auth

import (
	"errors"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/wostup/wostup-go/internal/app/models"
	"github.com/wostup/wostup-go/internal/app/observability/metrics"
	"github.com/wostup/wostup-go/internal/app/session"
	"github.com/wostup/wostup-go/internal/app/ui"
)

func countAuthRequest(r *http.Request, operation string) {
	if m := metrics.Maybe(); m != nil {
		m.AuthRequestsTotal.Add(r.Context(), 1, metric.WithAttributes(attribute.String("operation", operation)))
	}
}

type Handlers struct {
	store      *session.Store
	service    Service
	cookieName string
	logger     *zap.Logger
}

func NewHandlers(store *session.Store, service Service, cookieName string, logger *zap.Logger) *Handlers {
	return &Handlers{
		store:      store,
		service:    service,
		cookieName: cookieName,
		logger:     logger,
	}
}

// RoleHome is where a freshly signed-in user lands.
func RoleHome(role models.Role) string {
	switch role {
	case models.RoleStartup:
		return "/startup/dashboard"
	case models.RoleAdmin:
		return "/admin/dashboard"
	default:
		return "/student/dashboard"
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func (h *Handlers) renderAlert(w http.ResponseWriter, r *http.Request, status int, target, message string) {
	if isHTMX(r) {
		w.Header().Set("HX-Retarget", target)
	}
	w.WriteHeader(status)
	if err := ui.Alert(ui.AlertError, message).Render(r.Context(), w); err != nil {
		h.logger.Error("Failed to render alert", zap.Error(err))
	}
}

func (h *Handlers) redirect(w http.ResponseWriter, r *http.Request, location string) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", location)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// LoginHandler signs the user in and hands the browser a session cookie.
func (h *Handlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("Login attempt", zap.String("remote_addr", r.RemoteAddr))
	countAuthRequest(r, "login")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.logger.Error("Failed to parse form", zap.Error(err))
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		h.renderAlert(w, r, http.StatusBadRequest, "#login-response", "Email and password are required")
		return
	}

	token, user, err := h.store.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, models.ErrUnverified) {
			h.logger.Warn("Login rejected for unverified account", zap.String("email", email))
			h.renderAlert(w, r, http.StatusForbidden, "#login-response",
				"Please verify your email address before signing in")
			return
		}
		h.logger.Warn("Invalid login credentials", zap.String("email", email))
		h.renderAlert(w, r, http.StatusUnauthorized, "#login-response", "Invalid email or password")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		MaxAge:   int(h.store.TTL().Seconds()),
		HttpOnly: true,
		Secure:   false, // behind TLS termination in production
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})

	h.logger.Info("Successful login",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	h.redirect(w, r, RoleHome(user.Role))
}

// RegisterHandler creates a new account. The account starts unverified,
// so the response points at email verification instead of signing in.
func (h *Handlers) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("Registration attempt", zap.String("remote_addr", r.RemoteAddr))
	countAuthRequest(r, "register")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.logger.Error("Failed to parse form", zap.Error(err))
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	email := r.FormValue("email")
	password := r.FormValue("password")
	confirmPassword := r.FormValue("confirm_password")
	role := models.Role(r.FormValue("role"))

	if username == "" || email == "" || password == "" || confirmPassword == "" {
		h.renderAlert(w, r, http.StatusBadRequest, "#signup-response", "All required fields must be filled")
		return
	}
	if password != confirmPassword {
		h.renderAlert(w, r, http.StatusBadRequest, "#signup-response", "Passwords do not match")
		return
	}
	if role != models.RoleStudent && role != models.RoleStartup {
		h.renderAlert(w, r, http.StatusBadRequest, "#signup-response", "Choose whether you are a student or a startup")
		return
	}

	userID, err := h.service.Register(r.Context(), username, email, password, role)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			h.renderAlert(w, r, http.StatusConflict, "#signup-response", "An account with that email or username already exists")
			return
		}
		h.logger.Error("Registration failed", zap.Error(err))
		h.renderAlert(w, r, http.StatusInternalServerError, "#signup-response", "Registration failed, please try again")
		return
	}

	h.logger.Info("Account created", zap.String("user_id", userID))
	if isHTMX(r) {
		w.Header().Set("HX-Retarget", "#signup-response")
		w.WriteHeader(http.StatusOK)
		if err := ui.Alert(ui.AlertSuccess, "Account created. Check your email to verify it, then sign in.").Render(r.Context(), w); err != nil {
			h.logger.Error("Failed to render alert", zap.Error(err))
		}
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// VerifyHandler serves the verification link from the signup email and
// flips the account to verified.
func (h *Handlers) VerifyHandler(w http.ResponseWriter, r *http.Request) {
	countAuthRequest(r, "verify")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.URL.Query().Get("id")
	if userID == "" {
		http.Error(w, "Missing verification id", http.StatusBadRequest)
		return
	}

	if err := h.service.VerifyAccount(r.Context(), userID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Unknown account", http.StatusNotFound)
			return
		}
		h.logger.Error("Verification failed", zap.Error(err), zap.String("user_id", userID))
		http.Error(w, "Verification failed, please try again", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Account verified", zap.String("user_id", userID))
	h.redirect(w, r, "/login")
}

// LogoutHandler destroys the server-side session and expires the
// cookie. A stale cookie on its own no longer grants access.
func (h *Handlers) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if cookie, err := r.Cookie(h.cookieName); err == nil {
		h.store.Logout(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})

	h.logger.Info("Logout", zap.String("remote_addr", r.RemoteAddr))
	h.redirect(w, r, "/login")
}
