// Package session is the single source of truth for "who is logged in".
// A Store is constructor-injected wherever session state is needed;
// login and logout are its only writers, everything else reads.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/wostup/wostup-go/internal/app/models"
	"github.com/wostup/wostup-go/internal/pkg/config"
)

// Authenticator is the external collaborator that validates credentials.
// It returns the authenticated principal without any secret material.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// Store owns the session records. Records live in a TTL cache keyed by
// session id; the browser holds a signed token naming that id, so a
// destroyed record wins over a still-valid cookie.
type Store struct {
	authenticator Authenticator
	sessions      *gocache.Cache
	tokens        *tokenCodec
	ttl           time.Duration
	logger        *zap.Logger
}

// NewStore creates a session store bound to its authentication collaborator.
func NewStore(authenticator Authenticator, cfg config.SessionConfig, logger *zap.Logger) *Store {
	return &Store{
		authenticator: authenticator,
		sessions:      gocache.New(cfg.TTL, 10*time.Minute),
		tokens:        newTokenCodec(cfg.SecretKey, cfg.TTL),
		ttl:           cfg.TTL,
		logger:        logger,
	}
}

// Login authenticates the credentials and, on success, makes the
// principal the current user of a fresh session. A principal whose
// email is not verified is rejected with models.ErrUnverified and the
// store is left unchanged.
func (s *Store) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	l := s.logger.With(zap.String("method", "Login"), zap.String("email", email))

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		l.Warn("Authentication failed")
		return "", nil, fmt.Errorf("authentication failed: %w", err)
	}
	if !user.IsVerified {
		l.Warn("Login rejected for unverified account", zap.String("userID", user.ID))
		return "", nil, fmt.Errorf("account %s: %w", user.Email, models.ErrUnverified)
	}

	sessionID := uuid.NewString()
	s.sessions.Set(sessionID, user, s.ttl)

	token, err := s.tokens.Sign(sessionID, user)
	if err != nil {
		s.sessions.Delete(sessionID)
		l.Error("Failed to sign session token", zap.Error(err))
		return "", nil, fmt.Errorf("signing session token: %w", err)
	}

	l.Info("Session created", zap.String("userID", user.ID), zap.String("role", string(user.Role)))
	return token, user, nil
}

// Current returns the user behind the given token, or nil when the
// token is missing, malformed, expired or its session was destroyed.
// It never returns an error.
func (s *Store) Current(token string) *models.User {
	if token == "" {
		return nil
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}
	entry, ok := s.sessions.Get(claims.SessionID)
	if !ok {
		return nil
	}
	user, ok := entry.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// Logout destroys the session behind the token. Unknown or already
// destroyed sessions are a no-op, so calling it twice is the same as
// calling it once.
func (s *Store) Logout(token string) {
	if token == "" {
		return
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return
	}
	s.sessions.Delete(claims.SessionID)
	s.logger.Info("Session destroyed", zap.String("userID", claims.UserID))
}

// ActiveSessions reports the number of live session records, fed into
// the active-users gauge.
func (s *Store) ActiveSessions() int {
	return s.sessions.ItemCount()
}

// TTL exposes the session lifetime so the cookie MaxAge can match it.
func (s *Store) TTL() time.Duration {
	return s.ttl
}
