package auth

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/wostup/wostup-go/internal/app/models"
	"github.com/wostup/wostup-go/internal/app/session"
)

// Ensure implementation satisfies the interfaces.
var _ Service = (*ServiceImpl)(nil)
var _ session.Authenticator = (*ServiceImpl)(nil)

// Service defines the credential-handling contract. Everything secret
// (hashes, comparisons) stays behind it.
type Service interface {
	// Authenticate validates credentials and returns the non-secret
	// identity. Bad email and bad password are indistinguishable.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	// Register stores a new account. Returns the new user ID.
	Register(ctx context.Context, username, email, password string, role models.Role) (string, error)
	// VerifyAccount marks the account's email as verified.
	VerifyAccount(ctx context.Context, userID string) error
}

type ServiceImpl struct {
	logger *zap.Logger
	repo   Repo
}

func NewService(repo Repo, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger, repo: repo}
}

// Authenticate implements session.Authenticator. The returned user
// carries no credential material.
func (s *ServiceImpl) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	l := s.logger.With(zap.String("method", "Authenticate"), zap.String("email", email))
	l.Debug("Attempting authentication")

	account, err := s.repo.GetAccountByEmail(ctx, email)
	if err != nil {
		l.Warn("GetAccountByEmail failed")
		// Don't reveal whether the account exists.
		return nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthenticated)
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if err != nil {
		l.Warn("Password comparison failed", zap.String("userID", account.ID))
		return nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthenticated)
	}

	l.Info("Authentication successful", zap.String("userID", account.ID))
	return account.User(), nil
}

// Register hashes the password and stores the new account.
func (s *ServiceImpl) Register(ctx context.Context, username, email, password string, role models.Role) (string, error) {
	l := s.logger.With(zap.String("method", "Register"), zap.String("email", email))
	l.Debug("Attempting registration")

	tracer := otel.Tracer("wostup-web")
	ctx, span := tracer.Start(ctx, "AuthService.Register", trace.WithAttributes(
		attribute.String("username", username),
		attribute.String("role", string(role)),
	))
	defer span.End()

	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q: %w", role, models.ErrValidation)
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("Failed to hash password", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Password hashing failed")
		return "", fmt.Errorf("could not process password")
	}

	userID, err := s.repo.Register(ctx, username, email, string(hashedPasswordBytes), role)
	if err != nil {
		l.Error("Repository registration failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Repository registration failed")
		return "", fmt.Errorf("registration failed: %w", err)
	}

	l.Info("Registration successful", zap.String("userID", userID))
	span.SetStatus(codes.Ok, "Account registered")
	return userID, nil
}

// VerifyAccount marks the account's email as verified so its owner can
// sign in.
func (s *ServiceImpl) VerifyAccount(ctx context.Context, userID string) error {
	l := s.logger.With(zap.String("method", "VerifyAccount"), zap.String("userID", userID))

	if err := s.repo.MarkVerified(ctx, userID); err != nil {
		l.Warn("MarkVerified failed", zap.Error(err))
		return err
	}
	l.Info("Account verified")
	return nil
}
