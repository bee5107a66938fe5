package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/wostup/wostup-go/internal/app/models"
	"github.com/wostup/wostup-go/internal/app/observability/metrics"
)

var _ Repo = (*PostgresRepo)(nil)

// PgxPool is the slice of pgxpool.Pool the repository needs. pgxmock
// satisfies it too, so repository tests run without a database.
type PgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repo interface {
	// GetAccountByEmail fetches the full account record, hash included.
	GetAccountByEmail(ctx context.Context, email string) (*models.UserAccount, error)
	// GetAccountByID fetches the full account record by user id.
	GetAccountByID(ctx context.Context, userID string) (*models.UserAccount, error)
	// Register stores a new account with a HASHED password. Returns new user ID.
	Register(ctx context.Context, username, email, hashedPassword string, role models.Role) (string, error)
	// MarkVerified flips the email-verified flag for a user.
	MarkVerified(ctx context.Context, userID string) error
}

type PostgresRepo struct {
	logger *zap.Logger
	pgpool PgxPool
}

func NewPostgresRepo(pgpool PgxPool, logger *zap.Logger) *PostgresRepo {
	return &PostgresRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var accountColumns = []string{
	"id", "username", "email", "password_hash", "role", "is_verified", "is_active", "created_at",
}

func (r *PostgresRepo) scanAccount(row pgx.Row) (*models.UserAccount, error) {
	var account models.UserAccount
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.IsVerified,
		&account.IsActive,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountByEmail implements auth.Repo.
func (r *PostgresRepo) GetAccountByEmail(ctx context.Context, email string) (*models.UserAccount, error) {
	query, args, err := psql.Select(accountColumns...).
		From("users").
		Where(sq.Eq{"email": email, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building account query: %w", err)
	}

	account, err := r.scanAccount(r.pgpool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account with email %s not found: %w", email, models.ErrNotFound)
		}
		metrics.CountDBError(ctx, "auth", "GetAccountByEmail")
		r.logger.Error("Error fetching account by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("database error fetching account: %w", err)
	}
	return account, nil
}

// GetAccountByID implements auth.Repo.
func (r *PostgresRepo) GetAccountByID(ctx context.Context, userID string) (*models.UserAccount, error) {
	query, args, err := psql.Select(accountColumns...).
		From("users").
		Where(sq.Eq{"id": userID, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building account query: %w", err)
	}

	account, err := r.scanAccount(r.pgpool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account with ID %s not found: %w", userID, models.ErrNotFound)
		}
		metrics.CountDBError(ctx, "auth", "GetAccountByID")
		r.logger.Error("Error fetching account by ID", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("database error fetching account by ID: %w", err)
	}
	return account, nil
}

// Register implements auth.Repo. Expects a HASHED password.
func (r *PostgresRepo) Register(ctx context.Context, username, email, hashedPassword string, role models.Role) (string, error) {
	tracer := otel.Tracer("wostup-web")
	ctx, span := tracer.Start(ctx, "PostgresRepo.Register", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.statement", "INSERT INTO users ..."),
	))
	defer span.End()

	query, args, err := psql.Insert("users").
		Columns("username", "email", "password_hash", "role", "created_at").
		Values(username, email, hashedPassword, string(role), time.Now()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("building insert query: %w", err)
	}

	var userID string
	err = r.pgpool.QueryRow(ctx, query, args...).Scan(&userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database error")
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", fmt.Errorf("email or username already exists: %w", models.ErrConflict)
		}
		metrics.CountDBError(ctx, "auth", "Register")
		r.logger.Error("Error inserting account", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("database error registering account: %w", err)
	}

	span.SetStatus(codes.Ok, "Account created")
	r.logger.Info("Account registered", zap.String("userID", userID), zap.String("role", string(role)))
	return userID, nil
}

// MarkVerified implements auth.Repo.
func (r *PostgresRepo) MarkVerified(ctx context.Context, userID string) error {
	query, args, err := psql.Update("users").
		Set("is_verified", true).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building update query: %w", err)
	}

	tag, err := r.pgpool.Exec(ctx, query, args...)
	if err != nil {
		metrics.CountDBError(ctx, "auth", "MarkVerified")
		r.logger.Error("Error marking account verified", zap.Error(err), zap.String("userID", userID))
		return fmt.Errorf("database error marking account verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found: %w", userID, models.ErrNotFound)
	}
	return nil
}
