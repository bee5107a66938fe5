package admin

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/wostup/wostup-go/internal/app/models"
	"github.com/wostup/wostup-go/internal/app/observability/metrics"
)

var _ Repo = (*PostgresRepo)(nil)

// PgxPool is the slice of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repo interface {
	// ListUsers returns platform accounts, newest first.
	ListUsers(ctx context.Context, limit, offset uint64) ([]models.UserAccount, error)
	// CountUsersByRole returns signup totals per role.
	CountUsersByRole(ctx context.Context) (map[models.Role]int, error)
	// SetUserActive toggles an account on or off the platform.
	SetUserActive(ctx context.Context, userID string, active bool) error
	// VerifyUser marks an account's email as verified.
	VerifyUser(ctx context.Context, userID string) error
}

type PostgresRepo struct {
	logger *zap.Logger
	pgpool PgxPool
}

func NewPostgresRepo(pgpool PgxPool, logger *zap.Logger) *PostgresRepo {
	return &PostgresRepo{logger: logger, pgpool: pgpool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ListUsers implements admin.Repo. Password hashes stay in the
// database; the listing never selects them.
func (r *PostgresRepo) ListUsers(ctx context.Context, limit, offset uint64) ([]models.UserAccount, error) {
	query, args, err := psql.
		Select("id", "username", "email", "role", "is_verified", "is_active", "created_at").
		From("users").
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building users query: %w", err)
	}

	rows, err := r.pgpool.Query(ctx, query, args...)
	if err != nil {
		metrics.CountDBError(ctx, "admin", "ListUsers")
		r.logger.Error("Error listing users", zap.Error(err))
		return nil, fmt.Errorf("database error listing users: %w", err)
	}
	defer rows.Close()

	var users []models.UserAccount
	for rows.Next() {
		var u models.UserAccount
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.IsVerified, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}
	return users, nil
}

// CountUsersByRole implements admin.Repo.
func (r *PostgresRepo) CountUsersByRole(ctx context.Context) (map[models.Role]int, error) {
	query, args, err := psql.
		Select("role", "COUNT(*)").
		From("users").
		GroupBy("role").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building count query: %w", err)
	}

	rows, err := r.pgpool.Query(ctx, query, args...)
	if err != nil {
		metrics.CountDBError(ctx, "admin", "CountUsersByRole")
		r.logger.Error("Error counting users", zap.Error(err))
		return nil, fmt.Errorf("database error counting users: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Role]int)
	for rows.Next() {
		var role models.Role
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return nil, fmt.Errorf("scanning count row: %w", err)
		}
		counts[role] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating count rows: %w", err)
	}
	return counts, nil
}

// SetUserActive implements admin.Repo.
func (r *PostgresRepo) SetUserActive(ctx context.Context, userID string, active bool) error {
	query, args, err := psql.Update("users").
		Set("is_active", active).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building update query: %w", err)
	}

	tag, err := r.pgpool.Exec(ctx, query, args...)
	if err != nil {
		metrics.CountDBError(ctx, "admin", "SetUserActive")
		r.logger.Error("Error toggling user", zap.Error(err), zap.String("userID", userID))
		return fmt.Errorf("database error toggling user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found: %w", userID, models.ErrNotFound)
	}
	return nil
}

// VerifyUser implements admin.Repo.
func (r *PostgresRepo) VerifyUser(ctx context.Context, userID string) error {
	query, args, err := psql.Update("users").
		Set("is_verified", true).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building update query: %w", err)
	}

	tag, err := r.pgpool.Exec(ctx, query, args...)
	if err != nil {
		metrics.CountDBError(ctx, "admin", "VerifyUser")
		r.logger.Error("Error verifying user", zap.Error(err), zap.String("userID", userID))
		return fmt.Errorf("database error verifying user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found: %w", userID, models.ErrNotFound)
	}
	return nil
}
