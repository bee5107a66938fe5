package admin

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wostup/wostup-go/internal/app/models"
)

func newMockRepo(t *testing.T) (*PostgresRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return NewPostgresRepo(mockPool, zap.NewNop()), mockPool
}

func TestListUsers(t *testing.T) {
	repo, mockPool := newMockRepo(t)
	listSQL := regexp.QuoteMeta(`SELECT id, username, email, role, is_verified, is_active, created_at FROM users ORDER BY created_at DESC LIMIT 50 OFFSET 0`)

	created := time.Now()
	mockPool.ExpectQuery(listSQL).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "username", "email", "role", "is_verified", "is_active", "created_at",
		}).
			AddRow("u1", "ada", "ada@example.com", models.RoleStudent, true, true, created).
			AddRow("u2", "acme", "acme@example.com", models.RoleStartup, false, true, created))

	users, err := repo.ListUsers(context.Background(), 50, 0)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ada", users[0].Username)
	assert.Equal(t, models.RoleStartup, users[1].Role)
	assert.False(t, users[1].IsVerified)
	assert.Empty(t, users[0].PasswordHash)
	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestCountUsersByRole(t *testing.T) {
	repo, mockPool := newMockRepo(t)
	countSQL := regexp.QuoteMeta(`SELECT role, COUNT(*) FROM users GROUP BY role`)

	mockPool.ExpectQuery(countSQL).
		WillReturnRows(pgxmock.NewRows([]string{"role", "count"}).
			AddRow(models.RoleStudent, 12).
			AddRow(models.RoleStartup, 4).
			AddRow(models.RoleAdmin, 1))

	counts, err := repo.CountUsersByRole(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, counts[models.RoleStudent])
	assert.Equal(t, 4, counts[models.RoleStartup])
	assert.Equal(t, 1, counts[models.RoleAdmin])
}

func TestSetUserActive(t *testing.T) {
	updateSQL := regexp.QuoteMeta(`UPDATE users SET is_active = $1 WHERE id = $2`)

	t.Run("deactivates", func(t *testing.T) {
		repo, mockPool := newMockRepo(t)
		mockPool.ExpectExec(updateSQL).
			WithArgs(false, "u1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.SetUserActive(context.Background(), "u1", false))
		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		repo, mockPool := newMockRepo(t)
		mockPool.ExpectExec(updateSQL).
			WithArgs(true, "ghost").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.SetUserActive(context.Background(), "ghost", true), models.ErrNotFound)
	})
}

func TestVerifyUser(t *testing.T) {
	repo, mockPool := newMockRepo(t)
	updateSQL := regexp.QuoteMeta(`UPDATE users SET is_verified = $1 WHERE id = $2`)

	mockPool.ExpectExec(updateSQL).
		WithArgs(true, "u1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.VerifyUser(context.Background(), "u1"))
	require.NoError(t, mockPool.ExpectationsWereMet())
}
