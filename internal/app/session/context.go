package session

import (
	"context"

	"github.com/wostup/wostup-go/internal/app/models"
)

type contextKey string

const userContextKey contextKey = "session.user"

// ContextWithUser returns a context carrying the signed-in user. The
// auth middleware is the only writer; readers get a derived view, not
// a second writable copy.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the signed-in user on the context, or nil.
func UserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(userContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
