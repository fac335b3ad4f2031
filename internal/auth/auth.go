package auth

import (
	"context"
	"errors"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrEmptyUserID     = errors.New("empty user id")
)

//go:generate mockgen -source=$GOFILE -destination=../middleware/auth_mocks_test.go -package=middleware_test

// SessionResolver turns an already issued session token into a user id.
// Unknown or expired tokens give ErrUnauthenticated.
type SessionResolver interface {
	UserForToken(ctx context.Context, token string) (string, error)
}

type ctxKey struct{}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ctxKey{}).(string)
	return userID, ok && userID != ""
}
