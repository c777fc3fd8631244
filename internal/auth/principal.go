package auth

import (
	"context"

	"agromart/internal/domain"
)

// Principal is the authenticated actor attached to a request context.
type Principal struct {
	ID   string
	Name string
	Role domain.Role
}

type contextKey struct{}

var principalKey contextKey

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
