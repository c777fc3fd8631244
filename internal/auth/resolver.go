package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"agromart/internal/domain"
	apperrors "agromart/internal/errors"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Resolver validates a bearer credential and resolves it to an active
// user record.
type Resolver struct {
	secret   []byte
	userRepo UserRepository
}

func NewResolver(secret string, userRepo UserRepository) *Resolver {
	return &Resolver{
		secret:   []byte(secret),
		userRepo: userRepo,
	}
}

// Resolve parses the Authorization header value and returns the
// authenticated principal. Inactive accounts fail Forbidden, everything
// else fails Unauthenticated.
func (r *Resolver) Resolve(ctx context.Context, authorization string) (Principal, error) {
	if authorization == "" {
		return Principal{}, apperrors.NewUnauthenticatedError("no token provided")
	}

	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Principal{}, apperrors.NewUnauthenticatedError("no token provided")
	}

	rawToken := strings.TrimSpace(parts[1])
	if rawToken == "" {
		return Principal{}, apperrors.NewUnauthenticatedError("no token provided")
	}

	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return Principal{}, apperrors.NewUnauthenticatedError("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, apperrors.NewUnauthenticatedError("invalid token")
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		return Principal{}, apperrors.NewUnauthenticatedError("invalid token")
	}

	user, err := r.userRepo.FindByID(ctx, userID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return Principal{}, apperrors.NewUnauthenticatedError("user not found")
		}
		return Principal{}, err
	}

	if !user.IsActive {
		return Principal{}, apperrors.NewForbiddenError("account is deactivated")
	}

	return Principal{
		ID:   user.ID,
		Name: user.Name,
		Role: user.Role,
	}, nil
}
