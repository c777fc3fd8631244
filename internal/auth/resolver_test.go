package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"agromart/internal/domain"
	apperrors "agromart/internal/errors"
)

const testSecret = "test_secret"

type mockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.User, error)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return m.FindByIDFunc(ctx, id)
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func activeUserRepo(user domain.User) *mockUserRepository {
	return &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			if id != user.ID {
				return nil, apperrors.NewNotFoundError("user not found")
			}
			u := user
			return &u, nil
		},
	}
}

func TestResolve_ValidToken(t *testing.T) {
	repo := activeUserRepo(domain.User{ID: "u1", Name: "Ravi", Role: domain.RoleFarmer, IsActive: true})
	resolver := NewResolver(testSecret, repo)

	token := signToken(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()})

	principal, err := resolver.Resolve(context.Background(), "Bearer "+token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", principal.ID)
	assert.Equal(t, "Ravi", principal.Name)
	assert.Equal(t, domain.RoleFarmer, principal.Role)
}

func TestResolve_MissingHeader(t *testing.T) {
	resolver := NewResolver(testSecret, &mockUserRepository{})

	_, err := resolver.Resolve(context.Background(), "")
	_, ok := apperrors.IsUnauthenticatedError(err)
	assert.True(t, ok)
}

func TestResolve_NotBearer(t *testing.T) {
	resolver := NewResolver(testSecret, &mockUserRepository{})

	_, err := resolver.Resolve(context.Background(), "Basic abc123")
	_, ok := apperrors.IsUnauthenticatedError(err)
	assert.True(t, ok)
}

func TestResolve_MalformedToken(t *testing.T) {
	resolver := NewResolver(testSecret, &mockUserRepository{})

	_, err := resolver.Resolve(context.Background(), "Bearer not.a.token")
	_, ok := apperrors.IsUnauthenticatedError(err)
	assert.True(t, ok)
}

func TestResolve_WrongSecret(t *testing.T) {
	resolver := NewResolver("another_secret", &mockUserRepository{})

	token := signToken(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()})

	_, err := resolver.Resolve(context.Background(), "Bearer "+token)
	_, ok := apperrors.IsUnauthenticatedError(err)
	assert.True(t, ok)
}

func TestResolve_ExpiredToken(t *testing.T) {
	repo := activeUserRepo(domain.User{ID: "u1", IsActive: true})
	resolver := NewResolver(testSecret, repo)

	token := signToken(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Hour).Unix()})

	_, err := resolver.Resolve(context.Background(), "Bearer "+token)
	_, ok := apperrors.IsUnauthenticatedError(err)
	assert.True(t, ok)
}

func TestResolve_UnknownUser(t *testing.T) {
	repo := activeUserRepo(domain.User{ID: "u1", IsActive: true})
	resolver := NewResolver(testSecret, repo)

	token := signToken(t, jwt.MapClaims{"sub": "ghost", "exp": time.Now().Add(time.Hour).Unix()})

	_, err := resolver.Resolve(context.Background(), "Bearer "+token)
	_, ok := apperrors.IsUnauthenticatedError(err)
	assert.True(t, ok)
}

func TestResolve_DeactivatedAccount(t *testing.T) {
	repo := activeUserRepo(domain.User{ID: "u1", Name: "Ravi", Role: domain.RoleDealer, IsActive: false})
	resolver := NewResolver(testSecret, repo)

	token := signToken(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()})

	_, err := resolver.Resolve(context.Background(), "Bearer "+token)
	fe, ok := apperrors.IsForbiddenError(err)
	assert.True(t, ok)
	assert.Contains(t, fe.Message, "deactivated")
}
