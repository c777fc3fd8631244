package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"agromart/internal/domain"
)

func newTestMiddleware(user domain.User) *Middleware {
	return NewMiddleware(NewResolver(testSecret, activeUserRepo(user)), zap.NewNop())
}

func TestAuthenticate_AttachesPrincipal(t *testing.T) {
	mw := newTestMiddleware(domain.User{ID: "u1", Name: "Ravi", Role: domain.RoleFarmer, IsActive: true})

	var got Principal
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	token := signToken(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()})
	req := httptest.NewRequest(http.MethodGet, "/api/orders/farmer/my-orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, domain.RoleFarmer, got.Role)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	mw := newTestMiddleware(domain.User{ID: "u1", IsActive: true})

	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders/farmer/my-orders", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestAuthenticate_DeactivatedAccount(t *testing.T) {
	mw := newTestMiddleware(domain.User{ID: "u1", IsActive: false})

	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	token := signToken(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()})
	req := httptest.NewRequest(http.MethodGet, "/api/orders/farmer/my-orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_Mismatch(t *testing.T) {
	mw := newTestMiddleware(domain.User{ID: "u1", Role: domain.RoleFarmer, IsActive: true})

	handler := mw.RequireRole(domain.RoleDealer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/products/dealer/list", nil)
	req = req.WithContext(WithPrincipal(req.Context(), Principal{ID: "u1", Role: domain.RoleFarmer}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	mw := newTestMiddleware(domain.User{ID: "u1", Role: domain.RoleDealer, IsActive: true})

	called := false
	handler := mw.RequireRole(domain.RoleDealer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/products/dealer/list", nil)
	req = req.WithContext(WithPrincipal(req.Context(), Principal{ID: "u1", Role: domain.RoleDealer}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.True(t, called)
}

func TestRequireRole_NoPrincipal(t *testing.T) {
	mw := newTestMiddleware(domain.User{ID: "u1", IsActive: true})

	handler := mw.RequireRole(domain.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders/admin/all", nil).WithContext(context.Background())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
