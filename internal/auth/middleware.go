package auth

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"agromart/internal/domain"
	apperrors "agromart/internal/errors"
)

type Middleware struct {
	resolver *Resolver
	logger   *zap.Logger
}

func NewMiddleware(resolver *Resolver, logger *zap.Logger) *Middleware {
	return &Middleware{
		resolver: resolver,
		logger:   logger,
	}
}

// Authenticate resolves the bearer token and stores the principal in the
// request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := m.resolver.Resolve(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			if fe, ok := apperrors.IsForbiddenError(err); ok {
				m.writeError(w, http.StatusForbidden, fe.Message)
				return
			}
			if ue, ok := apperrors.IsUnauthenticatedError(err); ok {
				m.writeError(w, http.StatusUnauthorized, ue.Message)
				return
			}
			m.logger.Error("resolving principal", zap.Error(err))
			m.writeError(w, http.StatusUnauthorized, "authentication failed")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

// RequireRole gates a route on the principal's role.
func (m *Middleware) RequireRole(allowed ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				m.writeError(w, http.StatusUnauthorized, "user not authenticated")
				return
			}

			if err := Authorize(principal, allowed...); err != nil {
				fe, _ := apperrors.IsForbiddenError(err)
				m.writeError(w, http.StatusForbidden, fe.Message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (m *Middleware) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Success: false, Message: message}); err != nil {
		m.logger.Error("failed to encode response", zap.Error(err))
	}
}
