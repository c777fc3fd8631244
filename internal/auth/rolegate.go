package auth

import (
	"strings"

	"agromart/internal/domain"
	apperrors "agromart/internal/errors"
)

// Authorize checks the principal's role against the allowed set.
func Authorize(p Principal, allowed ...domain.Role) error {
	for _, role := range allowed {
		if p.Role == role {
			return nil
		}
	}

	names := make([]string, len(allowed))
	for i, role := range allowed {
		names[i] = string(role)
	}

	return apperrors.NewForbiddenError(
		"access denied: only " + strings.Join(names, ", ") + " can access this resource",
	)
}
