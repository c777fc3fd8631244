package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agromart/internal/domain"
	apperrors "agromart/internal/errors"
)

func TestAuthorize_AllowedRole(t *testing.T) {
	p := Principal{ID: "u1", Role: domain.RoleFarmer}

	err := Authorize(p, domain.RoleFarmer)
	assert.NoError(t, err)
}

func TestAuthorize_OneOfSeveral(t *testing.T) {
	p := Principal{ID: "u1", Role: domain.RoleAdmin}

	err := Authorize(p, domain.RoleFarmer, domain.RoleAdmin)
	assert.NoError(t, err)
}

func TestAuthorize_RoleMismatch(t *testing.T) {
	p := Principal{ID: "u1", Role: domain.RoleDelivery}

	err := Authorize(p, domain.RoleFarmer, domain.RoleDealer)
	assert.Error(t, err)

	fe, ok := apperrors.IsForbiddenError(err)
	assert.True(t, ok)
	assert.Contains(t, fe.Message, "farmer")
	assert.Contains(t, fe.Message, "dealer")
}

func TestAuthorize_EmptyAllowedSet(t *testing.T) {
	p := Principal{ID: "u1", Role: domain.RoleAdmin}

	err := Authorize(p)
	assert.Error(t, err)
}
