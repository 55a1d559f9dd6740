package auth

import (
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
)

// RequireAuthenticated allows any resolved identity.
func RequireAuthenticated(user *models.User) error {
	if user == nil {
		return errs.Unauthorized
	}
	return nil
}

// RequireAdmin allows only identities with the admin role.
func RequireAdmin(user *models.User) error {
	if err := RequireAuthenticated(user); err != nil {
		return err
	}
	if !user.IsAdmin() {
		return errs.NewInsufficientRoleError(models.RoleAdmin)
	}
	return nil
}
