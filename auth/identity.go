package auth

import (
	"context"

	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
)

// UserFinder loads users by id.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// IdentityResolver turns a bearer token into the stored user it names.
// The user is looked up on every call, so deleting a user revokes their tokens.
type IdentityResolver struct {
	tokens *TokenIssuer
	users  UserFinder
}

func NewIdentityResolver(tokens *TokenIssuer, users UserFinder) *IdentityResolver {
	return &IdentityResolver{tokens: tokens, users: users}
}

func (r *IdentityResolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, errs.NewMissingTokenError()
	}
	claims, err := r.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	user, err := r.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, errs.NewUnauthorizedError("user not found")
		}
		return nil, err
	}
	return user, nil
}
