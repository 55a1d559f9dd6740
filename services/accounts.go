package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/projectveo/backend/auth"
	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=200"`
	Role     string `json:"role,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// AuthResult is returned by register and login.
type AuthResult struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

type Accounts struct {
	users            *database.UserRepo
	hasher           PasswordHasher
	tokens           *auth.TokenIssuer
	validate         *validator.Validate
	allowAdminSignup bool
	logger           zerolog.Logger
}

func NewAccounts(users *database.UserRepo, hasher PasswordHasher, tokens *auth.TokenIssuer, allowAdminSignup bool) *Accounts {
	return &Accounts{
		users:            users,
		hasher:           hasher,
		tokens:           tokens,
		validate:         NewValidator(),
		allowAdminSignup: allowAdminSignup,
		logger:           log.With().Str("serviceName", "accounts").Logger(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and signs the caller in.
// Self-registration as admin is refused unless admin signup is enabled.
func (a *Accounts) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := ValidateStruct(a.validate, in); err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleClient
	}
	switch role {
	case models.RoleClient:
	case models.RoleAdmin:
		if !a.allowAdminSignup {
			return nil, errs.NewForbiddenError("admin accounts cannot be self-registered")
		}
	default:
		return nil, errs.NewInvalidFieldError("role", "must be one of: admin, client")
	}

	email := normalizeEmail(in.Email)
	if _, err := a.users.FindByEmail(ctx, email); err == nil {
		return nil, errs.NewAlreadyExists("email")
	} else if !errs.IsNotFound(err) {
		return nil, err
	}

	digest, err := a.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          email,
		Name:           strings.TrimSpace(in.Name),
		Role:           role,
		HashedPassword: digest,
	}
	if err := a.users.Add(ctx, user); err != nil {
		return nil, err
	}
	a.logger.Info().Str("userID", user.ID).Str("role", role).Msg("account registered")

	return a.issue(user)
}

// Login exchanges credentials for a token. Unknown email and wrong password fail identically.
func (a *Accounts) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := ValidateStruct(a.validate, in); err != nil {
		return nil, err
	}

	user, err := a.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, errs.NewInvalidCredentialsError()
		}
		return nil, err
	}
	if !a.hasher.Verify(in.Password, user.HashedPassword) {
		return nil, errs.NewInvalidCredentialsError()
	}

	return a.issue(user)
}

// ChangePassword replaces the password of user after checking the current one.
func (a *Accounts) ChangePassword(ctx context.Context, user *models.User, in ChangePasswordInput) error {
	if err := auth.RequireAuthenticated(user); err != nil {
		return err
	}
	if err := ValidateStruct(a.validate, in); err != nil {
		return err
	}

	stored, err := a.users.FindByID(ctx, user.ID)
	if err != nil {
		return err
	}
	if !a.hasher.Verify(in.OldPassword, stored.HashedPassword) {
		return errs.NewUnauthorizedError("incorrect current password")
	}

	digest, err := a.hasher.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	if err := a.users.UpdatePassword(ctx, stored.ID, digest); err != nil {
		return err
	}
	a.logger.Info().Str("userID", stored.ID).Msg("password changed")
	return nil
}

// SeedAdmin creates an admin account unless the email is already registered.
// It reports whether an account was created.
func (a *Accounts) SeedAdmin(ctx context.Context, email, name, password string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return false, errs.NewMissingRequiredFieldError("admin email and password")
	}
	if name == "" {
		name = "Admin"
	}

	if _, err := a.users.FindByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errs.IsNotFound(err) {
		return false, err
	}

	digest, err := a.hasher.Hash(password)
	if err != nil {
		return false, err
	}
	user := &models.User{
		Email:          email,
		Name:           name,
		Role:           models.RoleAdmin,
		HashedPassword: digest,
	}
	if err := a.users.Add(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}

func (a *Accounts) issue(user *models.User) (*AuthResult, error) {
	token, err := a.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, errs.NewInternalError("could not issue token")
	}
	return &AuthResult{AccessToken: token, TokenType: "bearer", User: user}, nil
}
