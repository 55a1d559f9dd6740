package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("project"), http.StatusNotFound},
		{"duplicate", NewAlreadyExists("email"), http.StatusBadRequest},
		{"missing token", NewMissingTokenError(), http.StatusUnauthorized},
		{"role", NewInsufficientRoleError("admin"), http.StatusForbidden},
		{"rate limited", NewRateLimitedError(), http.StatusTooManyRequests},
		{"wrapped", fmt.Errorf("load: %w", NewNotFound("client")), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestFamilies(t *testing.T) {
	assert.True(t, IsUnauthorized(NewInvalidCredentialsError()))
	assert.True(t, IsUnauthorized(NewExpiredTokenError()))
	assert.True(t, IsForbidden(NewInsufficientRoleError("admin")))
	assert.True(t, IsValidation(NewMissingRequiredFieldError("email")))
	assert.True(t, IsValidation(NewInvalidJSONError(errors.New("eof"))))
	assert.True(t, IsConflict(NewAlreadyExists("email")))
	assert.True(t, IsRateLimited(NewRateLimitedError()))
	assert.False(t, IsNotFound(NewAlreadyExists("email")))
}

func TestNewDatabaseError(t *testing.T) {
	dup := NewDatabaseError("create", "user", errors.New("UNIQUE constraint failed: users.email"))
	assert.True(t, IsConflict(dup))
	assert.Equal(t, http.StatusBadRequest, dup.StatusCode)

	passthrough := NewNotFound("project")
	assert.Same(t, passthrough, NewDatabaseError("get", "project", passthrough))
}

func TestGetFullError(t *testing.T) {
	err := NewInvalidJSONError(NewMalformedPayloadError("booking", errors.New("unexpected EOF")))
	assert.Equal(t,
		"invalid JSON: Invalid JSON format -> malformed payload: Malformed booking payload -> unexpected EOF",
		err.GetFullError())
}
