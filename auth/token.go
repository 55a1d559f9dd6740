package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/projectveo/backend/errs"
)

// TokenTTL is how long an issued access token stays valid.
const TokenTTL = 7 * 24 * time.Hour

// DefaultJWTSecret is the fallback signing secret. Running with it is a misconfiguration.
const DefaultJWTSecret = "your-secret-key-change-in-production"

// Claims is the identity carried by a verified token.
type Claims struct {
	UserID string
	Role   string
}

type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer signs with secret, falling back to DefaultJWTSecret when it is empty.
func NewTokenIssuer(secret string) *TokenIssuer {
	if secret == "" {
		secret = DefaultJWTSecret
	}
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// UsesDefaultSecret reports whether the issuer signs with DefaultJWTSecret.
func (t *TokenIssuer) UsesDefaultSecret() bool {
	return string(t.secret) == DefaultJWTSecret
}

func (t *TokenIssuer) Issue(userID, role string) (string, error) {
	now := t.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry. Expired tokens fail with ErrExpiredToken,
// anything else malformed or forged with ErrInvalidToken.
func (t *TokenIssuer) Verify(tokenString string) (Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, errs.NewExpiredTokenError()
		}
		return Claims{}, errs.NewInvalidTokenError(err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return Claims{}, errs.NewInvalidTokenError(errors.New("invalid token claims"))
	}
	return Claims{UserID: claims.Subject, Role: claims.Role}, nil
}
