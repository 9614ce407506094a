package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/oseasjs/nest-crud-jwt/internal/domain"
)

// TokenService issues and verifies the signed access tokens gating
// every product operation. HS256 over a process-wide secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds an issuer. ttl == 0 issues tokens without an
// expiry claim.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(username string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  username,
		ID:       uuid.NewString(),
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	// ttl == 0 is the no-expiry sentinel; anything else sets exp, so a
	// negative ttl yields an already-expired token.
	if s.ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(s.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify returns the embedded username, or ErrUnauthorized on a bad
// signature, malformed payload or expired token.
func (s *TokenService) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token missing subject: %w", domain.ErrUnauthorized)
	}
	return claims.Subject, nil
}
