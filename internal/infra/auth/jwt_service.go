// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"vetclinic/config"
	"vetclinic/internal/domain/entity"
	"vetclinic/internal/domain/service"
)

// ErrInvalidToken is returned for any token that fails signature verification
// or carries a malformed payload.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   string        // Single symmetric signing key; rotation invalidates all outstanding tokens.
	tokenTTL time.Duration // Time-to-live for issued tokens.
}

// jwtClaims maps the wire-level claim names onto the domain Claims.
type jwtClaims struct {
	Role   string              `json:"role,omitempty"`
	UserID uint                `json:"uid,omitempty"`
	Kind   entity.IdentityKind `json:"kind,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:   cfg.SecretKey.Token,
		tokenTTL: cfg.TokenTTL(),
	}, nil
}

// Issue creates a signed token for the subject with the configured lifetime.
func (s *jwtService) Issue(subject string, extra service.ExtraClaims) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Role:   extra.Role,
		UserID: extra.UserID,
		Kind:   extra.Kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Parse verifies the signature and decodes the claims.
func (s *jwtService) Parse(tokenString string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, errors.Wrap(ErrInvalidToken, "failed to parse token claims")
	}

	return &service.Claims{
		Role:             claims.Role,
		UserID:           claims.UserID,
		Kind:             claims.Kind,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}

// IsExpired reports whether the token's expiry is before the current time.
// The jwt library already rejects expired tokens during Parse, so any parse
// failure counts as expired here.
func (s *jwtService) IsExpired(tokenString string) bool {
	claims, err := s.Parse(tokenString)
	if err != nil {
		return true
	}

	return claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now())
}

// Validate reports whether the token parses, carries the expected subject and
// has not expired.
func (s *jwtService) Validate(tokenString, expectedSubject string) bool {
	claims, err := s.Parse(tokenString)
	if err != nil {
		return false
	}

	if claims.Subject != expectedSubject {
		return false
	}

	return claims.ExpiresAt != nil && claims.ExpiresAt.After(time.Now())
}

// TokenDuration returns the configured token lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.tokenTTL
}
