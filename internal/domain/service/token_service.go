// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vetclinic/internal/domain/entity"
)

// Claims is the decoded content of an access token.
type Claims struct {
	Role   string              // Authority-bearing role, empty for owner-clients.
	UserID uint                // Numeric identifier of the identity record.
	Kind   entity.IdentityKind // Which identity table the subject lives in.
	jwt.RegisteredClaims
}

// ExtraClaims are the optional claims embedded alongside the subject.
type ExtraClaims struct {
	Role   string
	UserID uint
	Kind   entity.IdentityKind
}

// TokenService produces and parses signed, time-bounded identity tokens.
// Tokens are stateless: validity derives from signature and expiry alone and
// is re-checked against current identity state by callers.
type TokenService interface {
	// Issue creates a signed token for the subject with issued-at = now and
	// expiry = now + the configured lifetime.
	Issue(subject string, extra ExtraClaims) (string, error)

	// Parse verifies the signature and decodes the claims. Any parse failure
	// is surfaced as an error, never silently defaulted.
	Parse(tokenString string) (*Claims, error)

	// IsExpired reports whether the token's expiry is before the current
	// time. Unparseable tokens are treated as expired.
	IsExpired(tokenString string) bool

	// Validate reports whether the token parses, carries the expected
	// subject and has not expired.
	Validate(tokenString, expectedSubject string) bool

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
