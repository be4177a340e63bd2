// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vetclinic/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required to log in. UserType selects the
// identity table to authenticate against; when empty, staff is tried first
// and owner-clients second.
type LoginInput struct {
	Email    string
	Password string
	UserType entity.IdentityKind
}

// --- Output DTOs ---

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token    string            `json:"token"`
	Type     string            `json:"type"` // Always "Bearer".
	Identity *entity.Principal `json:"identity"`
}

// TokenCheckOutput reports the result of a token validation request.
type TokenCheckOutput struct {
	Valid bool `json:"valid"`
}

// AuthUsecase defines the interface for authentication business operations.
type AuthUsecase interface {
	// Login verifies credentials against the selected identity table and
	// issues a signed token. Inactive accounts and accounts without stored
	// credentials fail with distinct errors.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// ValidateToken reports whether the token parses, is unexpired and still
	// matches a live identity record.
	ValidateToken(ctx context.Context, tokenString string) (*TokenCheckOutput, error)

	// Identify resolves a token to the principal it was issued for.
	Identify(ctx context.Context, tokenString string) (*entity.Principal, error)

	// Logout records the end of a session. Tokens are stateless, so this is
	// an audit-trail operation rather than a revocation.
	Logout(ctx context.Context) error
}
