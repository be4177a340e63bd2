// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vetclinic/internal/domain/entity"
)

// RequestResetInput asks for a password-reset token to be issued.
type RequestResetInput struct {
	Email    string
	UserType entity.IdentityKind
}

// RequestResetOutput carries the issued token back to the caller. In a full
// deployment the token travels by email; the API response never discloses
// whether the email exists.
type RequestResetOutput struct {
	Token string
}

// ConfirmResetInput redeems a previously issued token for a new password.
type ConfirmResetInput struct {
	Token       string
	NewPassword string
}

// ResetUsecase defines the password-reset business operations.
type ResetUsecase interface {
	// RequestReset issues a fresh reset token for the account. Unknown
	// emails return a nil output and no error so callers cannot probe for
	// registered addresses.
	RequestReset(ctx context.Context, input RequestResetInput) (*RequestResetOutput, error)

	// ConfirmReset validates the token, stores the new password hash and
	// consumes the token. Expired, consumed or unknown tokens all fail with
	// the same error.
	ConfirmReset(ctx context.Context, input ConfirmResetInput) error
}
