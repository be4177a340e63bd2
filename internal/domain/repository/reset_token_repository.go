// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"vetclinic/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for password-reset token persistence.
var (
	// ErrResetTokenNotFound is returned when no matching reset token exists.
	ErrResetTokenNotFound = errors.New("password reset token not found")
	// ErrDuplicateResetToken is returned when the random token value collides
	// with an existing row. The store surfaces it instead of corrupting state.
	ErrDuplicateResetToken = errors.New("password reset token value already exists")
)

// ResetTokenRepository defines the operations of the password-reset token store.
// Lifecycle: ISSUED -> USED (terminal); expiry is a query-time predicate, not
// a stored transition.
type ResetTokenRepository interface {
	// Create persists a freshly issued token. Multiple outstanding tokens per
	// email are permitted.
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// FindValid returns the newest token for the email/kind pair where
	// used = false and expiresAt > now, or ErrResetTokenNotFound.
	FindValid(ctx context.Context, email string, kind entity.IdentityKind, now time.Time) (*entity.PasswordResetToken, error)

	// FindByValue returns the token row with the given opaque value.
	FindByValue(ctx context.Context, value string) (*entity.PasswordResetToken, error)

	// Consume sets used = true. Consuming an already consumed token leaves
	// used = true; callers must check validity first.
	Consume(ctx context.Context, id uint) error

	// PurgeExpired deletes all rows with expiresAt < now or used = true and
	// returns the number of rows removed. Storage hygiene only.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
