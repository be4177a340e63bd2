// Package service defines interfaces for core, stateless domain logic.
package service

import (
	"context"

	"vetclinic/internal/domain/entity"
)

// CredentialSource resolves a login identifier to a stored credential for one
// identity kind. Staff users and clinic-owner clients are two providers
// behind this single capability; the login context selects between them.
type CredentialSource interface {
	// Kind identifies which identity table this source reads.
	Kind() entity.IdentityKind

	// LoadByEmail returns the stored credential for the email, or the
	// repository's not-found sentinel. It performs no policy checks; the
	// caller decides how inactive or passwordless records fail.
	LoadByEmail(ctx context.Context, email string) (*entity.Credential, error)
}
