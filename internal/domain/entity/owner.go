// Package entity contains the core business objects of the project.
package entity

import "time"

// Owner is a clinic-owner client: the person who brings patients in. Owners
// may log in to consult their pets' records; legacy rows imported without a
// password cannot authenticate until one is set through the reset flow.
type Owner struct {
	ID           uint      // Numeric primary key, also the "uid" token claim.
	Name         string    // The owner's display name.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash, may be empty for legacy records.
	Phone        string    // Contact phone number.
	Active       bool      // Deactivated accounts must fail authentication.
	CreatedAt    time.Time // Timestamp of record creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Principal returns the request-facing view of the owner. Owners carry the
// fixed client authority.
func (o *Owner) Principal() Principal {
	return Principal{
		ID:        o.ID,
		Email:     o.Email,
		Name:      o.Name,
		Kind:      KindOwner,
		Authority: AuthorityClient,
	}
}

// Credential returns the verifier-facing view of the owner.
func (o *Owner) Credential() Credential {
	return Credential{
		Principal:    o.Principal(),
		PasswordHash: o.PasswordHash,
		Active:       o.Active,
	}
}
