// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// StaffUser is a clinic employee account. Staff members authenticate with
// email and password and carry exactly one Role.
type StaffUser struct {
	ID           uint      // Numeric primary key, also the "uid" token claim.
	Name         string    // The employee's display name.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt-hashed secret; never exposed outside the credential path.
	Role         Role      // One of the closed staff role set.
	Active       bool      // Deactivated accounts must fail authentication.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Principal returns the request-facing view of the staff user.
func (u *StaffUser) Principal() Principal {
	return Principal{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Kind:      KindStaff,
		Authority: u.Role.Authority(),
	}
}

// Credential returns the verifier-facing view of the staff user.
func (u *StaffUser) Credential() Credential {
	return Credential{
		Principal:    u.Principal(),
		PasswordHash: u.PasswordHash,
		Active:       u.Active,
	}
}
