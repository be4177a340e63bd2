// Package entity contains the core business objects of the project.
package entity

import "time"

// PasswordResetToken is a single-use, expiring secret authorizing a password
// change without the original credential. A token is valid iff it has not
// been used and the current time is before its expiry; expiry is always a
// query-time predicate, never an explicit state transition.
type PasswordResetToken struct {
	ID        uint         // Numeric primary key.
	Token     string       // Random opaque value, unique across all rows.
	Email     string       // The identity the token was issued for.
	UserType  IdentityKind // Which identity table the email belongs to.
	ExpiresAt time.Time    // Issuance time + 24h.
	Used      bool         // Flipped exactly once on consumption ("usado").
	CreatedAt time.Time    // Timestamp of issuance.
}

// Valid reports whether the token can still authorize a password change at
// the given instant.
func (t *PasswordResetToken) Valid(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
