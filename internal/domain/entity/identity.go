// Package entity contains the core business objects of the project.
package entity

// IdentityKind distinguishes the two kinds of authenticatable principals.
type IdentityKind string

const (
	// KindStaff indicates a staff user ("usuario" in the persisted schema).
	KindStaff IdentityKind = "USUARIO"
	// KindOwner indicates a clinic-owner client ("propietario").
	KindOwner IdentityKind = "PROPIETARIO"
)

// String returns the string representation of the IdentityKind.
func (k IdentityKind) String() string {
	return string(k)
}

// IsValid checks if the IdentityKind is a valid value.
func (k IdentityKind) IsValid() bool {
	switch k {
	case KindStaff, KindOwner:
		return true
	default:
		return false
	}
}

// Principal is an authenticated caller as attached to the request context by
// the authentication gate. It never carries the stored secret.
type Principal struct {
	ID        uint         `json:"id"`        // Numeric identifier of the underlying record.
	Email     string       `json:"email"`     // Login identifier, also the token subject.
	Name      string       `json:"name"`      // Display name, used in audit events.
	Kind      IdentityKind `json:"kind"`      // Which identity table the principal came from.
	Authority string       `json:"authority"` // Single authority string, e.g. "ROLE_ADMIN" or "ROLE_CLIENT".
}

// Credential is the verifier-facing view of an identity: the principal plus
// the stored hash and the active flag. It exists only for the duration of a
// credential check and is never attached to a request context.
type Credential struct {
	Principal
	PasswordHash string // bcrypt hash; empty for legacy owner rows without a password.
	Active       bool   // Inactive identities fail authentication even with a correct secret.
}
