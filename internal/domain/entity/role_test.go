package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRole_Authority(t *testing.T) {
	assert.Equal(t, "ROLE_ADMIN", RoleAdmin.Authority())
	assert.Equal(t, "ROLE_VET", RoleVet.Authority())
	assert.Equal(t, "ROLE_RECEPTION", RoleReception.Authority())
	assert.Equal(t, "ROLE_STUDENT", RoleStudent.Authority())
	assert.Empty(t, Role("JANITOR").Authority())
}

func TestWriteRoles_ExcludeStudents(t *testing.T) {
	writers := WriteRoles()

	assert.True(t, writers.Contains(RoleAdmin))
	assert.True(t, writers.Contains(RoleVet))
	assert.True(t, writers.Contains(RoleReception))
	assert.False(t, writers.Contains(RoleStudent))
}

func TestOwner_PrincipalCarriesClientAuthority(t *testing.T) {
	owner := &Owner{ID: 4, Email: "maria@example.com", Active: true}

	principal := owner.Principal()

	assert.Equal(t, AuthorityClient, principal.Authority)
	assert.Equal(t, KindOwner, principal.Kind)
}

func TestPasswordResetToken_Valid(t *testing.T) {
	now := time.Now()
	token := PasswordResetToken{ExpiresAt: now.Add(time.Hour)}

	assert.True(t, token.Valid(now))
	assert.False(t, token.Valid(now.Add(2*time.Hour)), "expired tokens are invalid")

	token.Used = true
	assert.False(t, token.Valid(now), "consumption is terminal")
}
