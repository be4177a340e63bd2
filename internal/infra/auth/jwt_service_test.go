package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic/config"
	"vetclinic/internal/domain/entity"
	"vetclinic/internal/domain/service"
)

const testSecret = "test_token_secret_key_very_long_for_testing"

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Token = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	require.NotNil(t, svc)

	return svc
}

func TestJWTService_IssueAndParse(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("admin@clinica.com", service.ExtraClaims{
		Role:   entity.RoleAdmin.String(),
		UserID: 7,
		Kind:   entity.KindStaff,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@clinica.com", claims.Subject)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, entity.KindStaff, claims.Kind)
	assert.WithinDuration(t, time.Now().Add(svc.TokenDuration()), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_ValidateSubject(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("vet@clinica.com", service.ExtraClaims{Role: "VET", UserID: 2, Kind: entity.KindStaff})
	require.NoError(t, err)

	assert.True(t, svc.Validate(token, "vet@clinica.com"))
	assert.False(t, svc.Validate(token, "otro@clinica.com"))
	assert.False(t, svc.Validate("clearly-not-a-jwt", "vet@clinica.com"))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestTokenService(t)

	claims, err := svc.Parse("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ForgedSignature(t *testing.T) {
	svc := newTestTokenService(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin@clinica.com",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := forged.SignedString([]byte("a-different-secret"))
	require.NoError(t, err)

	claims, parseErr := svc.Parse(signed)
	assert.Error(t, parseErr)
	assert.Nil(t, claims)
}

// signTestToken builds a token with an explicit expiry using the service's
// own secret, to exercise the expiry boundary without waiting.
func signTestToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-10 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	svc := newTestTokenService(t)

	stillValid := signTestToken(t, "admin@clinica.com", time.Now().Add(time.Second))
	assert.False(t, svc.IsExpired(stillValid))
	assert.True(t, svc.Validate(stillValid, "admin@clinica.com"))

	justExpired := signTestToken(t, "admin@clinica.com", time.Now().Add(-time.Second))
	assert.True(t, svc.IsExpired(justExpired))
	assert.False(t, svc.Validate(justExpired, "admin@clinica.com"))

	_, err := svc.Parse(justExpired)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
