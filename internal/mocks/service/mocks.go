// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"vetclinic/internal/domain/entity"
	"vetclinic/internal/domain/service"
)

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock wired to the test lifecycle.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(subject string, extra service.ExtraClaims) (string, error) {
	args := m.Called(subject, extra)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Parse(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) IsExpired(tokenString string) bool {
	return m.Called(tokenString).Bool(0)
}

func (m *MockTokenService) Validate(tokenString, expectedSubject string) bool {
	return m.Called(tokenString, expectedSubject).Bool(0)
}

func (m *MockTokenService) TokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock wired to the test lifecycle.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockCredentialSource is a mock of service.CredentialSource.
type MockCredentialSource struct {
	mock.Mock
}

// NewMockCredentialSource creates a mock wired to the test lifecycle.
func NewMockCredentialSource(t *testing.T) *MockCredentialSource {
	m := &MockCredentialSource{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCredentialSource) Kind() entity.IdentityKind {
	return m.Called().Get(0).(entity.IdentityKind)
}

func (m *MockCredentialSource) LoadByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	args := m.Called(ctx, email)
	credential, _ := args.Get(0).(*entity.Credential)

	return credential, args.Error(1)
}

// MockAuditRecorder is a mock of service.AuditRecorder. Event methods record
// calls without expectations by default; tests that care register them.
type MockAuditRecorder struct {
	mock.Mock
}

// NewMockAuditRecorder creates a mock wired to the test lifecycle.
func NewMockAuditRecorder(t *testing.T) *MockAuditRecorder {
	m := &MockAuditRecorder{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuditRecorder) Create(ctx context.Context, resource, resourceID, detail string) {
	m.Called(ctx, resource, resourceID, detail)
}

func (m *MockAuditRecorder) Update(ctx context.Context, resource, resourceID, oldDetail, newDetail string) {
	m.Called(ctx, resource, resourceID, oldDetail, newDetail)
}

func (m *MockAuditRecorder) Delete(ctx context.Context, resource, resourceID string) {
	m.Called(ctx, resource, resourceID)
}

func (m *MockAuditRecorder) Access(ctx context.Context, resource, resourceID string) {
	m.Called(ctx, resource, resourceID)
}

func (m *MockAuditRecorder) LoginSuccess(ctx context.Context, email, kind string) {
	m.Called(ctx, email, kind)
}

func (m *MockAuditRecorder) LoginFailure(ctx context.Context, email, reason string) {
	m.Called(ctx, email, reason)
}

func (m *MockAuditRecorder) Logout(ctx context.Context, email string) {
	m.Called(ctx, email)
}

func (m *MockAuditRecorder) PermissionChange(ctx context.Context, target, detail string) {
	m.Called(ctx, target, detail)
}

func (m *MockAuditRecorder) DataExport(ctx context.Context, resource, detail string) {
	m.Called(ctx, resource, detail)
}

func (m *MockAuditRecorder) StatusChange(ctx context.Context, resource, resourceID, from, to string) {
	m.Called(ctx, resource, resourceID, from, to)
}

func (m *MockAuditRecorder) SecurityEvent(ctx context.Context, event, detail string) {
	m.Called(ctx, event, detail)
}

func (m *MockAuditRecorder) Sanitize(data string) string {
	return m.Called(data).String(0)
}
