// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"vetclinic/internal/domain/entity"
	"vetclinic/internal/domain/repository"
)

// MockStaffRepository is a mock of repository.StaffRepository.
type MockStaffRepository struct {
	mock.Mock
}

// NewMockStaffRepository creates a mock wired to the test lifecycle.
func NewMockStaffRepository(t *testing.T) *MockStaffRepository {
	m := &MockStaffRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStaffRepository) FindByID(ctx context.Context, id uint) (*entity.StaffUser, error) {
	args := m.Called(ctx, id)
	staff, _ := args.Get(0).(*entity.StaffUser)

	return staff, args.Error(1)
}

func (m *MockStaffRepository) FindByEmail(ctx context.Context, email string) (*entity.StaffUser, error) {
	args := m.Called(ctx, email)
	staff, _ := args.Get(0).(*entity.StaffUser)

	return staff, args.Error(1)
}

func (m *MockStaffRepository) Create(ctx context.Context, staff *entity.StaffUser) error {
	return m.Called(ctx, staff).Error(0)
}

func (m *MockStaffRepository) Update(ctx context.Context, staff *entity.StaffUser) error {
	return m.Called(ctx, staff).Error(0)
}

func (m *MockStaffRepository) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	return m.Called(ctx, email, hash).Error(0)
}

// MockOwnerRepository is a mock of repository.OwnerRepository.
type MockOwnerRepository struct {
	mock.Mock
}

// NewMockOwnerRepository creates a mock wired to the test lifecycle.
func NewMockOwnerRepository(t *testing.T) *MockOwnerRepository {
	m := &MockOwnerRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOwnerRepository) FindByID(ctx context.Context, id uint) (*entity.Owner, error) {
	args := m.Called(ctx, id)
	owner, _ := args.Get(0).(*entity.Owner)

	return owner, args.Error(1)
}

func (m *MockOwnerRepository) FindByEmail(ctx context.Context, email string) (*entity.Owner, error) {
	args := m.Called(ctx, email)
	owner, _ := args.Get(0).(*entity.Owner)

	return owner, args.Error(1)
}

func (m *MockOwnerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	return m.Called(ctx, owner).Error(0)
}

func (m *MockOwnerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	return m.Called(ctx, owner).Error(0)
}

func (m *MockOwnerRepository) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	return m.Called(ctx, email, hash).Error(0)
}

// MockResetTokenRepository is a mock of repository.ResetTokenRepository.
type MockResetTokenRepository struct {
	mock.Mock
}

// NewMockResetTokenRepository creates a mock wired to the test lifecycle.
func NewMockResetTokenRepository(t *testing.T) *MockResetTokenRepository {
	m := &MockResetTokenRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockResetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockResetTokenRepository) FindValid(ctx context.Context, email string, kind entity.IdentityKind, now time.Time) (*entity.PasswordResetToken, error) {
	args := m.Called(ctx, email, kind, now)
	token, _ := args.Get(0).(*entity.PasswordResetToken)

	return token, args.Error(1)
}

func (m *MockResetTokenRepository) FindByValue(ctx context.Context, value string) (*entity.PasswordResetToken, error) {
	args := m.Called(ctx, value)
	token, _ := args.Get(0).(*entity.PasswordResetToken)

	return token, args.Error(1)
}

func (m *MockResetTokenRepository) Consume(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockResetTokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)

	return args.Get(0).(int64), args.Error(1)
}

// MockPatientRepository is a mock of repository.PatientRepository.
type MockPatientRepository struct {
	mock.Mock
}

// NewMockPatientRepository creates a mock wired to the test lifecycle.
func NewMockPatientRepository(t *testing.T) *MockPatientRepository {
	m := &MockPatientRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id uint) (*entity.Patient, error) {
	args := m.Called(ctx, id)
	patient, _ := args.Get(0).(*entity.Patient)

	return patient, args.Error(1)
}

func (m *MockPatientRepository) FindByOwnerID(ctx context.Context, ownerID uint) ([]*entity.Patient, error) {
	args := m.Called(ctx, ownerID)
	patients, _ := args.Get(0).([]*entity.Patient)

	return patients, args.Error(1)
}

func (m *MockPatientRepository) List(ctx context.Context) ([]*entity.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]*entity.Patient)

	return patients, args.Error(1)
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *MockPatientRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockTransactionManager is a mock of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock wired to the test lifecycle.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.Called(ctx, fn).Error(0)
}

// MockRepositoryFactory is a mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock wired to the test lifecycle.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) StaffRepo() repository.StaffRepository {
	return m.Called().Get(0).(repository.StaffRepository)
}

func (m *MockRepositoryFactory) OwnerRepo() repository.OwnerRepository {
	return m.Called().Get(0).(repository.OwnerRepository)
}

func (m *MockRepositoryFactory) ResetTokenRepo() repository.ResetTokenRepository {
	return m.Called().Get(0).(repository.ResetTokenRepository)
}

func (m *MockRepositoryFactory) PatientRepo() repository.PatientRepository {
	return m.Called().Get(0).(repository.PatientRepository)
}
