// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"vetclinic/internal/domain/entity"
	"vetclinic/internal/usecase"
)

// MockAuthUsecase is a mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock wired to the test lifecycle.
func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.LoginOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*usecase.TokenCheckOutput, error) {
	args := m.Called(ctx, tokenString)
	output, _ := args.Get(0).(*usecase.TokenCheckOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) Identify(ctx context.Context, tokenString string) (*entity.Principal, error) {
	args := m.Called(ctx, tokenString)
	principal, _ := args.Get(0).(*entity.Principal)

	return principal, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockResetUsecase is a mock of usecase.ResetUsecase.
type MockResetUsecase struct {
	mock.Mock
}

// NewMockResetUsecase creates a mock wired to the test lifecycle.
func NewMockResetUsecase(t *testing.T) *MockResetUsecase {
	m := &MockResetUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockResetUsecase) RequestReset(ctx context.Context, input usecase.RequestResetInput) (*usecase.RequestResetOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.RequestResetOutput)

	return output, args.Error(1)
}

func (m *MockResetUsecase) ConfirmReset(ctx context.Context, input usecase.ConfirmResetInput) error {
	return m.Called(ctx, input).Error(0)
}

// MockPatientUsecase is a mock of usecase.PatientUsecase.
type MockPatientUsecase struct {
	mock.Mock
}

// NewMockPatientUsecase creates a mock wired to the test lifecycle.
func NewMockPatientUsecase(t *testing.T) *MockPatientUsecase {
	m := &MockPatientUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPatientUsecase) Get(ctx context.Context, id uint) (*entity.Patient, error) {
	args := m.Called(ctx, id)
	patient, _ := args.Get(0).(*entity.Patient)

	return patient, args.Error(1)
}

func (m *MockPatientUsecase) List(ctx context.Context) ([]*entity.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]*entity.Patient)

	return patients, args.Error(1)
}

func (m *MockPatientUsecase) ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Patient, error) {
	args := m.Called(ctx, ownerID)
	patients, _ := args.Get(0).([]*entity.Patient)

	return patients, args.Error(1)
}

func (m *MockPatientUsecase) Create(ctx context.Context, input usecase.CreatePatientInput) (*entity.Patient, error) {
	args := m.Called(ctx, input)
	patient, _ := args.Get(0).(*entity.Patient)

	return patient, args.Error(1)
}

func (m *MockPatientUsecase) Update(ctx context.Context, input usecase.UpdatePatientInput) (*entity.Patient, error) {
	args := m.Called(ctx, input)
	patient, _ := args.Get(0).(*entity.Patient)

	return patient, args.Error(1)
}

func (m *MockPatientUsecase) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
