package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/domain/repository"
	mockRepo "vetclinic/internal/mocks/repository"
	mockSvc "vetclinic/internal/mocks/service"
	"vetclinic/internal/usecase"
)

// patientServiceFixtures holds all test dependencies for patient service tests.
type patientServiceFixtures struct {
	service     usecase.PatientUsecase
	patientRepo *mockRepo.MockPatientRepository
	ownerRepo   *mockRepo.MockOwnerRepository
	audit       *mockSvc.MockAuditRecorder
}

func createTestPatientService(t *testing.T) patientServiceFixtures {
	patientRepo := mockRepo.NewMockPatientRepository(t)
	ownerRepo := mockRepo.NewMockOwnerRepository(t)
	audit := mockSvc.NewMockAuditRecorder(t)

	svc := NewPatientService(PatientServiceParams{
		PatientRepo: patientRepo,
		OwnerRepo:   ownerRepo,
		Audit:       audit,
		Logger:      newDiscardLogger(),
	})

	return patientServiceFixtures{
		service:     svc,
		patientRepo: patientRepo,
		ownerRepo:   ownerRepo,
		audit:       audit,
	}
}

func TestPatientService_Create_Success(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()

	fx.ownerRepo.On("FindByID", ctx, uint(5)).Return(&entity.Owner{ID: 5, Active: true}, nil)
	fx.patientRepo.On("Create", ctx, mock.AnythingOfType("*entity.Patient")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Patient).ID = 12
		}).
		Return(nil)
	fx.audit.On("Sanitize", "name=Rocky species=dog breed=beagle owner=5").
		Return("name=Rocky species=dog breed=beagle owner=5")
	fx.audit.On("Create", ctx, "patient", "12", "name=Rocky species=dog breed=beagle owner=5").Return()

	patient, err := fx.service.Create(ctx, usecase.CreatePatientInput{
		Name:    "Rocky",
		Species: "dog",
		Breed:   "beagle",
		OwnerID: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(12), patient.ID)
}

func TestPatientService_Create_UnknownOwner(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()

	fx.ownerRepo.On("FindByID", ctx, uint(99)).Return(nil, repository.ErrOwnerNotFound)

	patient, err := fx.service.Create(ctx, usecase.CreatePatientInput{
		Name:    "Rocky",
		Species: "dog",
		OwnerID: 99,
	})

	assert.Nil(t, patient)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPatientService_Get_RecordsAccess(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()

	fx.patientRepo.On("FindByID", ctx, uint(3)).
		Return(&entity.Patient{ID: 3, Name: "Misu", Species: "cat", OwnerID: 1}, nil)
	fx.audit.On("Access", ctx, "patient", "3").Return()

	patient, err := fx.service.Get(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, "Misu", patient.Name)
}

func TestPatientService_Get_NotFound(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()

	fx.patientRepo.On("FindByID", ctx, uint(404)).Return(nil, repository.ErrPatientNotFound)

	patient, err := fx.service.Get(ctx, 404)

	assert.Nil(t, patient)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPatientService_Update_RecordsBothSnapshots(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()

	fx.patientRepo.On("FindByID", ctx, uint(3)).
		Return(&entity.Patient{ID: 3, Name: "Misu", Species: "cat", Breed: "siamese", OwnerID: 1}, nil)
	fx.patientRepo.On("Update", ctx, mock.AnythingOfType("*entity.Patient")).Return(nil)
	fx.audit.On("Update", ctx, "patient", "3",
		"name=Misu species=cat breed=siamese owner=1",
		"name=Misu species=cat breed=persian owner=1").Return()

	patient, err := fx.service.Update(ctx, usecase.UpdatePatientInput{
		ID:      3,
		Name:    "Misu",
		Species: "cat",
		Breed:   "persian",
		OwnerID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, "persian", patient.Breed)
}

func TestPatientService_Delete_Success(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()

	fx.patientRepo.On("Delete", ctx, uint(3)).Return(nil)
	fx.audit.On("Delete", ctx, "patient", "3").Return()

	assert.NoError(t, fx.service.Delete(ctx, 3))
}

func TestPatientService_ListByOwner_UnknownOwner(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()

	fx.ownerRepo.On("FindByID", ctx, uint(8)).Return(nil, repository.ErrOwnerNotFound)

	patients, err := fx.service.ListByOwner(ctx, 8)

	assert.Nil(t, patients)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
