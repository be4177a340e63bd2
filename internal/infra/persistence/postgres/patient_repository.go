// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/domain/repository"
	"vetclinic/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// patientRepository implements the repository.PatientRepository interface using GORM.
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

// FindByID retrieves a single patient by its numeric ID.
func (repo *patientRepository) FindByID(ctx context.Context, id uint) (*entity.Patient, error) {
	var patientM model.PatientModel
	if err := repo.db.WithContext(ctx).First(&patientM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient by id")
	}

	return toPatientDomain(&patientM), nil
}

// FindByOwnerID retrieves all patients belonging to an owner.
func (repo *patientRepository) FindByOwnerID(ctx context.Context, ownerID uint) ([]*entity.Patient, error) {
	var patientMs []model.PatientModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&patientMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list patients by owner")
	}

	patients := make([]*entity.Patient, 0, len(patientMs))
	for i := range patientMs {
		patients = append(patients, toPatientDomain(&patientMs[i]))
	}

	return patients, nil
}

// List retrieves all patients.
func (repo *patientRepository) List(ctx context.Context) ([]*entity.Patient, error) {
	var patientMs []model.PatientModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&patientMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}

	patients := make([]*entity.Patient, 0, len(patientMs))
	for i := range patientMs {
		patients = append(patients, toPatientDomain(&patientMs[i]))
	}

	return patients, nil
}

// Create persists a new patient.
func (repo *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Create(patientM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required patient information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create patient")
	}

	patient.ID = patientM.ID
	patient.CreatedAt = patientM.CreatedAt
	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

// Update modifies an existing patient.
func (repo *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Save(patientM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update patient")
	}

	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

// Delete removes a patient by ID.
func (repo *patientRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.PatientModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete patient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPatientDomain(data *model.PatientModel) *entity.Patient {
	if data == nil {
		return nil
	}

	return &entity.Patient{
		ID:          data.ID,
		Name:        data.Name,
		Species:     data.Species,
		Breed:       data.Breed,
		OwnerID:     data.OwnerID,
		DateOfBirth: data.DateOfBirth,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromPatientDomain(data *entity.Patient) *model.PatientModel {
	if data == nil {
		return nil
	}

	return &model.PatientModel{
		ID:          data.ID,
		Name:        data.Name,
		Species:     data.Species,
		Breed:       data.Breed,
		OwnerID:     data.OwnerID,
		DateOfBirth: data.DateOfBirth,
	}
}
