// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"vetclinic/internal/domain/entity"
)

// CreatePatientInput defines the data required to register a patient.
type CreatePatientInput struct {
	Name        string
	Species     string
	Breed       string
	OwnerID     uint
	DateOfBirth *time.Time
}

// UpdatePatientInput defines the mutable patient fields.
type UpdatePatientInput struct {
	ID          uint
	Name        string
	Species     string
	Breed       string
	OwnerID     uint
	DateOfBirth *time.Time
}

// PatientUsecase defines the patient-record business operations.
type PatientUsecase interface {
	Get(ctx context.Context, id uint) (*entity.Patient, error)
	List(ctx context.Context) ([]*entity.Patient, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Patient, error)
	Create(ctx context.Context, input CreatePatientInput) (*entity.Patient, error)
	Update(ctx context.Context, input UpdatePatientInput) (*entity.Patient, error)
	Delete(ctx context.Context, id uint) error
}
