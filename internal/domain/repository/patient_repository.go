// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vetclinic/internal/domain/entity"
)

// ErrPatientNotFound is a domain-specific error returned when a patient is not found.
var ErrPatientNotFound = errors.New("patient not found")

// PatientRepository defines the standard operations for patient persistence.
type PatientRepository interface {
	// FindByID retrieves a single patient by its numeric ID.
	FindByID(ctx context.Context, id uint) (*entity.Patient, error)

	// FindByOwnerID retrieves all patients belonging to an owner.
	FindByOwnerID(ctx context.Context, ownerID uint) ([]*entity.Patient, error)

	// List retrieves all patients.
	List(ctx context.Context) ([]*entity.Patient, error)

	// Create persists a new patient.
	Create(ctx context.Context, patient *entity.Patient) error

	// Update modifies an existing patient.
	Update(ctx context.Context, patient *entity.Patient) error

	// Delete removes a patient by ID.
	Delete(ctx context.Context, id uint) error
}
