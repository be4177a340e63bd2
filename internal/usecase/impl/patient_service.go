// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "vetclinic/internal/delivery/context"
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/domain/repository"
	"vetclinic/internal/domain/service"
	"vetclinic/internal/usecase"
)

// patientService implements the PatientUsecase interface.
type patientService struct {
	patientRepo repository.PatientRepository
	ownerRepo   repository.OwnerRepository
	audit       service.AuditRecorder
	logger      *slog.Logger
}

// PatientServiceParams holds dependencies for patientService, injected by Fx.
type PatientServiceParams struct {
	fx.In

	PatientRepo repository.PatientRepository
	OwnerRepo   repository.OwnerRepository
	Audit       service.AuditRecorder
	Logger      *slog.Logger
}

// NewPatientService is the constructor for patientService.
func NewPatientService(params PatientServiceParams) usecase.PatientUsecase {
	return &patientService{
		patientRepo: params.PatientRepo,
		ownerRepo:   params.OwnerRepo,
		audit:       params.Audit,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *patientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get loads a single patient record and leaves an access trail.
func (srv *patientService) Get(ctx context.Context, id uint) (*entity.Patient, error) {
	patient, err := srv.patientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load patient")
	}

	srv.audit.Access(ctx, "patient", formatID(patient.ID))

	return patient, nil
}

// List returns all patients.
func (srv *patientService) List(ctx context.Context) ([]*entity.Patient, error) {
	patients, err := srv.patientRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}

	return patients, nil
}

// ListByOwner returns the patients registered to one owner.
func (srv *patientService) ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Patient, error) {
	if _, err := srv.ownerRepo.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load owner")
	}

	patients, err := srv.patientRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patients by owner")
	}

	return patients, nil
}

// Create registers a new patient for an existing owner.
func (srv *patientService) Create(ctx context.Context, input usecase.CreatePatientInput) (*entity.Patient, error) {
	if _, err := srv.ownerRepo.FindByID(ctx, input.OwnerID); err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("owner does not exist")
		}

		return nil, errors.Wrap(err, "failed to load owner")
	}

	patient := &entity.Patient{
		Name:        input.Name,
		Species:     input.Species,
		Breed:       input.Breed,
		OwnerID:     input.OwnerID,
		DateOfBirth: input.DateOfBirth,
	}

	if err := srv.patientRepo.Create(ctx, patient); err != nil {
		return nil, errors.Wrap(err, "failed to create patient")
	}

	srv.audit.Create(ctx, "patient", formatID(patient.ID), srv.audit.Sanitize(patientDetail(patient)))
	srv.log(ctx).Info("Patient created", slog.Any("patientID", patient.ID), slog.Any("ownerID", patient.OwnerID))

	return patient, nil
}

// Update modifies an existing patient and records both snapshots.
func (srv *patientService) Update(ctx context.Context, input usecase.UpdatePatientInput) (*entity.Patient, error) {
	existing, err := srv.patientRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load patient")
	}

	oldDetail := patientDetail(existing)

	existing.Name = input.Name
	existing.Species = input.Species
	existing.Breed = input.Breed
	existing.DateOfBirth = input.DateOfBirth
	if input.OwnerID != 0 {
		existing.OwnerID = input.OwnerID
	}

	if err := srv.patientRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update patient")
	}

	srv.audit.Update(ctx, "patient", formatID(existing.ID), oldDetail, patientDetail(existing))

	return existing, nil
}

// Delete removes a patient record.
func (srv *patientService) Delete(ctx context.Context, id uint) error {
	if err := srv.patientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete patient")
	}

	srv.audit.Delete(ctx, "patient", formatID(id))
	srv.log(ctx).Info("Patient deleted", slog.Any("patientID", id))

	return nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func patientDetail(p *entity.Patient) string {
	return fmt.Sprintf("name=%s species=%s breed=%s owner=%d", p.Name, p.Species, p.Breed, p.OwnerID)
}
