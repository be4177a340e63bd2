// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"vetclinic/internal/delivery/http/response"
	"vetclinic/internal/usecase"
)

// patientRequest is the wire shape of a patient create or update.
type patientRequest struct {
	Name        string     `json:"name" validate:"required"`
	Species     string     `json:"species" validate:"required"`
	Breed       string     `json:"breed"`
	OwnerID     uint       `json:"ownerId" validate:"required"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
}

// PatientHandler holds dependencies for patient-record handlers.
type PatientHandler struct {
	uc     usecase.PatientUsecase
	logger *slog.Logger
}

// NewPatientHandler is the constructor for PatientHandler, injected by Fx.
func NewPatientHandler(uc usecase.PatientUsecase, logger *slog.Logger) *PatientHandler {
	return &PatientHandler{uc: uc, logger: logger}
}

// List returns all patients, optionally filtered by owner.
func (h *PatientHandler) List(c echo.Context) error {
	if ownerParam := c.QueryParam("ownerId"); ownerParam != "" {
		ownerID, err := parseUintParam(ownerParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "ownerId must be a positive number")
		}

		patients, err := h.uc.ListByOwner(c.Request().Context(), ownerID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, patients, "")
	}

	patients, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patients, "")
}

// Get returns a single patient by id.
func (h *PatientHandler) Get(c echo.Context) error {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "id must be a positive number")
	}

	patient, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patient, "")
}

// Create registers a new patient.
func (h *PatientHandler) Create(c echo.Context) error {
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	patient, err := h.uc.Create(c.Request().Context(), usecase.CreatePatientInput{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		OwnerID:     req.OwnerID,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, patient, "Patient registered")
}

// Update modifies an existing patient.
func (h *PatientHandler) Update(c echo.Context) error {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "id must be a positive number")
	}

	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	patient, err := h.uc.Update(c.Request().Context(), usecase.UpdatePatientInput{
		ID:          id,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		OwnerID:     req.OwnerID,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patient, "Patient updated")
}

// Delete removes a patient record.
func (h *PatientHandler) Delete(c echo.Context) error {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "id must be a positive number")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Patient deleted"}, "")
}

func parseUintParam(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}

	return uint(id), nil
}
