// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vetclinic/internal/domain/entity"
)

// ErrStaffNotFound is a domain-specific error returned when a staff user is not found.
var ErrStaffNotFound = errors.New("staff user not found")

// StaffRepository defines the standard operations for staff user persistence.
// The application layer depends on this interface, not the concrete implementation.
type StaffRepository interface {
	// FindByID retrieves a single staff user by their numeric ID.
	FindByID(ctx context.Context, id uint) (*entity.StaffUser, error)

	// FindByEmail retrieves a single staff user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.StaffUser, error)

	// Create persists a new staff user.
	Create(ctx context.Context, user *entity.StaffUser) error

	// Update modifies an existing staff user.
	Update(ctx context.Context, user *entity.StaffUser) error

	// UpdatePasswordHash replaces the stored hash for the given email.
	UpdatePasswordHash(ctx context.Context, email, hash string) error
}
