// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vetclinic/internal/domain/entity"
)

// ErrOwnerNotFound is a domain-specific error returned when an owner is not found.
var ErrOwnerNotFound = errors.New("owner not found")

// OwnerRepository defines the standard operations for clinic-owner persistence.
type OwnerRepository interface {
	// FindByID retrieves a single owner by their numeric ID.
	FindByID(ctx context.Context, id uint) (*entity.Owner, error)

	// FindByEmail retrieves a single owner by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Owner, error)

	// Create persists a new owner.
	Create(ctx context.Context, owner *entity.Owner) error

	// Update modifies an existing owner.
	Update(ctx context.Context, owner *entity.Owner) error

	// UpdatePasswordHash replaces the stored hash for the given email.
	UpdatePasswordHash(ctx context.Context, email, hash string) error
}
