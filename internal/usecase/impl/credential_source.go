// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"github.com/pkg/errors"

	"vetclinic/internal/domain/entity"
	"vetclinic/internal/domain/repository"
	"vetclinic/internal/domain/service"
)

// staffCredentialSource resolves staff logins against the usuarios table.
type staffCredentialSource struct {
	repo repository.StaffRepository
}

// NewStaffCredentialSource is the constructor for staffCredentialSource.
func NewStaffCredentialSource(repo repository.StaffRepository) service.CredentialSource {
	return &staffCredentialSource{repo: repo}
}

func (s *staffCredentialSource) Kind() entity.IdentityKind {
	return entity.KindStaff
}

func (s *staffCredentialSource) LoadByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	staff, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to load staff credential")
	}

	credential := staff.Credential()

	return &credential, nil
}

// ownerCredentialSource resolves owner-client logins against the
// propietarios table.
type ownerCredentialSource struct {
	repo repository.OwnerRepository
}

// NewOwnerCredentialSource is the constructor for ownerCredentialSource.
func NewOwnerCredentialSource(repo repository.OwnerRepository) service.CredentialSource {
	return &ownerCredentialSource{repo: repo}
}

func (s *ownerCredentialSource) Kind() entity.IdentityKind {
	return entity.KindOwner
}

func (s *ownerCredentialSource) LoadByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	owner, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to load owner credential")
	}

	credential := owner.Credential()

	return &credential, nil
}
