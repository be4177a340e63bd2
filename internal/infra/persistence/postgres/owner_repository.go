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

// ownerRepository implements the repository.OwnerRepository interface using GORM.
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository is the constructor for ownerRepository.
func NewOwnerRepository(db *gorm.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

// FindByID retrieves a single owner by their numeric ID.
func (repo *ownerRepository) FindByID(ctx context.Context, id uint) (*entity.Owner, error) {
	var ownerM model.OwnerModel
	if err := repo.db.WithContext(ctx).First(&ownerM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by id")
	}

	return toOwnerDomain(&ownerM), nil
}

// FindByEmail retrieves a single owner by their email address.
func (repo *ownerRepository) FindByEmail(ctx context.Context, email string) (*entity.Owner, error) {
	var ownerM model.OwnerModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&ownerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by email")
	}

	return toOwnerDomain(&ownerM), nil
}

// Create persists a new owner.
func (repo *ownerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	ownerM := fromOwnerDomain(owner)

	if err := repo.db.WithContext(ctx).Create(ownerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateResource.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required owner information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create owner")
	}

	owner.ID = ownerM.ID
	owner.CreatedAt = ownerM.CreatedAt
	owner.UpdatedAt = ownerM.UpdatedAt

	return nil
}

// Update modifies an existing owner.
func (repo *ownerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	ownerM := fromOwnerDomain(owner)

	if err := repo.db.WithContext(ctx).Save(ownerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateResource.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update owner")
	}

	owner.UpdatedAt = ownerM.UpdatedAt

	return nil
}

// UpdatePasswordHash replaces the stored hash for the given email.
func (repo *ownerRepository) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OwnerModel{}).
		Where("email = ?", email).
		Update("password_hash", hash)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update owner password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOwnerNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOwnerDomain(data *model.OwnerModel) *entity.Owner {
	if data == nil {
		return nil
	}

	passwordHash := ""
	if data.PasswordHash != nil {
		passwordHash = *data.PasswordHash
	}

	return &entity.Owner{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: passwordHash,
		Phone:        data.Phone,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromOwnerDomain(data *entity.Owner) *model.OwnerModel {
	if data == nil {
		return nil
	}

	var passwordHash *string
	if data.PasswordHash != "" {
		hash := data.PasswordHash
		passwordHash = &hash
	}

	return &model.OwnerModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: passwordHash,
		Phone:        data.Phone,
		Active:       data.Active,
	}
}
