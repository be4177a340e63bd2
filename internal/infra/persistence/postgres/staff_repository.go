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

// staffRepository implements the repository.StaffRepository interface using GORM.
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository is the constructor for staffRepository.
// It returns the repository as a repository.StaffRepository interface, adhering to dependency inversion.
func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

// FindByID retrieves a single staff user by their numeric ID.
func (repo *staffRepository) FindByID(ctx context.Context, id uint) (*entity.StaffUser, error) {
	var userM model.StaffUserModel
	if err := repo.db.WithContext(ctx).First(&userM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff user by id")
	}

	return toStaffDomain(&userM), nil
}

// FindByEmail retrieves a single staff user by their email address.
func (repo *staffRepository) FindByEmail(ctx context.Context, email string) (*entity.StaffUser, error) {
	var userM model.StaffUserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff user by email")
	}

	return toStaffDomain(&userM), nil
}

// Create persists a new staff user.
func (repo *staffRepository) Create(ctx context.Context, user *entity.StaffUser) error {
	userM := fromStaffDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateResource.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required staff user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create staff user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing staff user.
func (repo *staffRepository) Update(ctx context.Context, user *entity.StaffUser) error {
	userM := fromStaffDomain(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateResource.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update staff user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdatePasswordHash replaces the stored hash for the given email.
func (repo *staffRepository) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StaffUserModel{}).
		Where("email = ?", email).
		Update("password_hash", hash)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update staff password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaffNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toStaffDomain(data *model.StaffUserModel) *entity.StaffUser {
	if data == nil {
		return nil
	}

	return &entity.StaffUser{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromStaffDomain(data *entity.StaffUser) *model.StaffUserModel {
	if data == nil {
		return nil
	}

	return &model.StaffUserModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		Active:       data.Active,
	}
}
