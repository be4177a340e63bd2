// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/domain/repository"
	"vetclinic/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// resetTokenRepository implements the repository.ResetTokenRepository interface using GORM.
type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository is the constructor for resetTokenRepository.
func NewResetTokenRepository(db *gorm.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// Create persists a freshly issued token. A collision on the unique token
// value is surfaced as ErrDuplicateResetToken so the caller can re-issue.
func (repo *resetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	tokenM := fromResetTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateResetToken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindValid returns the newest unconsumed, unexpired token for the email/kind
// pair. Older outstanding tokens remain untouched.
func (repo *resetTokenRepository) FindValid(ctx context.Context, email string, kind entity.IdentityKind, now time.Time) (*entity.PasswordResetToken, error) {
	var tokenM model.PasswordResetTokenModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND user_type = ? AND usado = false AND expires_at > ?", email, string(kind), now).
		Order("created_at DESC").
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find valid password reset token")
	}

	return toResetTokenDomain(&tokenM), nil
}

// FindByValue returns the token row with the given opaque value.
func (repo *resetTokenRepository) FindByValue(ctx context.Context, value string) (*entity.PasswordResetToken, error) {
	var tokenM model.PasswordResetTokenModel
	if err := repo.db.WithContext(ctx).Where("token = ?", value).First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset token by value")
	}

	return toResetTokenDomain(&tokenM), nil
}

// Consume sets usado = true for the given token.
func (repo *resetTokenRepository) Consume(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PasswordResetTokenModel{}).
		Where("id = ?", id).
		Update("usado", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to consume password reset token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetTokenNotFound
	}

	return nil
}

// PurgeExpired deletes expired and already consumed tokens and reports how
// many rows were removed.
func (repo *resetTokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ? OR usado = true", now).
		Delete(&model.PasswordResetTokenModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge password reset tokens")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toResetTokenDomain(data *model.PasswordResetTokenModel) *entity.PasswordResetToken {
	if data == nil {
		return nil
	}

	return &entity.PasswordResetToken{
		ID:        data.ID,
		Token:     data.Token,
		Email:     data.Email,
		UserType:  entity.IdentityKind(data.UserType),
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
	}
}

func fromResetTokenDomain(data *entity.PasswordResetToken) *model.PasswordResetTokenModel {
	if data == nil {
		return nil
	}

	return &model.PasswordResetTokenModel{
		ID:        data.ID,
		Token:     data.Token,
		Email:     data.Email,
		UserType:  string(data.UserType),
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
	}
}
