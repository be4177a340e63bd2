package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vetclinic/config"
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/domain/repository"
	"vetclinic/internal/domain/service"
	mockRepo "vetclinic/internal/mocks/repository"
	mockSvc "vetclinic/internal/mocks/service"
	"vetclinic/internal/usecase"
)

// resetServiceFixtures holds all test dependencies for reset service tests.
type resetServiceFixtures struct {
	service     usecase.ResetUsecase
	txManager   *mockRepo.MockTransactionManager
	staffSource *mockSvc.MockCredentialSource
	ownerSource *mockSvc.MockCredentialSource
	hasher      *mockSvc.MockPasswordHasher
	audit       *mockSvc.MockAuditRecorder
}

func createTestResetService(t *testing.T) resetServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	staffSource := mockSvc.NewMockCredentialSource(t)
	ownerSource := mockSvc.NewMockCredentialSource(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	audit := mockSvc.NewMockAuditRecorder(t)

	svc := NewResetService(ResetServiceParams{
		TxManager: txManager,
		Sources:   []service.CredentialSource{staffSource, ownerSource},
		Hasher:    hasher,
		Audit:     audit,
		Config:    &config.Config{},
		Logger:    newDiscardLogger(),
	})

	return resetServiceFixtures{
		service:     svc,
		txManager:   txManager,
		staffSource: staffSource,
		ownerSource: ownerSource,
		hasher:      hasher,
		audit:       audit,
	}
}

func TestResetService_RequestReset_IssuesToken(t *testing.T) {
	fx := createTestResetService(t)
	ctx := context.Background()
	credential := staffCredentialFixture()

	fx.staffSource.On("Kind").Return(entity.KindStaff)
	fx.staffSource.On("LoadByEmail", ctx, "admin@clinica.com").Return(credential, nil)

	var stored *entity.PasswordResetToken
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			factory := mockRepo.NewMockRepositoryFactory(t)
			tokenRepo := mockRepo.NewMockResetTokenRepository(t)

			factory.On("ResetTokenRepo").Return(tokenRepo)
			tokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.PasswordResetToken")).
				Run(func(args mock.Arguments) {
					stored = args.Get(1).(*entity.PasswordResetToken)
					stored.ID = 1
				}).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)
	fx.audit.On("Sanitize", "email=admin@clinica.com").Return("email=admin@clinica.com")
	fx.audit.On("SecurityEvent", ctx, "PASSWORD_RESET_REQUESTED", "email=admin@clinica.com").Return()

	output, err := fx.service.RequestReset(ctx, usecase.RequestResetInput{
		Email:    "admin@clinica.com",
		UserType: entity.KindStaff,
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, output.Token, stored.Token)
	assert.Equal(t, entity.KindStaff, stored.UserType)
	assert.False(t, stored.Used)
	assert.True(t, stored.ExpiresAt.After(time.Now().Add(23*time.Hour)),
		"default lifetime should be a full day")
	assert.LessOrEqual(t, len(stored.Token), 64)
}

func TestResetService_RequestReset_ReissuesOnTokenCollision(t *testing.T) {
	fx := createTestResetService(t)
	ctx := context.Background()
	credential := staffCredentialFixture()

	fx.staffSource.On("Kind").Return(entity.KindStaff)
	fx.staffSource.On("LoadByEmail", ctx, "admin@clinica.com").Return(credential, nil)

	var firstValue, secondValue string
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			factory := mockRepo.NewMockRepositoryFactory(t)
			tokenRepo := mockRepo.NewMockResetTokenRepository(t)

			factory.On("ResetTokenRepo").Return(tokenRepo)
			tokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.PasswordResetToken")).
				Run(func(args mock.Arguments) {
					firstValue = args.Get(1).(*entity.PasswordResetToken).Token
				}).
				Return(repository.ErrDuplicateResetToken)

			assert.ErrorIs(t, fn(factory), repository.ErrDuplicateResetToken)
		}).
		Return(repository.ErrDuplicateResetToken).Once()
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			factory := mockRepo.NewMockRepositoryFactory(t)
			tokenRepo := mockRepo.NewMockResetTokenRepository(t)

			factory.On("ResetTokenRepo").Return(tokenRepo)
			tokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.PasswordResetToken")).
				Run(func(args mock.Arguments) {
					secondValue = args.Get(1).(*entity.PasswordResetToken).Token
				}).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil).Once()
	fx.audit.On("Sanitize", "email=admin@clinica.com").Return("email=admin@clinica.com")
	fx.audit.On("SecurityEvent", ctx, "PASSWORD_RESET_REQUESTED", "email=admin@clinica.com").Return()

	output, err := fx.service.RequestReset(ctx, usecase.RequestResetInput{
		Email:    "admin@clinica.com",
		UserType: entity.KindStaff,
	})

	require.NoError(t, err)
	assert.NotEqual(t, firstValue, secondValue, "a colliding value must be re-issued, not re-tried")
	assert.Equal(t, secondValue, output.Token)
}

func TestResetService_RequestReset_SecondCollisionIsConflict(t *testing.T) {
	fx := createTestResetService(t)
	ctx := context.Background()
	credential := staffCredentialFixture()

	fx.staffSource.On("Kind").Return(entity.KindStaff)
	fx.staffSource.On("LoadByEmail", ctx, "admin@clinica.com").Return(credential, nil)
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateResetToken).Twice()

	output, err := fx.service.RequestReset(ctx, usecase.RequestResetInput{
		Email:    "admin@clinica.com",
		UserType: entity.KindStaff,
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateResource,
		"a persistent collision maps to a conflict, not an internal error")
}

func TestResetService_RequestReset_UnknownEmailStaysSilent(t *testing.T) {
	fx := createTestResetService(t)
	ctx := context.Background()

	fx.staffSource.On("Kind").Return(entity.KindStaff)
	fx.staffSource.On("LoadByEmail", ctx, "nadie@example.com").Return(nil, repository.ErrStaffNotFound)

	output, err := fx.service.RequestReset(ctx, usecase.RequestResetInput{
		Email:    "nadie@example.com",
		UserType: entity.KindStaff,
	})

	assert.NoError(t, err)
	assert.Nil(t, output)
}

func TestResetService_RequestReset_RejectsUnknownUserType(t *testing.T) {
	fx := createTestResetService(t)

	output, err := fx.service.RequestReset(context.Background(), usecase.RequestResetInput{
		Email:    "admin@clinica.com",
		UserType: "GATO",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestResetService_ConfirmReset_Success(t *testing.T) {
	fx := createTestResetService(t)
	ctx := context.Background()

	token := &entity.PasswordResetToken{
		ID:        9,
		Token:     "opaque-token",
		Email:     "maria@example.com",
		UserType:  entity.KindOwner,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.hasher.On("Hash", "NuevaClave1!").Return("new-hash", nil)
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			factory := mockRepo.NewMockRepositoryFactory(t)
			tokenRepo := mockRepo.NewMockResetTokenRepository(t)
			ownerRepo := mockRepo.NewMockOwnerRepository(t)

			factory.On("ResetTokenRepo").Return(tokenRepo)
			factory.On("OwnerRepo").Return(ownerRepo)
			tokenRepo.On("FindByValue", ctx, "opaque-token").Return(token, nil)
			ownerRepo.On("UpdatePasswordHash", ctx, "maria@example.com", "new-hash").Return(nil)
			tokenRepo.On("Consume", ctx, uint(9)).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)
	fx.audit.On("Sanitize", "email=maria@example.com").Return("email=maria@example.com")
	fx.audit.On("SecurityEvent", ctx, "PASSWORD_RESET_COMPLETED", "email=maria@example.com").Return()

	err := fx.service.ConfirmReset(ctx, usecase.ConfirmResetInput{
		Token:       "opaque-token",
		NewPassword: "NuevaClave1!",
	})

	assert.NoError(t, err)
}

func TestResetService_ConfirmReset_ExpiredToken(t *testing.T) {
	fx := createTestResetService(t)
	ctx := context.Background()

	expired := &entity.PasswordResetToken{
		ID:        4,
		Token:     "old-token",
		Email:     "maria@example.com",
		UserType:  entity.KindOwner,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.hasher.On("Hash", "NuevaClave1!").Return("new-hash", nil)
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			factory := mockRepo.NewMockRepositoryFactory(t)
			tokenRepo := mockRepo.NewMockResetTokenRepository(t)

			factory.On("ResetTokenRepo").Return(tokenRepo)
			tokenRepo.On("FindByValue", ctx, "old-token").Return(expired, nil)

			assert.ErrorIs(t, fn(factory), domainerrors.ErrResetTokenInvalid)
		}).
		Return(domainerrors.ErrResetTokenInvalid)
	fx.audit.On("Sanitize", "token=old-token").Return("token=***")
	fx.audit.On("SecurityEvent", ctx, "PASSWORD_RESET_REJECTED", "token=***").Return()

	err := fx.service.ConfirmReset(ctx, usecase.ConfirmResetInput{
		Token:       "old-token",
		NewPassword: "NuevaClave1!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestResetService_ConfirmReset_ConsumedTokenRejected(t *testing.T) {
	fx := createTestResetService(t)
	ctx := context.Background()

	used := &entity.PasswordResetToken{
		ID:        5,
		Token:     "spent-token",
		Email:     "maria@example.com",
		UserType:  entity.KindOwner,
		ExpiresAt: time.Now().Add(time.Hour),
		Used:      true,
	}

	fx.hasher.On("Hash", "NuevaClave1!").Return("new-hash", nil)
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			factory := mockRepo.NewMockRepositoryFactory(t)
			tokenRepo := mockRepo.NewMockResetTokenRepository(t)

			factory.On("ResetTokenRepo").Return(tokenRepo)
			tokenRepo.On("FindByValue", ctx, "spent-token").Return(used, nil)

			assert.ErrorIs(t, fn(factory), domainerrors.ErrResetTokenInvalid)
		}).
		Return(domainerrors.ErrResetTokenInvalid)
	fx.audit.On("Sanitize", "token=spent-token").Return("token=***")
	fx.audit.On("SecurityEvent", ctx, "PASSWORD_RESET_REJECTED", "token=***").Return()

	err := fx.service.ConfirmReset(ctx, usecase.ConfirmResetInput{
		Token:       "spent-token",
		NewPassword: "NuevaClave1!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestResetService_ConfirmReset_EmptyPassword(t *testing.T) {
	fx := createTestResetService(t)

	err := fx.service.ConfirmReset(context.Background(), usecase.ConfirmResetInput{
		Token:       "whatever",
		NewPassword: "",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
