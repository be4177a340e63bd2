// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"vetclinic/config"
	deliverycontext "vetclinic/internal/delivery/context"
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/domain/repository"
	"vetclinic/internal/domain/service"
	"vetclinic/internal/usecase"
)

// resetService implements the ResetUsecase interface.
type resetService struct {
	txManager     repository.TransactionManager
	sources       []service.CredentialSource
	hasher        service.PasswordHasher
	audit         service.AuditRecorder
	resetTokenTTL time.Duration
	logger        *slog.Logger
}

// ResetServiceParams holds dependencies for resetService, injected by Fx.
type ResetServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Sources   []service.CredentialSource `group:"credential_sources"`
	Hasher    service.PasswordHasher
	Audit     service.AuditRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewResetService is the constructor for resetService.
func NewResetService(params ResetServiceParams) usecase.ResetUsecase {
	return &resetService{
		txManager:     params.TxManager,
		sources:       params.Sources,
		hasher:        params.Hasher,
		audit:         params.Audit,
		resetTokenTTL: params.Config.ResetTokenTTL(),
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *resetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset issues a fresh reset token for the account. Unknown emails
// return nil output without error so the endpoint cannot be used to probe
// for registered addresses.
func (srv *resetService) RequestReset(ctx context.Context, input usecase.RequestResetInput) (*usecase.RequestResetOutput, error) {
	if !input.UserType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown user type")
	}

	credential, err := srv.lookup(ctx, input.Email, input.UserType)
	if err != nil {
		srv.log(ctx).Info("Reset requested for unknown account", slog.String("email", input.Email))

		return nil, nil
	}

	token := &entity.PasswordResetToken{
		Token:     newResetTokenValue(),
		Email:     credential.Email,
		UserType:  input.UserType,
		ExpiresAt: time.Now().Add(srv.resetTokenTTL),
	}

	if err := srv.storeToken(ctx, token); err != nil {
		srv.log(ctx).Error("Failed to store reset token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.audit.SecurityEvent(ctx, "PASSWORD_RESET_REQUESTED", srv.audit.Sanitize("email="+credential.Email))

	return &usecase.RequestResetOutput{Token: token.Token}, nil
}

// storeToken persists the token, re-issuing the value once if it collides
// with an existing row. A second collision surfaces as a conflict.
func (srv *resetService) storeToken(ctx context.Context, token *entity.PasswordResetToken) error {
	for attempt := 0; ; attempt++ {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.ResetTokenRepo().Create(ctx, token)
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateResetToken) {
			return errors.Wrap(err, "failed to store password reset token")
		}
		if attempt > 0 {
			return domainerrors.ErrDuplicateResource
		}

		token.Token = newResetTokenValue()
	}
}

// ConfirmReset redeems a token for a new password. The token lookup, the
// hash update and the consumption happen in one transaction so a token can
// never be spent without the password actually changing.
func (srv *resetService) ConfirmReset(ctx context.Context, input usecase.ConfirmResetInput) error {
	if input.NewPassword == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("new password must not be empty")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	now := time.Now()
	var email string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.ResetTokenRepo()

		token, err := tokenRepo.FindByValue(ctx, input.Token)
		if err != nil {
			return domainerrors.ErrResetTokenInvalid
		}
		if !token.Valid(now) {
			return domainerrors.ErrResetTokenInvalid
		}

		email = token.Email

		if err := srv.updatePassword(ctx, repoFactory, token, hash); err != nil {
			return err
		}

		return tokenRepo.Consume(ctx, token.ID)
	})
	if err != nil {
		srv.audit.SecurityEvent(ctx, "PASSWORD_RESET_REJECTED", srv.audit.Sanitize("token="+input.Token))

		return err
	}

	srv.audit.SecurityEvent(ctx, "PASSWORD_RESET_COMPLETED", srv.audit.Sanitize("email="+email))
	srv.log(ctx).Info("Password reset completed", slog.String("email", email))

	return nil
}

// updatePassword routes the hash update to the identity table the token was
// issued for.
func (srv *resetService) updatePassword(ctx context.Context, repoFactory repository.RepositoryFactory, token *entity.PasswordResetToken, hash string) error {
	switch token.UserType {
	case entity.KindStaff:
		return repoFactory.StaffRepo().UpdatePasswordHash(ctx, token.Email, hash)
	case entity.KindOwner:
		return repoFactory.OwnerRepo().UpdatePasswordHash(ctx, token.Email, hash)
	default:
		return domainerrors.ErrResetTokenInvalid
	}
}

// lookup consults the single credential source matching the identity kind.
func (srv *resetService) lookup(ctx context.Context, email string, kind entity.IdentityKind) (*entity.Credential, error) {
	for _, source := range srv.sources {
		if source.Kind() != kind {
			continue
		}

		return source.LoadByEmail(ctx, email)
	}

	return nil, domainerrors.ErrInvalidCredentials
}

// newResetTokenValue builds an opaque token value. Two UUIDs keep the value
// inside the varchar(64) column while staying unguessable.
func newResetTokenValue() string {
	return strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
}
