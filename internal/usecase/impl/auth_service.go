// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "vetclinic/internal/delivery/context"
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/domain/service"
	"vetclinic/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	tokenService service.TokenService
	hasher       service.PasswordHasher
	sources      []service.CredentialSource
	audit        service.AuditRecorder
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TokenService service.TokenService
	Hasher       service.PasswordHasher
	Sources      []service.CredentialSource `group:"credential_sources"`
	Audit        service.AuditRecorder
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		tokenService: params.TokenService,
		hasher:       params.Hasher,
		sources:      params.Sources,
		audit:        params.Audit,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the caller's credentials and issues a signed token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Login attempt", slog.String("email", input.Email), slog.String("userType", input.UserType.String()))

	credential, err := srv.findCredential(ctx, input)
	if err != nil {
		srv.audit.LoginFailure(ctx, input.Email, "unknown account")

		return nil, domainerrors.ErrInvalidCredentials
	}

	// The precise failure reason lives only in the audit trail; the caller
	// always sees the same credentials error regardless of account state.
	if !credential.Active {
		srv.audit.LoginFailure(ctx, input.Email, "inactive account")

		return nil, domainerrors.ErrInvalidCredentials
	}

	// Legacy owner rows imported without a password cannot log in until one
	// is set through the reset flow.
	if credential.PasswordHash == "" {
		srv.audit.LoginFailure(ctx, input.Email, "no stored credentials")

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.audit.LoginFailure(ctx, input.Email, "password mismatch")

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(credential.Email, service.ExtraClaims{
		Role:   credential.Authority,
		UserID: credential.ID,
		Kind:   credential.Kind,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.audit.LoginSuccess(ctx, credential.Email, credential.Kind.String())

	principal := credential.Principal

	return &usecase.LoginOutput{
		Token:    token,
		Type:     "Bearer",
		Identity: &principal,
	}, nil
}

// ValidateToken reports whether the token still identifies a live account.
func (srv *authService) ValidateToken(ctx context.Context, tokenString string) (*usecase.TokenCheckOutput, error) {
	principal, err := srv.Identify(ctx, tokenString)
	if err != nil || principal == nil {
		return &usecase.TokenCheckOutput{Valid: false}, nil
	}

	return &usecase.TokenCheckOutput{Valid: true}, nil
}

// Identify resolves a token to its principal, re-checking the identity record.
func (srv *authService) Identify(ctx context.Context, tokenString string) (*entity.Principal, error) {
	claims, err := srv.tokenService.Parse(tokenString)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	credential, err := srv.lookupByKind(ctx, claims.Subject, claims.Kind)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	if !credential.Active {
		return nil, domainerrors.ErrInactiveAccount
	}

	if !srv.tokenService.Validate(tokenString, credential.Email) {
		return nil, domainerrors.ErrInvalidToken
	}

	principal := credential.Principal

	return &principal, nil
}

// Logout records the end of the session. Tokens are stateless, so nothing is
// revoked server-side.
func (srv *authService) Logout(ctx context.Context) error {
	principal, ok := deliverycontext.GetPrincipal(ctx)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	srv.audit.Logout(ctx, principal.Email)
	srv.log(ctx).Info("Logout", slog.String("uid", strconv.FormatUint(uint64(principal.ID), 10)))

	return nil
}

// findCredential selects the identity table from the login input. With an
// explicit user type only that table is consulted; otherwise staff wins over
// owner-clients when both tables hold the email.
func (srv *authService) findCredential(ctx context.Context, input usecase.LoginInput) (*entity.Credential, error) {
	if input.UserType != "" {
		if !input.UserType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown user type")
		}

		return srv.lookupByKind(ctx, input.Email, input.UserType)
	}

	for _, source := range srv.sources {
		credential, err := source.LoadByEmail(ctx, input.Email)
		if err == nil {
			return credential, nil
		}
	}

	return nil, domainerrors.ErrInvalidCredentials
}

// lookupByKind consults the single source matching the identity kind.
func (srv *authService) lookupByKind(ctx context.Context, email string, kind entity.IdentityKind) (*entity.Credential, error) {
	for _, source := range srv.sources {
		if source.Kind() != kind {
			continue
		}

		return source.LoadByEmail(ctx, email)
	}

	return nil, domainerrors.ErrInvalidCredentials
}
