package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	reqcontext "vetclinic/internal/delivery/context"
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/domain/service"
)

// AuthMiddleware authenticates requests from bearer tokens and exposes
// endpoint-level guards. Authenticate itself never rejects: a missing or
// invalid token simply leaves the request anonymous, and the guards decide
// per route whether anonymous is acceptable.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	sources  []service.CredentialSource
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, sources []service.CredentialSource, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, sources: sources, logger: logger}
}

// Authenticate resolves the Authorization header to a principal when
// possible. The token must parse, match a live identity record and still
// carry that identity's email as subject; anything less leaves the request
// anonymous and the chain continues.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractBearer(c)
		if tokenString == "" {
			return next(c)
		}

		principal := m.resolvePrincipal(c, tokenString)
		if principal == nil {
			return next(c)
		}

		ctx := reqcontext.WithPrincipal(c.Request().Context(), principal)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAuthenticated rejects anonymous requests with 401. Must be applied
// after Authenticate.
func (m *AuthMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := reqcontext.GetPrincipal(c.Request().Context()); !ok {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}

// RequireAuthority is a middleware factory that rejects principals lacking
// any of the given authorities with 403. Anonymous requests get 401. Must be
// applied after Authenticate.
func (m *AuthMiddleware) RequireAuthority(authorities ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := reqcontext.GetPrincipal(c.Request().Context())
			if !ok {
				return domainerrors.ErrUnauthenticated
			}

			for _, authority := range authorities {
				if principal.Authority == authority {
					return next(c)
				}
			}

			return domainerrors.ErrForbidden
		}
	}
}

// resolvePrincipal turns a raw token into a principal, or nil when the token
// or the identity behind it cannot be trusted.
func (m *AuthMiddleware) resolvePrincipal(c echo.Context, tokenString string) *entity.Principal {
	claims, err := m.tokenSvc.Parse(tokenString)
	if err != nil {
		m.logger.Debug("Rejected bearer token",
			slog.String("reason", "parse failure"),
			slog.String("correlation_id", reqcontext.GetCorrelationID(c)),
		)

		return nil
	}

	credential := m.loadCredential(c, claims)
	if credential == nil {
		return nil
	}

	if !credential.Active {
		m.logger.Debug("Rejected bearer token",
			slog.String("reason", "inactive account"),
			slog.String("email", credential.Email),
		)

		return nil
	}

	// Re-check subject and expiry against the live identity record so a
	// token issued for a renamed or removed account stops working.
	if !m.tokenSvc.Validate(tokenString, credential.Email) {
		return nil
	}

	return &credential.Principal
}

// loadCredential asks each credential source for the token's subject. The
// kind claim narrows the lookup to a single identity table when present.
func (m *AuthMiddleware) loadCredential(c echo.Context, claims *service.Claims) *entity.Credential {
	email := claims.Subject

	for _, source := range m.sources {
		if claims.Kind != "" && source.Kind() != claims.Kind {
			continue
		}

		credential, err := source.LoadByEmail(c.Request().Context(), email)
		if err == nil {
			return credential
		}
	}

	return nil
}

// extractBearer returns the token from the Authorization header, or empty
// when the header is absent or not a bearer scheme.
func extractBearer(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}

	return strings.TrimSpace(tokenString)
}
