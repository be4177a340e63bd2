// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	reqcontext "vetclinic/internal/delivery/context"
	"vetclinic/internal/delivery/http/response"
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	"vetclinic/internal/usecase"
)

// loginRequest is the wire shape of a login attempt.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"userType"`
}

// resetRequest asks for a password-reset token.
type resetRequest struct {
	Email    string `json:"email" validate:"required,email"`
	UserType string `json:"userType" validate:"required"`
}

// resetConfirmRequest redeems a reset token.
type resetConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	resetUC usecase.ResetUsecase
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, resetUC usecase.ResetUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC:  authUC,
		resetUC: resetUC,
		logger:  logger,
	}
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		UserType: entity.IdentityKind(req.UserType),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Validate reports whether the token passed as a query parameter is still
// usable. The result is always 200 with a boolean body; an invalid token is
// a valid answer, not an error.
func (h *AuthHandler) Validate(c echo.Context) error {
	tokenString := c.QueryParam("token")
	if tokenString == "" {
		return response.BadRequest(c, "INVALID_INPUT", "token query parameter is required")
	}

	output, err := h.authUC.ValidateToken(c.Request().Context(), tokenString)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token checked")
}

// Me returns the principal resolved for the current request.
func (h *AuthHandler) Me(c echo.Context) error {
	principal, ok := reqcontext.GetPrincipal(c.Request().Context())
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return response.Success(c, http.StatusOK, principal, "")
}

// Logout handles the logout request.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// RequestReset handles the password-reset request. The response is the same
// whether or not the email exists.
func (h *AuthHandler) RequestReset(c echo.Context) error {
	var req resetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	_, err := h.resetUC.RequestReset(c.Request().Context(), usecase.RequestResetInput{
		Email:    req.Email,
		UserType: entity.IdentityKind(req.UserType),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK,
		map[string]string{"message": "If the account exists, a reset token has been issued"},
		"Reset requested")
}

// ConfirmReset handles the password-reset confirmation.
func (h *AuthHandler) ConfirmReset(c echo.Context) error {
	var req resetConfirmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset confirmation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.resetUC.ConfirmReset(c.Request().Context(), usecase.ConfirmResetInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated"}, "Reset completed")
}
