package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reqcontext "vetclinic/internal/delivery/context"
	"vetclinic/internal/delivery/http/validator"
	"vetclinic/internal/domain/entity"
	domainerrors "vetclinic/internal/domain/errors"
	mockUC "vetclinic/internal/mocks/usecase"
	"vetclinic/internal/usecase"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthHandler_Login_Success(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	resetUC := mockUC.NewMockResetUsecase(t)
	h := NewAuthHandler(authUC, resetUC, newDiscardLogger())

	authUC.On("Login", mock.Anything, usecase.LoginInput{
		Email:    "admin@clinica.com",
		Password: "Password123!",
		UserType: entity.KindStaff,
	}).Return(&usecase.LoginOutput{
		Token: "signed-token",
		Type:  "Bearer",
		Identity: &entity.Principal{
			ID:        7,
			Email:     "admin@clinica.com",
			Kind:      entity.KindStaff,
			Authority: "ROLE_ADMIN",
		},
	}, nil)

	e := newTestEcho()
	body := `{"email":"admin@clinica.com","password":"Password123!","userType":"USUARIO"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			Type  string `json:"type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "signed-token", envelope.Data.Token)
	assert.Equal(t, "Bearer", envelope.Data.Type)
}

func TestAuthHandler_Login_InvalidCredentialsPropagate(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	resetUC := mockUC.NewMockResetUsecase(t)
	h := NewAuthHandler(authUC, resetUC, newDiscardLogger())

	authUC.On("Login", mock.Anything, usecase.LoginInput{
		Email:    "admin@clinica.com",
		Password: "wrong",
	}).Return(nil, domainerrors.ErrInvalidCredentials)

	e := newTestEcho()
	body := `{"email":"admin@clinica.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_Login_RejectsMissingEmail(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	resetUC := mockUC.NewMockResetUsecase(t)
	h := NewAuthHandler(authUC, resetUC, newDiscardLogger())

	e := newTestEcho()
	body := `{"password":"Password123!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Validate_ReturnsBooleanBody(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	resetUC := mockUC.NewMockResetUsecase(t)
	h := NewAuthHandler(authUC, resetUC, newDiscardLogger())

	authUC.On("ValidateToken", mock.Anything, "some-token").
		Return(&usecase.TokenCheckOutput{Valid: false}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/validate?token=some-token", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Validate(c))
	assert.Equal(t, http.StatusOK, rec.Code, "an invalid token is an answer, not an error")
	assert.Contains(t, rec.Body.String(), `"valid":false`)
}

func TestAuthHandler_Validate_RequiresTokenParam(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	resetUC := mockUC.NewMockResetUsecase(t)
	h := NewAuthHandler(authUC, resetUC, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/validate", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Validate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Me_ReturnsPrincipal(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	resetUC := mockUC.NewMockResetUsecase(t)
	h := NewAuthHandler(authUC, resetUC, newDiscardLogger())

	principal := &entity.Principal{ID: 2, Email: "vet@clinica.com", Kind: entity.KindStaff, Authority: "ROLE_VET"}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(reqcontext.WithPrincipal(req.Context(), principal))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "vet@clinica.com")
}

func TestAuthHandler_RequestReset_SameAnswerForUnknownEmail(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	resetUC := mockUC.NewMockResetUsecase(t)
	h := NewAuthHandler(authUC, resetUC, newDiscardLogger())

	resetUC.On("RequestReset", mock.Anything, usecase.RequestResetInput{
		Email:    "nadie@example.com",
		UserType: entity.KindOwner,
	}).Return(nil, nil)

	e := newTestEcho()
	body := `{"email":"nadie@example.com","userType":"PROPIETARIO"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/password-reset", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.RequestReset(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "token", "issued tokens never travel in the API response")
}
