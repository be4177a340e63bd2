package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	domainerrors "vetclinic/internal/domain/errors"
)

func renderError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewErrorMiddleware(newTestLogger())
	mw.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppErrorRendersItsHTTPCode(t *testing.T) {
	rec := renderError(t, domainerrors.ErrInvalidCredentials)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

// Whatever the actual reason a login failed, the boundary must render one and
// the same body so account state cannot be probed over HTTP.
func TestErrorMiddleware_LoginFailuresRenderIdentically(t *testing.T) {
	reference := renderError(t, domainerrors.ErrInvalidCredentials)

	for _, err := range []error{
		domainerrors.ErrInvalidCredentials,
		errors.Wrap(domainerrors.ErrInvalidCredentials, "inactive account"),
		errors.Wrap(domainerrors.ErrInvalidCredentials, "no stored credentials"),
	} {
		rec := renderError(t, err)

		assert.Equal(t, reference.Code, rec.Code)
		assert.Equal(t, reference.Body.String(), rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "inactive")
	}
}

func TestErrorMiddleware_UnknownErrorHidesDetails(t *testing.T) {
	rec := renderError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
