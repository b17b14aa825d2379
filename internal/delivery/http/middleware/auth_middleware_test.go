package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sippec/internal/domain/entity"
	domainerrors "sippec/internal/domain/errors"
	mockUsecase "sippec/internal/mocks/usecase"
)

func newGuardedContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_StoresAuthenticatedUser(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(uc)

	user := &entity.User{ID: 7, Email: "ana@usv.ro"}
	uc.On("Authenticate", mock.Anything, "signed.jwt").Return(user, nil)

	c, _ := newGuardedContext("Bearer signed.jwt")

	var seen *entity.User
	next := func(c echo.Context) error {
		seen, _ = CurrentUser(c)

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, user, seen)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(uc)

	c, rec := newGuardedContext("")

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
	uc.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_NonBearerScheme(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(uc)

	c, rec := newGuardedContext("Basic dXNlcjpwYXNz")

	require.NoError(t, m.Authenticate(func(c echo.Context) error { return nil })(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(uc)

	uc.On("Authenticate", mock.Anything, "expired.jwt").Return(nil, domainerrors.ErrUnauthenticated)

	c, rec := newGuardedContext("Bearer expired.jwt")

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}
