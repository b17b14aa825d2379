package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sippec/internal/delivery/http/validator"
	"sippec/internal/domain/entity"
	domainerrors "sippec/internal/domain/errors"
	mockUsecase "sippec/internal/mocks/usecase"
	"sippec/internal/usecase"
)

func newTestContext(method, path, body, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_FormBody(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	uc.On("Login", mock.Anything, &usecase.LoginInput{
		Email:    "ana@usv.ro",
		Password: "secret1",
	}).Return(&usecase.LoginOutput{
		AccessToken: "signed.jwt",
		TokenType:   "bearer",
		User:        &entity.User{ID: 1, Email: "ana@usv.ro", PasswordHash: "$2a$12$digest"},
	}, nil)

	form := url.Values{"username": {"ana@usv.ro"}, "password": {"secret1"}}
	c, rec := newTestContext(http.MethodPost, "/login", form.Encode(), echo.MIMEApplicationForm)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed.jwt"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	// The bcrypt digest must never appear in a response.
	assert.NotContains(t, rec.Body.String(), "$2a$12$digest")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	uc.On("Login", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	form := url.Values{"username": {"ana@usv.ro"}, "password": {"wrong"}}
	c, _ := newTestContext(http.MethodPost, "/login", form.Encode(), echo.MIMEApplicationForm)

	err := h.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, rec := newTestContext(http.MethodPost, "/login", "", echo.MIMEApplicationForm)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthHandler_GoogleLogin(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	uc.On("GoogleLogin", mock.Anything, &usecase.GoogleLoginInput{IDToken: "google.id.token"}).
		Return(&usecase.LoginOutput{
			AccessToken: "signed.jwt",
			TokenType:   "bearer",
			User:        &entity.User{ID: 2, Email: "ana@gmail.com"},
		}, nil)

	c, rec := newTestContext(http.MethodPost, "/auth/google", `{"token":"google.id.token"}`, echo.MIMEApplicationJSON)

	require.NoError(t, h.GoogleLogin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed.jwt"`)
}

func TestAuthHandler_GoogleLogin_Rejected(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	uc.On("GoogleLogin", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrIdentityRejected)

	c, _ := newTestContext(http.MethodPost, "/auth/google", `{"token":"forged"}`, echo.MIMEApplicationJSON)

	err := h.GoogleLogin(c)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityRejected)
}

func TestAuthHandler_GoogleLogin_MissingToken(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, rec := newTestContext(http.MethodPost, "/auth/google", `{}`, echo.MIMEApplicationJSON)

	require.NoError(t, h.GoogleLogin(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "GoogleLogin", mock.Anything, mock.Anything)
}
